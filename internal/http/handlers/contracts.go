package handlers

import (
	"context"

	"service-shipment-bridge/internal/domain"
	"service-shipment-bridge/internal/service/shipment"
)

type shipmentUsecase interface {
	Create(ctx context.Context, docEntry int64) (domain.ShipmentResult, error)
}

// NewShipmentUsecase wires a shipment.Service into a shipmentUsecase.
func NewShipmentUsecase(svc *shipment.Service) shipmentUsecase {
	return svc
}
