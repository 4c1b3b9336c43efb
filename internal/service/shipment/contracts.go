package shipment

import (
	"context"

	"service-shipment-bridge/internal/domain"
	"service-shipment-bridge/internal/gateway/myparcel"
	"service-shipment-bridge/internal/gateway/sap"
)

// erpClient is the slice of the ERP service layer the pipeline needs.
type erpClient interface {
	Login(ctx context.Context) (sap.Session, error)
	DeliveryNote(ctx context.Context, sess sap.Session, docEntry int64) (domain.DeliveryNote, error)
	BusinessPartner(ctx context.Context, sess sap.Session, cardCode string) (domain.BusinessPartner, error)
}

// carrierClient submits shipments to the parcel carrier.
type carrierClient interface {
	CreateShipment(ctx context.Context, shipment domain.ShipmentRequest) (myparcel.Response, error)
}
