package handlers

import "service-shipment-bridge/internal/domain"

func shipmentResultToResponse(result domain.ShipmentResult) createShipmentResponse {
	return createShipmentResponse{
		Status:      string(result.Status),
		SapDocEntry: result.DocEntry,
		MyParcel:    result.ProviderResponse,
	}
}
