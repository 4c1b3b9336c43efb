package handlers

import (
	"errors"
	"net/http"

	"service-shipment-bridge/internal/apperr"
	"service-shipment-bridge/internal/logx"
)

// ShipmentHandler handles HTTP requests that drive the shipment pipeline.
type ShipmentHandler struct {
	usecase shipmentUsecase
	logger  logx.Logger
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(logger logx.Logger, uc shipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc, logger: logger}
}

// Create handles POST /api/shipment. A completed pipeline answers 200 even
// when the carrier rejected the shipment: the caller inspects the raw body
// for detail. Only aborting failures produce a 5xx.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	result, err := h.usecase.Create(r.Context(), req.DocEntry)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, shipmentResultToResponse(result))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "docEntry must be a positive integer")
	case errors.Is(err, apperr.ErrUpstreamAuth),
		errors.Is(err, apperr.ErrMalformedAuthResponse),
		errors.Is(err, apperr.ErrUpstreamFetch),
		errors.Is(err, apperr.ErrTransport):
		writeError(h.logger, w, r, http.StatusBadGateway, err.Error())
	case errors.Is(err, apperr.ErrDataIntegrity):
		writeError(h.logger, w, r, http.StatusInternalServerError, err.Error())
	default:
		// catch-all for unmodeled faults only
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
