package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-shipment-bridge/internal/apperr"
	"service-shipment-bridge/internal/domain"
	"service-shipment-bridge/internal/logx"
)

// Pipeline stage labels for the upstream error counter.
const (
	stageLogin           = "login"
	stageDeliveryNote    = "delivery_note"
	stageBusinessPartner = "business_partner"
	stageCarrier         = "carrier"
)

// Metrics are the pipeline counters. Nil fields are simply not incremented.
type Metrics struct {
	Submitted      prometheus.Counter
	Rejected       prometheus.Counter
	UpstreamErrors *prometheus.CounterVec
}

// Service runs the delivery-to-shipment pipeline: ERP login, delivery note,
// business partner, mapping, carrier submission. Strictly sequential; each
// run opens its own ERP session and never reuses it.
type Service struct {
	erp              erpClient
	carrier          carrierClient
	operationTimeout time.Duration
	logger           logx.Logger
	metrics          Metrics
}

// NewService creates the pipeline service.
func NewService(erp erpClient, carrier carrierClient, timeout time.Duration, logger logx.Logger, m Metrics) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		erp:              erp,
		carrier:          carrier,
		operationTimeout: timeout,
		logger:           logger,
		metrics:          m,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create runs the whole pipeline for one document entry. Any aborting step
// failure is returned as-is; a carrier rejection is not an abort — the result
// carries status Error and the carrier's raw body.
func (s *Service) Create(ctx context.Context, docEntry int64) (domain.ShipmentResult, error) {
	if docEntry <= 0 {
		return domain.ShipmentResult{}, fmt.Errorf("%w: docEntry must be positive", apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sess, err := s.erp.Login(ctx)
	if err != nil {
		return domain.ShipmentResult{}, s.failStage(stageLogin, docEntry, err)
	}

	note, err := s.erp.DeliveryNote(ctx, sess, docEntry)
	if err != nil {
		return domain.ShipmentResult{}, s.failStage(stageDeliveryNote, docEntry, err)
	}
	if strings.TrimSpace(note.CardCode) == "" {
		err := fmt.Errorf("%w: CardCode not found in delivery note %d", apperr.ErrDataIntegrity, docEntry)
		return domain.ShipmentResult{}, s.failStage(stageDeliveryNote, docEntry, err)
	}

	partner, err := s.erp.BusinessPartner(ctx, sess, note.CardCode)
	if err != nil {
		return domain.ShipmentResult{}, s.failStage(stageBusinessPartner, docEntry, err)
	}

	request := BuildShipmentRequest(partner, docEntry)

	resp, err := s.carrier.CreateShipment(ctx, request)
	switch {
	case err == nil:
		s.inc(s.metrics.Submitted)
		s.logger.Info("shipment submitted",
			logx.String("event", "shipment_submitted"),
			logx.Int64("doc_entry", docEntry),
			logx.String("card_code", note.CardCode),
			logx.String("reference", request.ReferenceIdentifier),
			logx.Int("carrier_status", resp.StatusCode),
		)
		return domain.ShipmentResult{
			Status:           domain.StatusSuccess,
			DocEntry:         docEntry,
			ProviderResponse: resp.Body,
		}, nil

	case errors.Is(err, apperr.ErrProviderRejected):
		// Deliberate contract: the rejection body is passed through to the
		// caller with status Error instead of aborting.
		s.inc(s.metrics.Rejected)
		s.logger.Warn("shipment rejected by carrier",
			logx.String("event", "shipment_rejected"),
			logx.Int64("doc_entry", docEntry),
			logx.Int("carrier_status", resp.StatusCode),
		)
		return domain.ShipmentResult{
			Status:           domain.StatusError,
			DocEntry:         docEntry,
			ProviderResponse: resp.Body,
		}, nil

	default:
		return domain.ShipmentResult{}, s.failStage(stageCarrier, docEntry, err)
	}
}

func (s *Service) failStage(stage string, docEntry int64, err error) error {
	if s.metrics.UpstreamErrors != nil {
		s.metrics.UpstreamErrors.WithLabelValues(stage).Inc()
	}
	s.logger.Error("pipeline stage failed",
		logx.String("stage", stage),
		logx.Int64("doc_entry", docEntry),
		logx.Err(err),
	)
	return err
}

func (s *Service) inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}
