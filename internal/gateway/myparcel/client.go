package myparcel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"service-shipment-bridge/internal/apperr"
	"service-shipment-bridge/internal/domain"
	"service-shipment-bridge/internal/logx"
)

// Carrier wire protocol constants.
const (
	shipmentContentType = "application/vnd.shipment+json;charset=utf-8;version=1.1"
	userAgent           = "CustomApiCall/2"
)

// Config stores the carrier endpoint and the pre-shared API token.
type Config struct {
	BaseURL string
	APIKey  string
}

// Response is what the carrier answered: its HTTP status and the raw body.
// The body is passed through to the caller unparsed, accepted or not.
type Response struct {
	StatusCode int
	Body       string
}

// Accepted reports whether the carrier answered with a success status.
func (r Response) Accepted() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client talks to the carrier's shipment API.
type Client struct {
	cfg    Config
	httpc  *http.Client
	logger logx.Logger
}

// NewClient creates a carrier client with a bounded per-call timeout.
func NewClient(cfg Config, timeout time.Duration, logger logx.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// envelope is the carrier's request wrapper: {"data":{"shipments":[...]}}.
type envelope struct {
	Data shipments `json:"data"`
}

type shipments struct {
	Shipments []domain.ShipmentRequest `json:"shipments"`
}

// CreateShipment posts one shipment to the carrier. A reached response is
// returned with a nil error on acceptance and with ErrProviderRejected on a
// non-success status; only a transport-level failure yields ErrTransport with
// no response at all.
func (c *Client) CreateShipment(ctx context.Context, shipment domain.ShipmentRequest) (Response, error) {
	body, err := json.Marshal(envelope{Data: shipments{Shipments: []domain.ShipmentRequest{shipment}}})
	if err != nil {
		return Response{}, fmt.Errorf("myparcel shipment: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/shipments", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("myparcel shipment: %w", err)
	}
	req.Header.Set("Content-Type", shipmentContentType)
	req.Header.Set("Authorization", c.cfg.APIKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: myparcel: %v", apperr.ErrTransport, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("myparcel response body close", logx.Err(err))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: myparcel: read body: %v", apperr.ErrTransport, err)
	}

	result := Response{StatusCode: resp.StatusCode, Body: string(raw)}
	if !result.Accepted() {
		return result, fmt.Errorf("%w: status %d", apperr.ErrProviderRejected, resp.StatusCode)
	}
	return result, nil
}
