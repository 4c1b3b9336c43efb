package sap

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

// Config stores the service-layer endpoint and tenant credentials.
type Config struct {
	BaseURL   string
	CompanyDB string
	Username  string
	Password  string
}

// Client talks to the SAP B1 service layer over HTTP.
type Client struct {
	cfg    Config
	httpc  *http.Client
	logger logx.Logger
}

// NewClient creates a service-layer client with a bounded per-call timeout.
func NewClient(cfg Config, timeout time.Duration, logger logx.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		httpc:  &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type loginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
}

// Login authenticates against the service layer and returns the session
// cookies to attach to subsequent calls. A success response missing either
// cookie fails with ErrMalformedAuthResponse rather than proceeding with a
// blank credential.
func (c *Client) Login(ctx context.Context) (Session, error) {
	body, err := json.Marshal(loginRequest{
		CompanyDB: c.cfg.CompanyDB,
		UserName:  c.cfg.Username,
		Password:  c.cfg.Password,
	})
	if err != nil {
		return Session{}, fmt.Errorf("sap login: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/Login", bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("sap login: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("%w: sap login: %v", apperr.ErrTransport, err)
	}
	defer closeBody(c.logger, resp.Body)

	if !successStatus(resp.StatusCode) {
		raw, _ := io.ReadAll(resp.Body)
		return Session{}, fmt.Errorf("%w: status %d: %s", apperr.ErrUpstreamAuth, resp.StatusCode, raw)
	}

	session, route, ok := sessionCookies(resp.Header.Values("Set-Cookie"))
	if !ok {
		return Session{}, fmt.Errorf("%w: status %d", apperr.ErrMalformedAuthResponse, resp.StatusCode)
	}

	c.logger.Debug("sap session opened")
	return Session{Cookie: session + "; " + route}, nil
}

type deliveryNoteResponse struct {
	CardCode string `json:"CardCode"`
}

// DeliveryNote fetches a delivery note by document entry. Only the partner
// code is consumed.
func (c *Client) DeliveryNote(ctx context.Context, sess Session, docEntry int64) (domain.DeliveryNote, error) {
	url := fmt.Sprintf("%s/DeliveryNotes(%d)", c.cfg.BaseURL, docEntry)
	raw, err := c.get(ctx, sess, url)
	if err != nil {
		return domain.DeliveryNote{}, fmt.Errorf("failed to fetch delivery %d: %w", docEntry, err)
	}

	var note deliveryNoteResponse
	if err := json.Unmarshal(raw, &note); err != nil {
		return domain.DeliveryNote{}, fmt.Errorf("sap delivery note %d: decode: %w", docEntry, err)
	}

	return domain.DeliveryNote{DocEntry: docEntry, CardCode: note.CardCode}, nil
}

// BusinessPartner fetches a partner record by card code. Field extraction is
// tolerant: each optional field independently falls back to its declared
// default, only a failed fetch aborts.
func (c *Client) BusinessPartner(ctx context.Context, sess Session, cardCode string) (domain.BusinessPartner, error) {
	url := fmt.Sprintf("%s/BusinessPartners('%s')", c.cfg.BaseURL, cardCode)
	raw, err := c.get(ctx, sess, url)
	if err != nil {
		return domain.BusinessPartner{}, fmt.Errorf("failed to fetch business partner %q: %w", cardCode, err)
	}

	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.BusinessPartner{}, fmt.Errorf("sap business partner %q: decode: %w", cardCode, err)
	}

	return partnerFromRecord(cardCode, record), nil
}

// get performs an authenticated read and returns the body on a success status.
func (c *Client) get(ctx context.Context, sess Session, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cookie", sess.Cookie)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrTransport, err)
	}
	defer closeBody(c.logger, resp.Body)

	if !successStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: status %d", apperr.ErrUpstreamFetch, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func successStatus(code int) bool {
	return code >= 200 && code < 300
}

func closeBody(logger logx.Logger, body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Warn("sap response body close", logx.Err(err))
	}
}
