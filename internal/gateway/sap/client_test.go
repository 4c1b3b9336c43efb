package sap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-shipment-bridge/internal/apperr"
	"service-shipment-bridge/internal/gateway/sap"
	"service-shipment-bridge/internal/logx"
)

func newClient(t *testing.T, baseURL string) *sap.Client {
	t.Helper()
	cfg := sap.Config{
		BaseURL:   baseURL,
		CompanyDB: "TESTDB",
		Username:  "manager",
		Password:  "secret",
	}
	return sap.NewClient(cfg, 5*time.Second, logx.Nop())
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/Login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "TESTDB", body["CompanyDB"])
		require.Equal(t, "manager", body["UserName"])
		require.Equal(t, "secret", body["Password"])

		w.Header().Add("Set-Cookie", "B1SESSION=abc; path=/; HttpOnly")
		w.Header().Add("Set-Cookie", "ROUTEID=.node1; path=/")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sess, err := newClient(t, srv.URL).Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B1SESSION=abc; ROUTEID=.node1", sess.Cookie)
}

func TestLogin_TrailingSlashBaseURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Login", r.URL.Path)
		w.Header().Add("Set-Cookie", "B1SESSION=abc")
		w.Header().Add("Set-Cookie", "ROUTEID=.node1")
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL+"/").Login(context.Background())
	require.NoError(t, err)
}

func TestLogin_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid credentials"}}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Login(context.Background())
	require.ErrorIs(t, err, apperr.ErrUpstreamAuth)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_MissingCookies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cookies []string
	}{
		{name: "none"},
		{name: "session only", cookies: []string{"B1SESSION=abc; path=/"}},
		{name: "route only", cookies: []string{"ROUTEID=.node1"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				for _, c := range tc.cookies {
					w.Header().Add("Set-Cookie", c)
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			_, err := newClient(t, srv.URL).Login(context.Background())
			require.ErrorIs(t, err, apperr.ErrMalformedAuthResponse)
		})
	}
}

func TestLogin_Transport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := newClient(t, srv.URL).Login(context.Background())
	require.ErrorIs(t, err, apperr.ErrTransport)
}

func TestDeliveryNote_OK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/DeliveryNotes(42)", r.URL.Path)
		require.Equal(t, "B1SESSION=abc; ROUTEID=.node1", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte(`{"DocEntry":42,"CardCode":"C100","Comments":"irrelevant"}`))
	}))
	defer srv.Close()

	sess := sap.Session{Cookie: "B1SESSION=abc; ROUTEID=.node1"}
	note, err := newClient(t, srv.URL).DeliveryNote(context.Background(), sess, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), note.DocEntry)
	assert.Equal(t, "C100", note.CardCode)
}

func TestDeliveryNote_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).DeliveryNote(context.Background(), sap.Session{}, 42)
	require.ErrorIs(t, err, apperr.ErrUpstreamFetch)
	assert.Contains(t, err.Error(), "failed to fetch delivery 42")
}

func TestBusinessPartner_FullRecord(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/BusinessPartners('C100')", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"CardCode": "C100",
			"Address": "Main St 1",
			"ZipCode": "1234AB",
			"City": "Rotterdam",
			"Country": "NL",
			"ContactPerson": "J. Doe",
			"Phone1": "0101234567",
			"EmailAddress": "j@x.com"
		}`))
	}))
	defer srv.Close()

	bp, err := newClient(t, srv.URL).BusinessPartner(context.Background(), sap.Session{}, "C100")
	require.NoError(t, err)
	assert.Equal(t, "C100", bp.CardCode)
	assert.Equal(t, "Main St 1", bp.Address)
	assert.Equal(t, "1234AB", bp.ZipCode)
	assert.Equal(t, "Rotterdam", bp.City)
	assert.Equal(t, "NL", bp.Country)
	assert.Equal(t, "J. Doe", bp.ContactPerson)
	assert.Equal(t, "0101234567", bp.Phone)
	assert.Equal(t, "j@x.com", bp.Email)
}

func TestBusinessPartner_TolerantRead(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Only the card code, everything else absent or null.
		_, _ = w.Write([]byte(`{"CardCode":"C200","ZipCode":null,"Phone1":12345}`))
	}))
	defer srv.Close()

	bp, err := newClient(t, srv.URL).BusinessPartner(context.Background(), sap.Session{}, "C200")
	require.NoError(t, err)
	assert.Equal(t, "0000XX", bp.ZipCode)
	assert.Equal(t, "SAP Contact", bp.ContactPerson)
	assert.Equal(t, "", bp.Address)
	assert.Equal(t, "", bp.City)
	assert.Equal(t, "", bp.Country)
	assert.Equal(t, "", bp.Phone)
	assert.Equal(t, "", bp.Email)
}

func TestBusinessPartner_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).BusinessPartner(context.Background(), sap.Session{}, "C100")
	require.ErrorIs(t, err, apperr.ErrUpstreamFetch)
	assert.Contains(t, err.Error(), `"C100"`)
}
