package mockplatform

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, s *Server, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	rec := serve(t, New(Config{}), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestFixtures(t *testing.T) {
	s := New(Config{})

	tests := []struct {
		method string
		target string
		want   string
	}{
		{http.MethodGet, "/api/nsk/v1/resources/stations", "JFK"},
		{http.MethodGet, "/api/nsk/v2/resources/currencies", "KES"},
		{http.MethodPost, "/api/nsk/v4/availability/search/simple", "journeyKey"},
		{http.MethodGet, "/api/nsk/v1/booking", "QX7P2M"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(t, s, tt.method, tt.target, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
	assert.Equal(t, 1, s.Hits(http.MethodGet, "/api/nsk/v1/resources/stations"))
}

func TestEchoesUnknownRoutes(t *testing.T) {
	s := New(Config{})

	rec := serve(t, s, http.MethodPost, "/api/nsk/v3/booking/passengers/MCFBRFR-/documents?x=1",
		`{"number":"X1234567"}`, map[string]string{"X-Request-ID": "req-1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := decode(t, rec)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "POST", data["method"])
	assert.Equal(t, "v3", data["version"])
	assert.Equal(t, "booking/passengers/MCFBRFR-/documents", data["route"])
	assert.Equal(t, map[string]any{"number": "X1234567"}, data["body"])
	assert.Equal(t, "req-1", data["requestId"])
	assert.NotEmpty(t, data["key"])
}

func TestStatusInjection(t *testing.T) {
	s := New(Config{})

	rec := serve(t, s, http.MethodGet, "/api/nsk/v1/resources/stations", "", map[string]string{StatusHeader: "503"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "injected failure")

	rec = serve(t, s, http.MethodGet, "/api/nsk/v1/resources/stations", "", map[string]string{StatusHeader: "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenRequired(t *testing.T) {
	s := New(Config{Token: "secret"})

	rec := serve(t, s, http.MethodGet, "/api/nsk/v1/booking", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, s, http.MethodGet, "/api/nsk/v1/booking", "", map[string]string{"Authorization": "secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRejectsMalformedBody(t *testing.T) {
	rec := serve(t, New(Config{}), http.MethodPut, "/api/nsk/v1/user/preferences", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownVersionPath(t *testing.T) {
	rec := serve(t, New(Config{}), http.MethodGet, "/api/nsk/latest/booking", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
