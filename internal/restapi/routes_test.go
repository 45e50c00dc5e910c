package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/healthz")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSHeaders(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/healthz")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)
	preflight := httptest.NewRecorder()
	handler.ServeHTTP(preflight, req)
	assert.Equal(t, http.StatusNoContent, preflight.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campusapi_http_requests_in_flight")
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseContentType(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop")

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
