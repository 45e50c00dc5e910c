package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuttleRouteList(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/route")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleRouteListResponse](t, rec)

	require.Len(t, body.Routes, 2)
	assert.Equal(t, "DHDD", body.Routes[0].Name)
	assert.Equal(t, "DH", body.Routes[0].Tag)
	assert.Equal(t, "한대앞 직행", body.Routes[0].Korean)
}

func TestShuttleRouteListTagFilter(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/route?tag=DY")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleRouteListResponse](t, rec)

	require.Len(t, body.Routes, 1)
	assert.Equal(t, "DYDD", body.Routes[0].Name)
}

func TestShuttleRouteDetail(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/route/DHDD")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleRouteResponse](t, rec)

	assert.Equal(t, "DHDD", body.Name)
	require.Len(t, body.Stops, 2)
	assert.Equal(t, shuttleRouteStopItem{Name: "dormitory_o", Sequence: 1, Time: 0}, body.Stops[0])
	assert.Equal(t, shuttleRouteStopItem{Name: "shuttlecock_o", Sequence: 2, Time: 10}, body.Stops[1])
}

func TestShuttleRouteDetailNotFound(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/route/NOPE")

	requireMessage(t, rec, http.StatusNotFound, "Shuttle route not found.")
}

func TestShuttleStopList(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleStopListResponse](t, rec)

	require.Len(t, body.Stops, 2)
	assert.Equal(t, "dormitory_o", body.Stops[0].Name)
}

func TestShuttleStopDetail(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop/shuttlecock_o")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleStopResponse](t, rec)

	assert.Equal(t, "shuttlecock_o", body.Name)
	assert.Equal(t, []string{"DHDD", "DYDD"}, body.Routes)
}

func TestShuttleStopDetailNotFound(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop/nowhere")

	requireMessage(t, rec, http.StatusNotFound, "Shuttle stop not found.")
}
