package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/models"
)

func TestShuttleTimetableRouteMode(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop/shuttlecock_o/timetable")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleTimetableRouteResponse](t, rec)

	assert.Equal(t, "shuttlecock_o", body.Name)
	assert.Equal(t, "semester", body.Query.Period)

	require.Len(t, body.Routes, 2)
	byName := map[string]shuttleTimetableRouteItem{}
	for _, route := range body.Routes {
		byName[route.Name] = route
	}

	// The schedule view ignores the clock: past departures stay listed.
	dhdd := byName["DHDD"]
	require.Len(t, dhdd.Weekdays, 3)
	assert.Equal(t, models.NewTimeOfDay(7, 30, 0), dhdd.Weekdays[0].DepartureTime)
	assert.Equal(t, models.NewTimeOfDay(8, 30, 0), dhdd.Weekdays[2].DepartureTime)
	require.Len(t, dhdd.Weekends, 1)
	assert.Equal(t, models.NewTimeOfDay(10, 0, 0), dhdd.Weekends[0].DepartureTime)
}

func TestShuttleTimetableTagMode(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop/shuttlecock_o/timetable?output=tag")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleTimetableTagResponse](t, rec)

	require.Len(t, body.Tags, 4)
	assert.Equal(t, "DH", body.Tags[0].Tag)
	assert.Len(t, body.Tags[0].Weekdays, 3)
	assert.Len(t, body.Tags[0].Weekends, 1)
	assert.Empty(t, body.Tags[2].Weekdays)
}

func TestShuttleTimetablePeriodOverride(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop/shuttlecock_o/timetable?period=vacation")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[shuttleTimetableRouteResponse](t, rec)

	assert.Equal(t, "vacation", body.Query.Period)
	for _, route := range body.Routes {
		if route.Name == "DHDD" {
			require.Len(t, route.Weekdays, 1)
			assert.Equal(t, models.NewTimeOfDay(9, 0, 0), route.Weekdays[0].DepartureTime)
		}
	}
}

func TestShuttleTimetableUnknownStop(t *testing.T) {
	api := newTestAPI(t, seedShuttle(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/shuttle/stop/nowhere/timetable")

	requireMessage(t, rec, http.StatusNotFound, "Shuttle stop not found.")
}
