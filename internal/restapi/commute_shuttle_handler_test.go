package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
)

func seedCommute() *repository.Memory {
	return &repository.Memory{
		CommuteRouteRows: []models.CommuteShuttleRoute{
			{Name: "1", Korean: "강남권", English: "Gangnam"},
		},
		CommuteTimetableRows: []models.CommuteShuttleTimetableRow{
			{RouteName: "1", StopName: "양재역", Sequence: 1, DepartureTime: models.NewTimeOfDay(7, 30, 0)},
			{RouteName: "1", StopName: "판교역", Sequence: 2, DepartureTime: models.NewTimeOfDay(7, 50, 0)},
			{RouteName: "1", StopName: "한양대", Sequence: 3, DepartureTime: models.NewTimeOfDay(8, 10, 0)},
		},
		PeriodRows: []models.Period{
			{
				Type:  "semester",
				Start: time.Date(2024, 3, 2, 0, 0, 0, 0, seoul),
				End:   time.Date(2024, 6, 21, 23, 59, 59, 0, seoul),
			},
		},
	}
}

func TestCommuteRouteList(t *testing.T) {
	api := newTestAPI(t, seedCommute(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/commute-shuttle/route")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[commuteRouteListResponse](t, rec)

	require.Len(t, body.Routes, 1)
	assert.Equal(t, commuteRouteListItem{ID: "1", Korean: "강남권", English: "Gangnam"}, body.Routes[0])
}

func TestCommuteRouteDetail(t *testing.T) {
	api := newTestAPI(t, seedCommute(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/commute-shuttle/route/1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[commuteRouteResponse](t, rec)

	assert.Equal(t, "1", body.Name)
	assert.Equal(t, commuteStatusSuccess, body.Status)
	require.Len(t, body.Timetable, 3)

	// At 08:00 the bus is between the second and third stops.
	assert.Equal(t, "판교역", body.Current.Start.Name)
	assert.Equal(t, models.NewTimeOfDay(7, 50, 0), body.Current.Start.Time)
	assert.Equal(t, "한양대", body.Current.End.Name)
}

func TestCommuteRouteDetailNotFound(t *testing.T) {
	api := newTestAPI(t, seedCommute(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/commute-shuttle/route/9")

	requireMessage(t, rec, http.StatusNotFound, "Commute shuttle route not found.")
}

func TestCommuteArrival(t *testing.T) {
	api := newTestAPI(t, seedCommute(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/commute-shuttle/arrival")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[commuteArrivalResponse](t, rec)

	assert.Equal(t, commuteStatusSuccess, body.Status)
	require.Len(t, body.Routes, 1)
	assert.Equal(t, "판교역", body.Routes[0].Current.Start.Name)
}

func TestCommuteStatusErrors(t *testing.T) {
	t.Run("weekend", func(t *testing.T) {
		saturday := time.Date(2024, 5, 11, 8, 0, 0, 0, seoul)
		api := newTestAPI(t, seedCommute(), saturday)

		rec := doRequest(t, api.Routes(), "/commute-shuttle/arrival")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[commuteArrivalResponse](t, rec)
		assert.Equal(t, commuteStatusWeekends, body.Status)
	})

	t.Run("outside the semester", func(t *testing.T) {
		repo := seedCommute()
		repo.PeriodRows[0].Type = "vacation"
		api := newTestAPI(t, repo, testNow)

		rec := doRequest(t, api.Routes(), "/commute-shuttle/arrival")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[commuteArrivalResponse](t, rec)
		assert.Equal(t, commuteStatusNotSemester, body.Status)
	})

	t.Run("holiday", func(t *testing.T) {
		repo := seedCommute()
		repo.HolidayRows = []models.Holiday{
			{Date: time.Date(2024, 5, 13, 0, 0, 0, 0, seoul), Type: "halt", Calendar: models.CalendarSolar},
		}
		api := newTestAPI(t, repo, testNow)

		rec := doRequest(t, api.Routes(), "/commute-shuttle/arrival")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[commuteArrivalResponse](t, rec)
		assert.Equal(t, commuteStatusHoliday, body.Status)
	})
}
