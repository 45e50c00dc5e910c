package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/app"
	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/logging"
	"campusapi.hyuabot.app/internal/metrics"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
)

var seoul = time.FixedZone("KST", 9*3600)

// testNow is a regular semester Monday morning.
var testNow = time.Date(2024, 5, 13, 8, 0, 0, 0, seoul)

func newTestAPI(t *testing.T, repo *repository.Memory, now time.Time) *RestAPI {
	t.Helper()
	return NewRestAPI(&app.Application{
		Logger:   logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Repo:     repo,
		Oracle:   calendarutil.New(repo, nil),
		Metrics:  metrics.NewCollector(),
		Location: now.Location(),
		NowFunc:  func() time.Time { return now },
	})
}

func doRequest(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code)
	body := decodeBody[messageResponse](t, rec)
	require.Equal(t, message, body.Message)
}

// seedShuttle covers one outbound stop served by two routes on different
// tags, with semester and vacation rows on both the weekday and weekend
// tables.
func seedShuttle() *repository.Memory {
	return &repository.Memory{
		ShuttleStopRows: []models.ShuttleStop{
			{Name: "dormitory_o", Latitude: 37.29339, Longitude: 126.83630},
			{Name: "shuttlecock_o", Latitude: 37.29875, Longitude: 126.83790},
		},
		ShuttleRouteRows: []models.ShuttleRoute{
			{Name: "DHDD", Tag: models.ShuttleTagDH, Korean: "한대앞 직행", English: "Direct to Station"},
			{Name: "DYDD", Tag: models.ShuttleTagDY, Korean: "예술인 직행", English: "Direct to Yesulin"},
		},
		ShuttleRouteStopRows: []models.ShuttleRouteStop{
			{RouteName: "DHDD", StopName: "dormitory_o", StopOrder: 1, CumulativeTime: 0},
			{RouteName: "DHDD", StopName: "shuttlecock_o", StopOrder: 2, CumulativeTime: 10},
			{RouteName: "DYDD", StopName: "dormitory_o", StopOrder: 1, CumulativeTime: 0},
			{RouteName: "DYDD", StopName: "shuttlecock_o", StopOrder: 2, CumulativeTime: 5},
		},
		ShuttleTimetableRows: []models.ShuttleTimetableRow{
			{PeriodType: "semester", Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(7, 30, 0)},
			{PeriodType: "semester", Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(8, 10, 0)},
			{PeriodType: "semester", Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(8, 30, 0)},
			{PeriodType: "semester", Weekday: false, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(10, 0, 0)},
			{PeriodType: "vacation", Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(9, 0, 0)},
			{PeriodType: "semester", Weekday: true, RouteName: "DYDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(8, 20, 0)},
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
