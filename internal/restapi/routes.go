package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"campusapi.hyuabot.app/internal/graphqlapi"
)

// Routes builds the full handler chain: routing, the GraphQL endpoint,
// CORS, compression, request logging and metrics.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/shuttle/route", api.shuttleRouteListHandler)
	router.HandlerFunc(http.MethodGet, "/shuttle/route/:route_id", api.shuttleRouteHandler)
	router.HandlerFunc(http.MethodGet, "/shuttle/stop", api.shuttleStopListHandler)
	router.HandlerFunc(http.MethodGet, "/shuttle/stop/:stop_id", api.shuttleStopHandler)
	router.HandlerFunc(http.MethodGet, "/shuttle/stop/:stop_id/arrival", api.shuttleArrivalHandler)
	router.HandlerFunc(http.MethodGet, "/shuttle/stop/:stop_id/timetable", api.shuttleTimetableHandler)

	router.HandlerFunc(http.MethodGet, "/bus/route", api.busRouteListHandler)
	router.HandlerFunc(http.MethodGet, "/bus/route/:route_id", api.busRouteHandler)
	router.HandlerFunc(http.MethodGet, "/bus/stop", api.busStopListHandler)
	router.HandlerFunc(http.MethodGet, "/bus/stop/:stop_id", api.busStopHandler)
	router.HandlerFunc(http.MethodGet, "/bus/stop/:stop_id/arrival", api.busArrivalHandler)
	router.HandlerFunc(http.MethodGet, "/bus/stop/:stop_id/route/:route_id/timetable", api.busTimetableHandler)

	router.HandlerFunc(http.MethodGet, "/subway/station", api.subwayStationListHandler)
	router.HandlerFunc(http.MethodGet, "/subway/station/:station_id", api.subwayStationHandler)
	router.HandlerFunc(http.MethodGet, "/subway/station/:station_id/arrival", api.subwayArrivalHandler)
	router.HandlerFunc(http.MethodGet, "/subway/station/:station_id/timetable", api.subwayTimetableHandler)

	router.HandlerFunc(http.MethodGet, "/campus", api.campusListHandler)
	router.HandlerFunc(http.MethodGet, "/campus/:campus_id", api.campusHandler)

	router.HandlerFunc(http.MethodGet, "/library/:campus_id/room", api.readingRoomListHandler)
	router.HandlerFunc(http.MethodGet, "/library/:campus_id/room/:room_id", api.readingRoomHandler)

	router.HandlerFunc(http.MethodGet, "/cafeteria/:campus_id/restaurant", api.restaurantListHandler)

	router.HandlerFunc(http.MethodGet, "/commute-shuttle/route", api.commuteRouteListHandler)
	router.HandlerFunc(http.MethodGet, "/commute-shuttle/route/:route_id", api.commuteRouteHandler)
	router.HandlerFunc(http.MethodGet, "/commute-shuttle/arrival", api.commuteArrivalHandler)

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	gql := graphqlapi.NewHandler(api.Application)
	router.Handler(http.MethodPost, "/query", gql)
	router.Handler(http.MethodGet, "/query", gql)

	if api.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())
	}

	var handler http.Handler = router
	handler = CORSMiddleware(handler)
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger, api.Metrics)(handler)
	return handler
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Repo.Ping(r.Context()); err != nil {
		if api.Metrics != nil {
			api.Metrics.DBUp.Set(0)
		}
		api.sendError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	if api.Metrics != nil {
		api.Metrics.DBUp.Set(1)
	}
	api.sendResponse(w, r, map[string]string{"status": "ok"})
}
