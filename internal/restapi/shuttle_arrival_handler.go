package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/timetable"
	"campusapi.hyuabot.app/internal/utils"
)

type shuttleQueryEcho struct {
	Period   string `json:"period"`
	Weekdays bool   `json:"weekdays"`
	Holiday  string `json:"holiday"`
}

type shuttleArrivalRouteItem struct {
	Name          string             `json:"name"`
	Tag           string             `json:"tag"`
	DepartureTime []models.TimeOfDay `json:"departure_time"`
	RemainingTime []float64          `json:"remaining_time"`
}

type shuttleArrivalRouteResponse struct {
	Name   string                    `json:"name"`
	Query  shuttleQueryEcho          `json:"query"`
	Routes []shuttleArrivalRouteItem `json:"route"`
}

type shuttleArrivalTagItem struct {
	Tag           string             `json:"tag"`
	DepartureTime []models.TimeOfDay `json:"departure_time"`
	RemainingTime []float64          `json:"remaining_time"`
}

type shuttleArrivalTagResponse struct {
	Name  string                  `json:"name"`
	Query shuttleQueryEcho        `json:"query"`
	Tags  []shuttleArrivalTagItem `json:"tag"`
}

func (api *RestAPI) shuttleArrivalHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()
	values := r.URL.Query()

	output, err := timetable.ParseOutput(values.Get("output"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	weekdays, err := utils.BoolList(values, "weekdays")
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	start, err := utils.TimeOfDayParam(values, "start")
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	end, err := utils.TimeOfDayParam(values, "end")
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	stop, err := api.Repo.ShuttleStop(ctx, utils.ExtractParam(r, "stop_id"))
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Shuttle stop not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if start == nil {
		// Arrivals only look forward: departures already gone today are
		// dropped unless the caller widens the window explicitly.
		nowTime := models.TimeOfDayOf(now)
		start = &nowTime
	}

	q, err := timetable.Resolve(ctx, api.Oracle, now, timetable.Overrides{
		Periods:  utils.StringList(values, "period"),
		Weekdays: weekdays,
		Holiday:  values.Get("holiday"),
		Start:    start,
		End:      end,
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	routeViews, err := api.collectRouteArrivals(r, stop.Name, q)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	echo := shuttleQueryEcho{
		Period:   q.Periods[0],
		Weekdays: q.Weekdays[0],
		Holiday:  q.Holiday,
	}

	if output == timetable.OutputTag {
		tags := make([]shuttleArrivalTagItem, 0, len(models.ShuttleTags))
		for _, view := range timetable.GroupByTag(routeViews) {
			times, remaining := splitDepartures(view.Departures)
			tags = append(tags, shuttleArrivalTagItem{
				Tag:           string(view.Tag),
				DepartureTime: times,
				RemainingTime: remaining,
			})
		}
		api.sendResponse(w, r, shuttleArrivalTagResponse{Name: stop.Name, Query: echo, Tags: tags})
		return
	}

	routes := make([]shuttleArrivalRouteItem, 0, len(routeViews))
	for _, view := range routeViews {
		times, remaining := splitDepartures(view.Departures)
		routes = append(routes, shuttleArrivalRouteItem{
			Name:          view.Route.Name,
			Tag:           string(view.Route.Tag),
			DepartureTime: times,
			RemainingTime: remaining,
		})
	}
	api.sendResponse(w, r, shuttleArrivalRouteResponse{Name: stop.Name, Query: echo, Routes: routes})
}

// collectRouteArrivals builds the per-route departure views for one stop
// under an already resolved query.
func (api *RestAPI) collectRouteArrivals(r *http.Request, stopName string, q timetable.Query) ([]timetable.RouteArrivals, error) {
	ctx := r.Context()
	memberships, err := api.Repo.ShuttleStopRoutes(ctx, stopName)
	if err != nil {
		return nil, err
	}

	views := make([]timetable.RouteArrivals, 0, len(memberships))
	for _, membership := range memberships {
		route, err := api.Repo.ShuttleRoute(ctx, membership.RouteName)
		if err != nil {
			return nil, err
		}
		routeStops, err := api.Repo.ShuttleRouteStops(ctx, membership.RouteName)
		if err != nil {
			return nil, err
		}
		rows, err := api.Repo.ShuttleTimetable(ctx, membership.RouteName, stopName)
		if err != nil {
			return nil, err
		}
		views = append(views, timetable.RouteArrivals{
			Route:      *route,
			Departures: timetable.BuildDepartures(rows, q, membership, routeStops),
		})
	}
	return views, nil
}

func splitDepartures(departures []timetable.Departure) ([]models.TimeOfDay, []float64) {
	times := make([]models.TimeOfDay, 0, len(departures))
	remaining := make([]float64, 0, len(departures))
	for _, d := range departures {
		times = append(times, d.Time)
		remaining = append(remaining, d.Remaining.Seconds())
	}
	return times, remaining
}
