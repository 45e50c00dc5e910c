package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/timetable"
	"campusapi.hyuabot.app/internal/utils"
)

type shuttleTimetableEntry struct {
	Name          string           `json:"name"`
	DepartureTime models.TimeOfDay `json:"departure_time"`
}

type shuttleTimetableRouteItem struct {
	Name     string                  `json:"name"`
	Tag      string                  `json:"tag"`
	Weekdays []shuttleTimetableEntry `json:"weekdays"`
	Weekends []shuttleTimetableEntry `json:"weekends"`
}

type shuttleTimetableTagItem struct {
	Tag      string                  `json:"tag"`
	Weekdays []shuttleTimetableEntry `json:"weekdays"`
	Weekends []shuttleTimetableEntry `json:"weekends"`
}

type shuttleTimetableQueryEcho struct {
	Period string `json:"period"`
}

type shuttleTimetableRouteResponse struct {
	Name   string                      `json:"name"`
	Query  shuttleTimetableQueryEcho   `json:"query"`
	Routes []shuttleTimetableRouteItem `json:"route"`
}

type shuttleTimetableTagResponse struct {
	Name  string                    `json:"name"`
	Query shuttleTimetableQueryEcho `json:"query"`
	Tags  []shuttleTimetableTagItem `json:"tag"`
}

// shuttleTimetableHandler serves the static schedule for a stop, grouped
// into weekday and weekend lists. No remaining time is computed.
func (api *RestAPI) shuttleTimetableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()
	values := r.URL.Query()

	output, err := timetable.ParseOutput(values.Get("output"))
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

	periods := utils.StringList(values, "period")
	if len(periods) == 0 {
		period, err := api.Oracle.CurrentPeriod(ctx, now)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		periods = []string{period}
	}

	weekdayQuery := timetable.Query{
		Now:      now,
		Periods:  periods,
		Weekdays: []bool{true},
		Holiday:  calendarutil.HolidayNormal,
		Start:    start,
		End:      end,
	}
	weekendQuery := weekdayQuery
	weekendQuery.Weekdays = []bool{false}

	memberships, err := api.Repo.ShuttleStopRoutes(ctx, stop.Name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	type routeSchedule struct {
		route    models.ShuttleRoute
		weekdays []timetable.Departure
		weekends []timetable.Departure
	}

	schedules := make([]routeSchedule, 0, len(memberships))
	for _, membership := range memberships {
		route, err := api.Repo.ShuttleRoute(ctx, membership.RouteName)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		rows, err := api.Repo.ShuttleTimetable(ctx, membership.RouteName, stop.Name)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		schedules = append(schedules, routeSchedule{
			route:    *route,
			weekdays: scheduleDepartures(rows, weekdayQuery),
			weekends: scheduleDepartures(rows, weekendQuery),
		})
	}

	echo := shuttleTimetableQueryEcho{Period: periods[0]}

	if output == timetable.OutputTag {
		weekdayViews := make([]timetable.RouteArrivals, 0, len(schedules))
		weekendViews := make([]timetable.RouteArrivals, 0, len(schedules))
		for _, s := range schedules {
			weekdayViews = append(weekdayViews, timetable.RouteArrivals{Route: s.route, Departures: s.weekdays})
			weekendViews = append(weekendViews, timetable.RouteArrivals{Route: s.route, Departures: s.weekends})
		}
		weekdayTags := timetable.GroupByTag(weekdayViews)
		weekendTags := timetable.GroupByTag(weekendViews)

		tags := make([]shuttleTimetableTagItem, 0, len(weekdayTags))
		for i, view := range weekdayTags {
			tags = append(tags, shuttleTimetableTagItem{
				Tag:      string(view.Tag),
				Weekdays: timetableEntries(view.Departures),
				Weekends: timetableEntries(weekendTags[i].Departures),
			})
		}
		api.sendResponse(w, r, shuttleTimetableTagResponse{Name: stop.Name, Query: echo, Tags: tags})
		return
	}

	routes := make([]shuttleTimetableRouteItem, 0, len(schedules))
	for _, s := range schedules {
		routes = append(routes, shuttleTimetableRouteItem{
			Name:     s.route.Name,
			Tag:      string(s.route.Tag),
			Weekdays: timetableEntries(s.weekdays),
			Weekends: timetableEntries(s.weekends),
		})
	}
	api.sendResponse(w, r, shuttleTimetableRouteResponse{Name: stop.Name, Query: echo, Routes: routes})
}

// scheduleDepartures filters rows for the schedule view without computing
// remaining time or projections.
func scheduleDepartures(rows []models.ShuttleTimetableRow, q timetable.Query) []timetable.Departure {
	filtered := timetable.Filter(rows, q)
	departures := make([]timetable.Departure, 0, len(filtered))
	for _, row := range filtered {
		departures = append(departures, timetable.Departure{
			RouteName: row.RouteName,
			Weekday:   row.Weekday,
			Time:      row.DepartureTime,
		})
	}
	timetable.SortDepartures(departures)
	return departures
}

func timetableEntries(departures []timetable.Departure) []shuttleTimetableEntry {
	entries := make([]shuttleTimetableEntry, 0, len(departures))
	for _, d := range departures {
		entries = append(entries, shuttleTimetableEntry{Name: d.RouteName, DepartureTime: d.Time})
	}
	return entries
}
