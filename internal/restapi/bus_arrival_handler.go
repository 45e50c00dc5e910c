package restapi

import (
	"errors"
	"net/http"
	"time"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/timetable"
	"campusapi.hyuabot.app/internal/utils"
)

type busRealtimeItem struct {
	Sequence  int       `json:"sequence"`
	Stop      int       `json:"stop"`
	Seat      int       `json:"seat"`
	Time      float64   `json:"time"` // seconds until arrival
	LowPlate  bool      `json:"low_plate"`
	UpdatedAt time.Time `json:"updated_at"`
}

type busRouteArrivalItem struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Sequence  int                `json:"sequence"`
	Arrival   []busRealtimeItem  `json:"arrival"`
	Timetable []models.TimeOfDay `json:"timetable"`
}

type busStopArrivalResponse struct {
	ID       int                   `json:"id"`
	Name     string                `json:"name"`
	Mobile   string                `json:"mobile"`
	Location busStopLocation       `json:"location"`
	Routes   []busRouteArrivalItem `json:"route"`
}

// busArrivalHandler returns, per route serving the stop, the live arrivals
// and the rest of today's scheduled departures. The weekday timetable is
// selected by the calendar: Saturday runs the saturday table, Sunday or a
// holiday the sunday table.
func (api *RestAPI) busArrivalHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()

	stopID, err := utils.IntParam("stop_id", utils.ExtractParam(r, "stop_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	stop, err := api.Repo.BusStop(ctx, stopID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Bus stop not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	memberships, err := api.Repo.BusStopRoutes(ctx, stop.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	weekdayName := api.Oracle.WeekdayName(now)
	nowTime := models.TimeOfDayOf(now)

	routes := make([]busRouteArrivalItem, 0, len(memberships))
	for _, membership := range memberships {
		route, err := api.Repo.BusRoute(ctx, membership.RouteID)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		realtimeRows, err := api.Repo.BusRealtime(ctx, stop.ID, membership.RouteID)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		realtime := make([]busRealtimeItem, 0, len(realtimeRows))
		for i, row := range realtimeRows {
			realtime = append(realtime, busRealtimeItem{
				Sequence:  i + 1,
				Stop:      row.RemainingStop,
				Seat:      row.RemainingSeat,
				Time:      (time.Duration(row.RemainingTime) * time.Minute).Seconds(),
				LowPlate:  row.LowFloor,
				UpdatedAt: row.UpdatedAt,
			})
		}

		timetableRows, err := api.Repo.BusTimetable(ctx, membership.RouteID, membership.StartStopID)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		departures := make([]models.TimeOfDay, 0, len(timetableRows))
		for _, row := range timetableRows {
			if row.Weekday != weekdayName {
				continue
			}
			if !timetable.InWindow(row.DepartureTime, &nowTime, nil) {
				continue
			}
			departures = append(departures, row.DepartureTime)
		}

		routes = append(routes, busRouteArrivalItem{
			ID:        route.ID,
			Name:      route.Name,
			Sequence:  membership.Order,
			Arrival:   realtime,
			Timetable: departures,
		})
	}

	api.sendResponse(w, r, busStopArrivalResponse{
		ID:       stop.ID,
		Name:     stop.Name,
		Mobile:   stop.MobileNumber,
		Location: busStopLocationOf(*stop),
		Routes:   routes,
	})
}
