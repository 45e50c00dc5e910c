package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type busTimetableResponse struct {
	ID        int                `json:"id"`
	Sequence  int                `json:"sequence"`
	Weekdays  []models.TimeOfDay `json:"weekdays"`
	Saturdays []models.TimeOfDay `json:"saturdays"`
	Sundays   []models.TimeOfDay `json:"sundays"`
}

func (api *RestAPI) busTimetableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stopID, err := utils.IntParam("stop_id", utils.ExtractParam(r, "stop_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	routeID, err := utils.IntParam("route_id", utils.ExtractParam(r, "route_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	membership, err := api.Repo.BusRouteStop(ctx, stopID, routeID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Bus route - stop not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	rows, err := api.Repo.BusTimetable(ctx, membership.RouteID, membership.StartStopID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := busTimetableResponse{
		ID:        membership.RouteID,
		Sequence:  membership.Order,
		Weekdays:  []models.TimeOfDay{},
		Saturdays: []models.TimeOfDay{},
		Sundays:   []models.TimeOfDay{},
	}
	for _, row := range rows {
		switch row.Weekday {
		case models.WeekdayNameWeekdays:
			response.Weekdays = append(response.Weekdays, row.DepartureTime)
		case models.WeekdayNameSaturday:
			response.Saturdays = append(response.Saturdays, row.DepartureTime)
		case models.WeekdayNameSunday:
			response.Sundays = append(response.Sundays, row.DepartureTime)
		}
	}
	api.sendResponse(w, r, response)
}
