package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type busStopListItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type busStopListResponse struct {
	Stops []busStopListItem `json:"stop"`
}

type busStopLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	District  int     `json:"district"`
	Region    string  `json:"region"`
}

type busStopRouteItem struct {
	ID       int `json:"id"`
	Sequence int `json:"sequence"`
}

type busStopResponse struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Mobile   string             `json:"mobile"`
	Location busStopLocation    `json:"location"`
	Routes   []busStopRouteItem `json:"route"`
}

func (api *RestAPI) busStopListHandler(w http.ResponseWriter, r *http.Request) {
	stops, err := api.Repo.BusStops(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]busStopListItem, 0, len(stops))
	for _, stop := range stops {
		items = append(items, busStopListItem{
			ID:     stop.ID,
			Name:   stop.Name,
			Mobile: stop.MobileNumber,
		})
	}
	api.sendResponse(w, r, busStopListResponse{Stops: items})
}

func (api *RestAPI) busStopHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
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

	routes := make([]busStopRouteItem, 0, len(memberships))
	for _, rs := range memberships {
		routes = append(routes, busStopRouteItem{ID: rs.RouteID, Sequence: rs.Order})
	}

	api.sendResponse(w, r, busStopResponse{
		ID:       stop.ID,
		Name:     stop.Name,
		Mobile:   stop.MobileNumber,
		Location: busStopLocationOf(*stop),
		Routes:   routes,
	})
}

func busStopLocationOf(stop models.BusStop) busStopLocation {
	return busStopLocation{
		Latitude:  stop.Latitude,
		Longitude: stop.Longitude,
		District:  stop.District,
		Region:    stop.Region,
	}
}
