package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type shuttleStopListItem struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type shuttleStopListResponse struct {
	Stops []shuttleStopListItem `json:"stop"`
}

type shuttleStopResponse struct {
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Routes    []string `json:"route"`
}

func (api *RestAPI) shuttleStopListHandler(w http.ResponseWriter, r *http.Request) {
	stops, err := api.Repo.ShuttleStops(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]shuttleStopListItem, 0, len(stops))
	for _, stop := range stops {
		items = append(items, shuttleStopListItem{
			Name:      stop.Name,
			Latitude:  stop.Latitude,
			Longitude: stop.Longitude,
		})
	}
	api.sendResponse(w, r, shuttleStopListResponse{Stops: items})
}

func (api *RestAPI) shuttleStopHandler(w http.ResponseWriter, r *http.Request) {
	stopID := utils.ExtractParam(r, "stop_id")

	stop, err := api.Repo.ShuttleStop(r.Context(), stopID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Shuttle stop not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	memberships, err := api.Repo.ShuttleStopRoutes(r.Context(), stop.Name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	routes := make([]string, 0, len(memberships))
	for _, rs := range memberships {
		routes = append(routes, rs.RouteName)
	}

	api.sendResponse(w, r, shuttleStopResponse{
		Name:      stop.Name,
		Latitude:  stop.Latitude,
		Longitude: stop.Longitude,
		Routes:    routes,
	})
}
