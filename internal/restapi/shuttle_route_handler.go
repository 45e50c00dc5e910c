package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type shuttleRouteListItem struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	Korean  string `json:"korean"`
	English string `json:"english"`
}

type shuttleRouteListResponse struct {
	Routes []shuttleRouteListItem `json:"route"`
}

type shuttleRouteStopItem struct {
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
	Time     int    `json:"time"` // cumulative minutes from the first stop
}

type shuttleRouteResponse struct {
	Name    string                 `json:"name"`
	Tag     string                 `json:"tag"`
	Korean  string                 `json:"korean"`
	English string                 `json:"english"`
	Stops   []shuttleRouteStopItem `json:"stop"`
}

func (api *RestAPI) shuttleRouteListHandler(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	routes, err := api.Repo.ShuttleRoutes(r.Context(), values.Get("name"), values.Get("tag"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]shuttleRouteListItem, 0, len(routes))
	for _, route := range routes {
		items = append(items, shuttleRouteListItem{
			Name:    route.Name,
			Tag:     string(route.Tag),
			Korean:  route.Korean,
			English: route.English,
		})
	}
	api.sendResponse(w, r, shuttleRouteListResponse{Routes: items})
}

func (api *RestAPI) shuttleRouteHandler(w http.ResponseWriter, r *http.Request) {
	routeID := utils.ExtractParam(r, "route_id")

	route, err := api.Repo.ShuttleRoute(r.Context(), routeID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Shuttle route not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	routeStops, err := api.Repo.ShuttleRouteStops(r.Context(), route.Name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	stops := make([]shuttleRouteStopItem, 0, len(routeStops))
	for _, rs := range routeStops {
		stops = append(stops, shuttleRouteStopItem{
			Name:     rs.StopName,
			Sequence: rs.StopOrder,
			Time:     rs.CumulativeTime,
		})
	}

	api.sendResponse(w, r, shuttleRouteResponse{
		Name:    route.Name,
		Tag:     string(route.Tag),
		Korean:  route.Korean,
		English: route.English,
		Stops:   stops,
	})
}
