package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type busRouteListItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type busRouteListResponse struct {
	Routes []busRouteListItem `json:"route"`
}

type busCompany struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
}

type busType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type busTerminal struct {
	ID     int              `json:"id"`
	Name   string           `json:"name"`
	Mobile string           `json:"mobile"`
	First  models.TimeOfDay `json:"first"`
	Last   models.TimeOfDay `json:"last"`
}

type busRouteResponse struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Company  busCompany  `json:"company"`
	Type     busType     `json:"type"`
	Origin   busTerminal `json:"origin"`
	Terminal busTerminal `json:"terminal"`
}

func (api *RestAPI) busRouteListHandler(w http.ResponseWriter, r *http.Request) {
	routes, err := api.Repo.BusRoutes(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]busRouteListItem, 0, len(routes))
	for _, route := range routes {
		items = append(items, busRouteListItem{ID: route.ID, Name: route.Name})
	}
	api.sendResponse(w, r, busRouteListResponse{Routes: items})
}

func (api *RestAPI) busRouteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	routeID, err := utils.IntParam("route_id", utils.ExtractParam(r, "route_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	route, err := api.Repo.BusRoute(ctx, routeID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Bus route not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	origin, err := api.Repo.BusStop(ctx, route.StartStopID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		api.serverErrorResponse(w, r, err)
		return
	}
	terminal, err := api.Repo.BusStop(ctx, route.EndStopID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := busRouteResponse{
		ID:   route.ID,
		Name: route.Name,
		Company: busCompany{
			ID:        route.CompanyID,
			Name:      route.CompanyName,
			Telephone: route.CompanyTelephone,
		},
		Type: busType{
			ID:   route.TypeCode,
			Name: route.TypeName,
		},
		Origin: busTerminal{
			ID:    route.StartStopID,
			First: route.UpFirstTime,
			Last:  route.UpLastTime,
		},
		Terminal: busTerminal{
			ID:    route.EndStopID,
			First: route.DownFirstTime,
			Last:  route.DownLastTime,
		},
	}
	if origin != nil {
		response.Origin.Name = origin.Name
		response.Origin.Mobile = origin.MobileNumber
	}
	if terminal != nil {
		response.Terminal.Name = terminal.Name
		response.Terminal.Mobile = terminal.MobileNumber
	}
	api.sendResponse(w, r, response)
}
