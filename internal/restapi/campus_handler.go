package restapi

import (
	"errors"
	"net/http"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type campusListResponse struct {
	Campuses []models.Campus `json:"campus"`
}

func (api *RestAPI) campusListHandler(w http.ResponseWriter, r *http.Request) {
	campuses, err := api.Repo.Campuses(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if campuses == nil {
		campuses = []models.Campus{}
	}
	api.sendResponse(w, r, campusListResponse{Campuses: campuses})
}

func (api *RestAPI) campusHandler(w http.ResponseWriter, r *http.Request) {
	campusID, err := utils.IntParam("campus_id", utils.ExtractParam(r, "campus_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	campus, err := api.Repo.Campus(r.Context(), campusID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Campus not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, campus)
}
