package restapi

import (
	"encoding/json"
	"net/http"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (api *RestAPI) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(messageResponse{Message: message})
	if err != nil {
		api.Logger.Error("failed to encode error response", "error", err)
	}
}

// sendNotFound sends a 404 response with a message body
func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request, message string) {
	api.sendError(w, http.StatusNotFound, message)
}

// badRequestResponse sends a 400 response for invalid parameters
func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.sendError(w, http.StatusBadRequest, err.Error())
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("request failed", "error", err, "path", r.URL.Path)
	api.sendError(w, http.StatusInternalServerError, "internal server error")
}
