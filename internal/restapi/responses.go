package restapi

import (
	"encoding/json"
	"net/http"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}
