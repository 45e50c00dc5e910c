package utils

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a named path parameter from the request context.
func ExtractParam(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName(name)
}
