// Package graphqlapi exposes the aggregated read model through a single
// /query endpoint. The schema is assembled at startup from per-domain
// query fields; resolvers reuse the same repository and scheduling core
// as the REST handlers.
package graphqlapi

import (
	"github.com/graphql-go/handler"

	"campusapi.hyuabot.app/internal/app"
)

// NewHandler builds the /query HTTP handler. Schema construction only
// fails on programming errors, so it panics at startup rather than
// returning an error to every caller.
func NewHandler(application *app.Application) *handler.Handler {
	schema, err := NewSchema(application)
	if err != nil {
		panic(err)
	}
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   false,
		GraphiQL: false,
	})
}
