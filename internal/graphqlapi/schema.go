package graphqlapi

import (
	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
)

// NewSchema assembles the root query from the per-domain fields.
func NewSchema(application *app.Application) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"shuttle":        shuttleField(application),
			"commuteShuttle": commuteShuttleField(application),
			"bus":            busField(application),
			"subway":         subwayField(application),
			"readingRoom":    readingRoomField(application),
			"cafeteria":      cafeteriaField(application),
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

func boolListArg(p graphql.ResolveParams, name string) []bool {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]bool, 0, len(raw))
	for _, v := range raw {
		if b, ok := v.(bool); ok {
			values = append(values, b)
		}
	}
	return values
}

func intListArg(p graphql.ResolveParams, name string) []int {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]int, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(int); ok {
			values = append(values, n)
		}
	}
	return values
}

func stringArg(p graphql.ResolveParams, name string) (string, bool) {
	s, ok := p.Args[name].(string)
	return s, ok
}

func intArg(p graphql.ResolveParams, name string) (int, bool) {
	n, ok := p.Args[name].(int)
	return n, ok
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
