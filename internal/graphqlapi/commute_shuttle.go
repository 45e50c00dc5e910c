package graphqlapi

import (
	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
)

type commuteTimetableResult struct {
	StopName string `json:"stopName"`
	Time     string `json:"time"`
}

type commuteRouteResult struct {
	RouteName          string                   `json:"routeName"`
	DescriptionKorean  string                   `json:"descriptionKorean"`
	DescriptionEnglish string                   `json:"descriptionEnglish"`
	Timetable          []commuteTimetableResult `json:"timetable"`
}

func commuteShuttleField(application *app.Application) *graphql.Field {
	timetableType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CommuteShuttleTimetableQuery",
		Fields: graphql.Fields{
			"stopName": &graphql.Field{Type: graphql.String},
			"time":     &graphql.Field{Type: graphql.String},
		},
	})
	routeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CommuteShuttleRouteQuery",
		Fields: graphql.Fields{
			"routeName":          &graphql.Field{Type: graphql.String},
			"descriptionKorean":  &graphql.Field{Type: graphql.String},
			"descriptionEnglish": &graphql.Field{Type: graphql.String},
			"timetable":          &graphql.Field{Type: graphql.NewList(timetableType)},
		},
	})

	return &graphql.Field{
		Type: graphql.NewList(routeType),
		Args: graphql.FieldConfigArgument{
			"name": &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ctx := p.Context
			name, _ := stringArg(p, "name")

			routes, err := application.Repo.CommuteRoutes(ctx, name)
			if err != nil {
				return nil, err
			}

			items := make([]commuteRouteResult, 0, len(routes))
			for _, route := range routes {
				rows, err := application.Repo.CommuteTimetable(ctx, route.Name)
				if err != nil {
					return nil, err
				}
				schedule := make([]commuteTimetableResult, 0, len(rows))
				for _, row := range rows {
					schedule = append(schedule, commuteTimetableResult{
						StopName: row.StopName,
						Time:     row.DepartureTime.String(),
					})
				}
				items = append(items, commuteRouteResult{
					RouteName:          route.Name,
					DescriptionKorean:  route.Korean,
					DescriptionEnglish: route.English,
					Timetable:          schedule,
				})
			}
			return items, nil
		},
	}
}
