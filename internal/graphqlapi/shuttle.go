package graphqlapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/timetable"
)

type shuttleOtherStopItem struct {
	StopName  string `json:"stopName"`
	Timedelta int    `json:"timedelta"`
	Time      string `json:"time"`
}

type shuttleTimetableItem struct {
	Weekdays      bool                   `json:"weekdays"`
	Time          string                 `json:"time"`
	RemainingTime float64                `json:"remainingTime"`
	OtherStops    []shuttleOtherStopItem `json:"otherStops"`
}

type shuttleRouteItem struct {
	RouteID            string                 `json:"routeID"`
	DescriptionKorean  string                 `json:"descriptionKorean"`
	DescriptionEnglish string                 `json:"descriptionEnglish"`
	Timetable          []shuttleTimetableItem `json:"timetable"`
}

type shuttleTagItem struct {
	TagID     string                 `json:"tagID"`
	Timetable []shuttleTimetableItem `json:"timetable"`
}

type shuttleLocationItem struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type shuttleStopItem struct {
	StopName string              `json:"stopName"`
	Location shuttleLocationItem `json:"location"`
	Routes   []shuttleRouteItem  `json:"route"`
	Tags     []shuttleTagItem    `json:"tag"`
}

type shuttleParamsItem struct {
	Period  []string `json:"period"`
	Weekday []bool   `json:"weekday"`
}

type shuttleResult struct {
	Stops  []shuttleStopItem `json:"stop"`
	Params shuttleParamsItem `json:"params"`
}

func shuttleField(application *app.Application) *graphql.Field {
	otherStopType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleOtherStopQuery",
		Fields: graphql.Fields{
			"stopName":  &graphql.Field{Type: graphql.String},
			"timedelta": &graphql.Field{Type: graphql.Int},
			"time":      &graphql.Field{Type: graphql.String},
		},
	})
	timetableType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleTimetableQuery",
		Fields: graphql.Fields{
			"weekdays":      &graphql.Field{Type: graphql.Boolean},
			"time":          &graphql.Field{Type: graphql.String},
			"remainingTime": &graphql.Field{Type: graphql.Float},
			"otherStops":    &graphql.Field{Type: graphql.NewList(otherStopType)},
		},
	})
	routeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleRouteQuery",
		Fields: graphql.Fields{
			"routeID":            &graphql.Field{Type: graphql.String},
			"descriptionKorean":  &graphql.Field{Type: graphql.String},
			"descriptionEnglish": &graphql.Field{Type: graphql.String},
			"timetable":          &graphql.Field{Type: graphql.NewList(timetableType)},
		},
	})
	tagType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleTagQuery",
		Fields: graphql.Fields{
			"tagID":     &graphql.Field{Type: graphql.String},
			"timetable": &graphql.Field{Type: graphql.NewList(timetableType)},
		},
	})
	locationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleLocationQuery",
		Fields: graphql.Fields{
			"latitude":  &graphql.Field{Type: graphql.Float},
			"longitude": &graphql.Field{Type: graphql.Float},
		},
	})
	stopType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleStopQuery",
		Fields: graphql.Fields{
			"stopName": &graphql.Field{Type: graphql.String},
			"location": &graphql.Field{Type: locationType},
			"route":    &graphql.Field{Type: graphql.NewList(routeType)},
			"tag":      &graphql.Field{Type: graphql.NewList(tagType)},
		},
	})
	paramsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleParamsQuery",
		Fields: graphql.Fields{
			"period":  &graphql.Field{Type: graphql.NewList(graphql.String)},
			"weekday": &graphql.Field{Type: graphql.NewList(graphql.Boolean)},
		},
	})
	shuttleType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ShuttleQuery",
		Fields: graphql.Fields{
			"stop":   &graphql.Field{Type: graphql.NewList(stopType)},
			"params": &graphql.Field{Type: paramsType},
		},
	})

	return &graphql.Field{
		Type: shuttleType,
		Args: graphql.FieldConfigArgument{
			"stop":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"route":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"tag":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"period":  &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"weekday": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.Boolean)},
			"date":    &graphql.ArgumentConfig{Type: graphql.String},
			"start":   &graphql.ArgumentConfig{Type: graphql.String},
			"end":     &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ctx := p.Context
			now := application.Now()

			routeFilter := stringListArg(p, "route")
			tagFilter := stringListArg(p, "tag")
			if len(routeFilter) > 0 && len(tagFilter) > 0 {
				return nil, errors.New("route and tag filters cannot be combined")
			}
			for _, tag := range tagFilter {
				if _, err := models.ParseShuttleTag(tag); err != nil {
					return nil, err
				}
			}

			if raw, ok := stringArg(p, "date"); ok {
				date, err := time.ParseInLocation("2006-01-02", raw, now.Location())
				if err != nil {
					return nil, fmt.Errorf("invalid date %q", raw)
				}
				now = time.Date(date.Year(), date.Month(), date.Day(),
					now.Hour(), now.Minute(), now.Second(), 0, now.Location())
			}

			overrides := timetable.Overrides{
				Periods:  stringListArg(p, "period"),
				Weekdays: boolListArg(p, "weekday"),
			}
			if raw, ok := stringArg(p, "start"); ok {
				start, err := models.ParseTimeOfDay(raw)
				if err != nil {
					return nil, err
				}
				overrides.Start = &start
			}
			if raw, ok := stringArg(p, "end"); ok {
				end, err := models.ParseTimeOfDay(raw)
				if err != nil {
					return nil, err
				}
				overrides.End = &end
			}
			// Arrivals only look forward unless the caller bounds the
			// window explicitly.
			if overrides.Start == nil {
				nowTime := models.TimeOfDayOf(now)
				overrides.Start = &nowTime
			}

			q, err := timetable.Resolve(ctx, application.Oracle, now, overrides)
			if err != nil {
				return nil, err
			}

			var stops []models.ShuttleStop
			if names := stringListArg(p, "stop"); len(names) > 0 {
				for _, name := range names {
					stop, err := application.Repo.ShuttleStop(ctx, name)
					if errors.Is(err, repository.ErrNotFound) {
						continue
					}
					if err != nil {
						return nil, err
					}
					stops = append(stops, *stop)
				}
			} else {
				stops, err = application.Repo.ShuttleStops(ctx, "")
				if err != nil {
					return nil, err
				}
			}

			items := make([]shuttleStopItem, 0, len(stops))
			for _, stop := range stops {
				views, err := collectRouteViews(ctx, application, stop.Name, q, routeFilter, tagFilter)
				if err != nil {
					return nil, err
				}
				items = append(items, shuttleStopItem{
					StopName: stop.Name,
					Location: shuttleLocationItem{
						Latitude:  stop.Latitude,
						Longitude: stop.Longitude,
					},
					Routes: shuttleRouteItemsOf(views),
					Tags:   shuttleTagItemsOf(timetable.GroupByTag(views)),
				})
			}

			return shuttleResult{
				Stops: items,
				Params: shuttleParamsItem{
					Period:  q.Periods,
					Weekday: q.Weekdays,
				},
			}, nil
		},
	}
}

// collectRouteViews assembles the per-route departures at one stop, limited
// to the requested routes or tags.
func collectRouteViews(ctx context.Context, application *app.Application, stopName string, q timetable.Query, routeFilter, tagFilter []string) ([]timetable.RouteArrivals, error) {
	memberships, err := application.Repo.ShuttleStopRoutes(ctx, stopName)
	if err != nil {
		return nil, err
	}
	views := make([]timetable.RouteArrivals, 0, len(memberships))
	for _, membership := range memberships {
		route, err := application.Repo.ShuttleRoute(ctx, membership.RouteName)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(routeFilter) > 0 && !containsString(routeFilter, route.Name) {
			continue
		}
		if len(tagFilter) > 0 && !containsString(tagFilter, string(route.Tag)) {
			continue
		}
		routeStops, err := application.Repo.ShuttleRouteStops(ctx, route.Name)
		if err != nil {
			return nil, err
		}
		rows, err := application.Repo.ShuttleTimetable(ctx, route.Name, stopName)
		if err != nil {
			return nil, err
		}
		views = append(views, timetable.RouteArrivals{
			Route:      *route,
			Departures: timetable.BuildDepartures(rows, q, membership, routeStops),
		})
	}
	return views, nil
}

func shuttleTimetableItemsOf(departures []timetable.Departure) []shuttleTimetableItem {
	items := make([]shuttleTimetableItem, 0, len(departures))
	for _, d := range departures {
		others := make([]shuttleOtherStopItem, 0, len(d.OtherStops))
		for _, o := range d.OtherStops {
			others = append(others, shuttleOtherStopItem{
				StopName:  o.StopName,
				Timedelta: o.TimeDelta,
				Time:      o.Time.String(),
			})
		}
		items = append(items, shuttleTimetableItem{
			Weekdays:      d.Weekday,
			Time:          d.Time.String(),
			RemainingTime: d.Remaining.Seconds(),
			OtherStops:    others,
		})
	}
	return items
}

func shuttleRouteItemsOf(views []timetable.RouteArrivals) []shuttleRouteItem {
	items := make([]shuttleRouteItem, 0, len(views))
	for _, view := range views {
		items = append(items, shuttleRouteItem{
			RouteID:            view.Route.Name,
			DescriptionKorean:  view.Route.Korean,
			DescriptionEnglish: view.Route.English,
			Timetable:          shuttleTimetableItemsOf(view.Departures),
		})
	}
	return items
}

func shuttleTagItemsOf(views []timetable.TagArrivals) []shuttleTagItem {
	items := make([]shuttleTagItem, 0, len(views))
	for _, view := range views {
		items = append(items, shuttleTagItem{
			TagID:     string(view.Tag),
			Timetable: shuttleTimetableItemsOf(view.Departures),
		})
	}
	return items
}
