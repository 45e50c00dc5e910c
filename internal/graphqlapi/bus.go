package graphqlapi

import (
	"context"
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/timetable"
)

type busRealtimeResult struct {
	Sequence      int       `json:"sequence"`
	RemainingStop int       `json:"remainingStop"`
	RemainingTime float64   `json:"remainingTime"`
	RemainingSeat int       `json:"remainingSeat"`
	LowFloor      bool      `json:"lowFloor"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type busTimetableResult struct {
	Weekday string `json:"weekday"`
	Time    string `json:"time"`
}

type busStopRouteResult struct {
	StopID        int                   `json:"stopID"`
	StopName      string                `json:"stopName"`
	RouteID       int                   `json:"routeID"`
	RouteName     string                `json:"routeName"`
	Sequence      int                   `json:"sequence"`
	StartStopID   int                   `json:"startStopID"`
	StartStopName string                `json:"startStopName"`
	Realtime      []busRealtimeResult  `json:"realtime"`
	Timetable     []busTimetableResult `json:"timetable"`
}

func busField(application *app.Application) *graphql.Field {
	realtimeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BusRealtimeQuery",
		Fields: graphql.Fields{
			"sequence":      &graphql.Field{Type: graphql.Int},
			"remainingStop": &graphql.Field{Type: graphql.Int},
			"remainingTime": &graphql.Field{Type: graphql.Float},
			"remainingSeat": &graphql.Field{Type: graphql.Int},
			"lowFloor":      &graphql.Field{Type: graphql.Boolean},
			"updatedAt":     &graphql.Field{Type: graphql.DateTime},
		},
	})
	timetableType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BusTimetableQuery",
		Fields: graphql.Fields{
			"weekday": &graphql.Field{Type: graphql.String},
			"time":    &graphql.Field{Type: graphql.String},
		},
	})
	stopRouteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BusStopRouteQuery",
		Fields: graphql.Fields{
			"stopID":        &graphql.Field{Type: graphql.Int},
			"stopName":      &graphql.Field{Type: graphql.String},
			"routeID":       &graphql.Field{Type: graphql.Int},
			"routeName":     &graphql.Field{Type: graphql.String},
			"sequence":      &graphql.Field{Type: graphql.Int},
			"startStopID":   &graphql.Field{Type: graphql.Int},
			"startStopName": &graphql.Field{Type: graphql.String},
			"realtime":      &graphql.Field{Type: graphql.NewList(realtimeType)},
			"timetable":     &graphql.Field{Type: graphql.NewList(timetableType)},
		},
	})
	routeStopInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BusRouteStopInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"stop":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"route": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	return &graphql.Field{
		Type: graphql.NewList(stopRouteType),
		Args: graphql.FieldConfigArgument{
			"routeStop": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(routeStopInput))},
			"weekdays":  &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"start":     &graphql.ArgumentConfig{Type: graphql.String},
			"end":       &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ctx := p.Context
			now := application.Now()

			weekdays := stringListArg(p, "weekdays")
			if len(weekdays) == 0 {
				weekdays = []string{application.Oracle.WeekdayName(now)}
			}

			var start, end *models.TimeOfDay
			if raw, ok := stringArg(p, "start"); ok {
				t, err := models.ParseTimeOfDay(raw)
				if err != nil {
					return nil, err
				}
				start = &t
			}
			if raw, ok := stringArg(p, "end"); ok {
				t, err := models.ParseTimeOfDay(raw)
				if err != nil {
					return nil, err
				}
				end = &t
			}
			if start == nil {
				nowTime := models.TimeOfDayOf(now)
				start = &nowTime
			}

			pairs, _ := p.Args["routeStop"].([]interface{})
			items := make([]busStopRouteResult, 0, len(pairs))
			for _, raw := range pairs {
				pair, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				stopID, _ := pair["stop"].(int)
				routeID, _ := pair["route"].(int)

				routeStop, err := application.Repo.BusRouteStop(ctx, stopID, routeID)
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				if err != nil {
					return nil, err
				}

				item, err := busStopRouteResultOf(ctx, application, *routeStop, weekdays, start, end)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			return items, nil
		},
	}
}

func busStopRouteResultOf(ctx context.Context, application *app.Application, routeStop models.BusRouteStop, weekdays []string, start, end *models.TimeOfDay) (busStopRouteResult, error) {
	stop, err := application.Repo.BusStop(ctx, routeStop.StopID)
	if err != nil {
		return busStopRouteResult{}, err
	}
	route, err := application.Repo.BusRoute(ctx, routeStop.RouteID)
	if err != nil {
		return busStopRouteResult{}, err
	}

	startStopName := ""
	if startStop, err := application.Repo.BusStop(ctx, routeStop.StartStopID); err == nil {
		startStopName = startStop.Name
	} else if !errors.Is(err, repository.ErrNotFound) {
		return busStopRouteResult{}, err
	}

	realtimeRows, err := application.Repo.BusRealtime(ctx, routeStop.StopID, routeStop.RouteID)
	if err != nil {
		return busStopRouteResult{}, err
	}
	realtime := make([]busRealtimeResult, 0, len(realtimeRows))
	for i, row := range realtimeRows {
		realtime = append(realtime, busRealtimeResult{
			Sequence:      i + 1,
			RemainingStop: row.RemainingStop,
			RemainingTime: (time.Duration(row.RemainingTime) * time.Minute).Seconds(),
			RemainingSeat: row.RemainingSeat,
			LowFloor:      row.LowFloor,
			UpdatedAt:     row.UpdatedAt,
		})
	}

	timetableRows, err := application.Repo.BusTimetable(ctx, routeStop.RouteID, routeStop.StartStopID)
	if err != nil {
		return busStopRouteResult{}, err
	}
	schedule := make([]busTimetableResult, 0, len(timetableRows))
	for _, row := range timetableRows {
		if !containsString(weekdays, row.Weekday) {
			continue
		}
		if !timetable.InWindow(row.DepartureTime, start, end) {
			continue
		}
		schedule = append(schedule, busTimetableResult{
			Weekday: row.Weekday,
			Time:    row.DepartureTime.String(),
		})
	}

	return busStopRouteResult{
		StopID:        stop.ID,
		StopName:      stop.Name,
		RouteID:       route.ID,
		RouteName:     route.Name,
		Sequence:      routeStop.Order,
		StartStopID:   routeStop.StartStopID,
		StartStopName: startStopName,
		Realtime:      realtime,
		Timetable:     schedule,
	}, nil
}
