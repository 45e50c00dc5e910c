package graphqlapi

import (
	"time"

	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/timetable"
)

type subwayTimetableResult struct {
	DestinationID   string `json:"destinationID"`
	DestinationName string `json:"destinationName"`
	Weekday         string `json:"weekday"`
	Time            string `json:"time"`
}

type subwayRealtimeResult struct {
	DestinationID    string    `json:"destinationID"`
	DestinationName  string    `json:"destinationName"`
	Sequence         int       `json:"sequence"`
	Location         string    `json:"location"`
	RemainingStation int       `json:"remainingStation"`
	RemainingTime    float64   `json:"remainingTime"`
	TrainNo          string    `json:"trainNo"`
	IsExpress        bool      `json:"isExpress"`
	IsLast           bool      `json:"isLast"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type subwayTimetableGroup struct {
	Up   []subwayTimetableResult `json:"up"`
	Down []subwayTimetableResult `json:"down"`
}

type subwayRealtimeGroup struct {
	Up   []subwayRealtimeResult `json:"up"`
	Down []subwayRealtimeResult `json:"down"`
}

type subwayStationResult struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	LineID    int                  `json:"lineID"`
	LineName  string               `json:"lineName"`
	Sequence  int                  `json:"sequence"`
	Timetable subwayTimetableGroup `json:"timetable"`
	Realtime  subwayRealtimeGroup  `json:"realtime"`
}

func subwayField(application *app.Application) *graphql.Field {
	timetableType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SubwayTimetableQuery",
		Fields: graphql.Fields{
			"destinationID":   &graphql.Field{Type: graphql.String},
			"destinationName": &graphql.Field{Type: graphql.String},
			"weekday":         &graphql.Field{Type: graphql.String},
			"time":            &graphql.Field{Type: graphql.String},
		},
	})
	realtimeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SubwayRealtimeQuery",
		Fields: graphql.Fields{
			"destinationID":    &graphql.Field{Type: graphql.String},
			"destinationName":  &graphql.Field{Type: graphql.String},
			"sequence":         &graphql.Field{Type: graphql.Int},
			"location":         &graphql.Field{Type: graphql.String},
			"remainingStation": &graphql.Field{Type: graphql.Int},
			"remainingTime":    &graphql.Field{Type: graphql.Float},
			"trainNo":          &graphql.Field{Type: graphql.String},
			"isExpress":        &graphql.Field{Type: graphql.Boolean},
			"isLast":           &graphql.Field{Type: graphql.Boolean},
			"updatedAt":        &graphql.Field{Type: graphql.DateTime},
		},
	})
	timetableGroupType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SubwayTimetableGroupQuery",
		Fields: graphql.Fields{
			"up":   &graphql.Field{Type: graphql.NewList(timetableType)},
			"down": &graphql.Field{Type: graphql.NewList(timetableType)},
		},
	})
	realtimeGroupType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SubwayRealtimeGroupQuery",
		Fields: graphql.Fields{
			"up":   &graphql.Field{Type: graphql.NewList(realtimeType)},
			"down": &graphql.Field{Type: graphql.NewList(realtimeType)},
		},
	})
	stationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SubwayStationQuery",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.String},
			"name":      &graphql.Field{Type: graphql.String},
			"lineID":    &graphql.Field{Type: graphql.Int},
			"lineName":  &graphql.Field{Type: graphql.String},
			"sequence":  &graphql.Field{Type: graphql.Int},
			"timetable": &graphql.Field{Type: timetableGroupType},
			"realtime":  &graphql.Field{Type: realtimeGroupType},
		},
	})

	return &graphql.Field{
		Type: graphql.NewList(stationType),
		Args: graphql.FieldConfigArgument{
			"station": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"heading": &graphql.ArgumentConfig{Type: graphql.String},
			"weekday": &graphql.ArgumentConfig{Type: graphql.String},
			"start":   &graphql.ArgumentConfig{Type: graphql.String},
			"end":     &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ctx := p.Context
			now := application.Now()

			heading, _ := stringArg(p, "heading")
			weekday, ok := stringArg(p, "weekday")
			if !ok || weekday == "" {
				weekday = application.Oracle.WeekdayName(now)
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

			stations, err := application.Repo.SubwayStations(ctx, "")
			if err != nil {
				return nil, err
			}
			nameFilter := stringListArg(p, "station")

			items := make([]subwayStationResult, 0, len(stations))
			for _, station := range stations {
				if len(nameFilter) > 0 && !containsString(nameFilter, station.Name) {
					continue
				}

				timetableRows, err := application.Repo.SubwayTimetable(ctx, station.ID)
				if err != nil {
					return nil, err
				}
				var schedule subwayTimetableGroup
				schedule.Up = []subwayTimetableResult{}
				schedule.Down = []subwayTimetableResult{}
				for _, row := range timetableRows {
					if row.Weekday != weekday {
						continue
					}
					if heading != "" && row.Heading != heading {
						continue
					}
					if !timetable.InWindow(row.DepartureTime, start, end) {
						continue
					}
					item := subwayTimetableResult{
						DestinationID:   row.TerminalID,
						DestinationName: row.TerminalName,
						Weekday:         row.Weekday,
						Time:            row.DepartureTime.String(),
					}
					if row.Heading == models.HeadingUp {
						schedule.Up = append(schedule.Up, item)
					} else {
						schedule.Down = append(schedule.Down, item)
					}
				}

				realtimeRows, err := application.Repo.SubwayRealtime(ctx, station.ID)
				if err != nil {
					return nil, err
				}
				var live subwayRealtimeGroup
				live.Up = []subwayRealtimeResult{}
				live.Down = []subwayRealtimeResult{}
				for _, row := range realtimeRows {
					if heading != "" && row.Heading != heading {
						continue
					}
					item := subwayRealtimeResult{
						DestinationID:    row.TerminalID,
						DestinationName:  row.TerminalName,
						Sequence:         row.Sequence,
						Location:         row.Location,
						RemainingStation: row.RemainingStation,
						RemainingTime:    (time.Duration(row.RemainingTime) * time.Minute).Seconds(),
						TrainNo:          row.TrainNumber,
						IsExpress:        row.Express,
						IsLast:           row.Last,
						UpdatedAt:        row.UpdatedAt,
					}
					if row.Heading == models.HeadingUp {
						live.Up = append(live.Up, item)
					} else {
						live.Down = append(live.Down, item)
					}
				}

				items = append(items, subwayStationResult{
					ID:        station.ID,
					Name:      station.Name,
					LineID:    station.LineID,
					LineName:  station.LineName,
					Sequence:  station.Sequence,
					Timetable: schedule,
					Realtime:  live,
				})
			}
			return items, nil
		},
	}
}
