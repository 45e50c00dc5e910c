package graphqlapi

import (
	"time"

	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
)

type readingRoomStatusResult struct {
	Active     bool `json:"active"`
	Reservable bool `json:"reservable"`
}

type readingRoomSeatsResult struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type readingRoomResult struct {
	CampusID  int                     `json:"campusId"`
	ID        int                     `json:"id"`
	Name      string                  `json:"name"`
	Status    readingRoomStatusResult `json:"status"`
	Seats     readingRoomSeatsResult  `json:"seats"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

func readingRoomField(application *app.Application) *graphql.Field {
	statusType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReadingRoomStatusQuery",
		Fields: graphql.Fields{
			"active":     &graphql.Field{Type: graphql.Boolean},
			"reservable": &graphql.Field{Type: graphql.Boolean},
		},
	})
	seatsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReadingRoomSeatsQuery",
		Fields: graphql.Fields{
			"total":     &graphql.Field{Type: graphql.Int},
			"active":    &graphql.Field{Type: graphql.Int},
			"occupied":  &graphql.Field{Type: graphql.Int},
			"available": &graphql.Field{Type: graphql.Int},
		},
	})
	roomType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReadingRoomQuery",
		Fields: graphql.Fields{
			"campusId":  &graphql.Field{Type: graphql.Int},
			"id":        &graphql.Field{Type: graphql.Int},
			"name":      &graphql.Field{Type: graphql.String},
			"status":    &graphql.Field{Type: statusType},
			"seats":     &graphql.Field{Type: seatsType},
			"updatedAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	return &graphql.Field{
		Type: graphql.NewList(roomType),
		Args: graphql.FieldConfigArgument{
			"campusId": &graphql.ArgumentConfig{Type: graphql.Int},
			"room":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.Int)},
			"active":   &graphql.ArgumentConfig{Type: graphql.Boolean},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			var campusID *int
			if id, ok := intArg(p, "campusId"); ok {
				campusID = &id
			}
			var active *bool
			if flag, ok := p.Args["active"].(bool); ok {
				active = &flag
			}

			rooms, err := application.Repo.ReadingRooms(p.Context, campusID, intListArg(p, "room"), active)
			if err != nil {
				return nil, err
			}

			items := make([]readingRoomResult, 0, len(rooms))
			for _, room := range rooms {
				items = append(items, readingRoomResult{
					CampusID: room.CampusID,
					ID:       room.ID,
					Name:     room.Name,
					Status: readingRoomStatusResult{
						Active:     room.Active,
						Reservable: room.Reservable,
					},
					Seats: readingRoomSeatsResult{
						Total:     room.TotalSeats,
						Active:    room.ActiveSeats,
						Occupied:  room.OccupiedSeats,
						Available: room.AvailableSeats,
					},
					UpdatedAt: room.UpdatedAt,
				})
			}
			return items, nil
		},
	}
}
