package graphqlapi

import (
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"campusapi.hyuabot.app/internal/app"
)

type cafeteriaMenuResult struct {
	Date  string `json:"date"`
	Slot  string `json:"slot"`
	Food  string `json:"food"`
	Price string `json:"price"`
}

type cafeteriaResult struct {
	Campus int                   `json:"campus"`
	ID     int                   `json:"id"`
	Name   string                `json:"name"`
	Menu   []cafeteriaMenuResult `json:"menu"`
}

func cafeteriaField(application *app.Application) *graphql.Field {
	menuType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CafeteriaMenuQuery",
		Fields: graphql.Fields{
			"date":  &graphql.Field{Type: graphql.String},
			"slot":  &graphql.Field{Type: graphql.String},
			"food":  &graphql.Field{Type: graphql.String},
			"price": &graphql.Field{Type: graphql.String},
		},
	})
	cafeteriaType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CafeteriaQuery",
		Fields: graphql.Fields{
			"campus": &graphql.Field{Type: graphql.Int},
			"id":     &graphql.Field{Type: graphql.Int},
			"name":   &graphql.Field{Type: graphql.String},
			"menu":   &graphql.Field{Type: graphql.NewList(menuType)},
		},
	})

	return &graphql.Field{
		Type: graphql.NewList(cafeteriaType),
		Args: graphql.FieldConfigArgument{
			"campus":     &graphql.ArgumentConfig{Type: graphql.Int},
			"restaurant": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.Int)},
			"date":       &graphql.ArgumentConfig{Type: graphql.String},
			"slot":       &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ctx := p.Context
			now := application.Now()

			var campusID *int
			if id, ok := intArg(p, "campus"); ok {
				campusID = &id
			}

			date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if raw, ok := stringArg(p, "date"); ok {
				parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
				if err != nil {
					return nil, fmt.Errorf("invalid date %q", raw)
				}
				date = parsed
			}
			var slot *string
			if raw, ok := stringArg(p, "slot"); ok {
				slot = &raw
			}

			restaurants, err := application.Repo.Restaurants(ctx, campusID, intListArg(p, "restaurant"))
			if err != nil {
				return nil, err
			}

			items := make([]cafeteriaResult, 0, len(restaurants))
			for _, restaurant := range restaurants {
				menus, err := application.Repo.Menus(ctx, restaurant.ID, &date, slot)
				if err != nil {
					return nil, err
				}
				menuItems := make([]cafeteriaMenuResult, 0, len(menus))
				for _, menu := range menus {
					menuItems = append(menuItems, cafeteriaMenuResult{
						Date:  menu.Date.Format("2006-01-02"),
						Slot:  menu.Slot,
						Food:  menu.Food,
						Price: menu.Price,
					})
				}
				items = append(items, cafeteriaResult{
					Campus: restaurant.CampusID,
					ID:     restaurant.ID,
					Name:   restaurant.Name,
					Menu:   menuItems,
				})
			}
			return items, nil
		},
	}
}
