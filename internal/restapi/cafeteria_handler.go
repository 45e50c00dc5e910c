package restapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

// Cafeteria time slots in feed order.
const (
	slotBreakfast = "조식"
	slotLunch     = "중식"
	slotDinner    = "석식"
)

// currentTimeSlot picks the menu slot being served around now.
func currentTimeSlot(now time.Time) string {
	switch {
	case now.Hour() < 10:
		return slotBreakfast
	case now.Hour() < 15:
		return slotLunch
	default:
		return slotDinner
	}
}

type menuItem struct {
	Date  string `json:"date"`
	Slot  string `json:"slot"`
	Food  string `json:"food"`
	Price string `json:"price"`
}

type restaurantLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type restaurantItem struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Location restaurantLocation `json:"location"`
	Menus    []menuItem         `json:"menu"`
}

type restaurantListResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Restaurants []restaurantItem `json:"restaurants"`
}

// restaurantListHandler lists a campus's restaurants with their menu,
// defaulting to today's feed filtered to the slot being served now.
func (api *RestAPI) restaurantListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()
	values := r.URL.Query()

	campusID, err := utils.IntParam("campus_id", utils.ExtractParam(r, "campus_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	campus, err := api.Repo.Campus(ctx, campusID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Campus not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	date, err := utils.DateParam(values, "date", now.Location())
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	if date == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		date = &today
	}
	slot := values.Get("slot")
	if slot == "" {
		slot = currentTimeSlot(now)
	}
	all, err := utils.BoolParam(values, "all", false)
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	restaurants, err := api.Repo.Restaurants(ctx, &campusID, nil)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]restaurantItem, 0, len(restaurants))
	for _, restaurant := range restaurants {
		menus, err := api.Repo.Menus(ctx, restaurant.ID, date, nil)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		menuItems := make([]menuItem, 0, len(menus))
		for _, menu := range menus {
			if !all && !strings.Contains(menu.Slot, slot) {
				continue
			}
			menuItems = append(menuItems, menuItemOf(menu))
		}
		items = append(items, restaurantItem{
			ID:   restaurant.ID,
			Name: restaurant.Name,
			Location: restaurantLocation{
				Latitude:  restaurant.Latitude,
				Longitude: restaurant.Longitude,
			},
			Menus: menuItems,
		})
	}

	api.sendResponse(w, r, restaurantListResponse{
		ID:          campus.ID,
		Name:        campus.Name,
		Restaurants: items,
	})
}

func menuItemOf(menu models.Menu) menuItem {
	return menuItem{
		Date:  menu.Date.Format("2006-01-02"),
		Slot:  menu.Slot,
		Food:  menu.Food,
		Price: menu.Price,
	}
}
