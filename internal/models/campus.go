package models

import "time"

type Campus struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ReadingRoom struct {
	ID             int       `json:"id"`
	CampusID       int       `json:"campus_id"`
	Name           string    `json:"name"`
	Active         bool      `json:"active"`
	Reservable     bool      `json:"reservable"`
	TotalSeats     int       `json:"total"`
	ActiveSeats    int       `json:"active_seats"`
	OccupiedSeats  int       `json:"occupied"`
	AvailableSeats int       `json:"available"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Restaurant struct {
	ID        int     `json:"id"`
	CampusID  int     `json:"campus_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Menu is a cafeteria feed entry for one date and time slot.
type Menu struct {
	RestaurantID int       `json:"restaurant_id"`
	Date         time.Time `json:"date"`
	Slot         string    `json:"slot"`
	Food         string    `json:"food"`
	Price        string    `json:"price"`
}

type CommuteShuttleRoute struct {
	Name    string `json:"name"`
	Korean  string `json:"korean"`
	English string `json:"english"`
}

type CommuteShuttleTimetableRow struct {
	RouteName     string    `json:"route_name"`
	StopName      string    `json:"stop_name"`
	Sequence      int       `json:"sequence"`
	DepartureTime TimeOfDay `json:"departure_time"`
}
