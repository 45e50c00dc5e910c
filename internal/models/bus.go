package models

import "time"

// Weekday-name scheme used by bus and subway timetables, distinct from the
// shuttle's boolean weekday flag.
const (
	WeekdayNameWeekdays = "weekdays"
	WeekdayNameSaturday = "saturday"
	WeekdayNameSunday   = "sunday"
)

type BusStop struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	District     int     `json:"district"`
	Region       string  `json:"region"`
	MobileNumber string  `json:"mobile"`
}

type BusRoute struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	TypeCode         string    `json:"type_code"`
	TypeName         string    `json:"type_name"`
	CompanyID        int       `json:"company_id"`
	CompanyName      string    `json:"company_name"`
	CompanyTelephone string    `json:"company_telephone"`
	District         int       `json:"district"`
	UpFirstTime      TimeOfDay `json:"up_first_time"`
	UpLastTime       TimeOfDay `json:"up_last_time"`
	DownFirstTime    TimeOfDay `json:"down_first_time"`
	DownLastTime     TimeOfDay `json:"down_last_time"`
	StartStopID      int       `json:"start_stop_id"`
	EndStopID        int       `json:"end_stop_id"`
}

type BusRouteStop struct {
	RouteID     int `json:"route_id"`
	StopID      int `json:"stop_id"`
	Order       int `json:"sequence"`
	StartStopID int `json:"start_stop_id"`
}

type BusTimetableRow struct {
	RouteID       int       `json:"route_id"`
	StartStopID   int       `json:"start_stop_id"`
	Weekday       string    `json:"weekday"`
	DepartureTime TimeOfDay `json:"departure_time"`
}

// BusRealtimeRow is a live arrival as last refreshed by the external data
// loader.
type BusRealtimeRow struct {
	RouteID       int       `json:"route_id"`
	StopID        int       `json:"stop_id"`
	Sequence      int       `json:"sequence"`
	RemainingStop int       `json:"stop"`
	RemainingSeat int       `json:"seat"`
	RemainingTime int       `json:"minutes"`
	LowFloor      bool      `json:"low_plate"`
	UpdatedAt     time.Time `json:"updated_at"`
}
