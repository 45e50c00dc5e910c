package models

import "time"

// Subway timetable headings.
const (
	HeadingUp   = "up"
	HeadingDown = "down"
)

// SubwayStation is one station on one line (a station served by two lines
// appears twice with distinct IDs).
type SubwayStation struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LineID         int    `json:"line_id"`
	LineName       string `json:"line_name"`
	Sequence       int    `json:"sequence"`
	CumulativeTime int    `json:"cumulative_time"`
}

type SubwayTimetableRow struct {
	StationID     string    `json:"station_id"`
	StartID       string    `json:"start_station_id"`
	StartName     string    `json:"start_station_name"`
	TerminalID    string    `json:"terminal_station_id"`
	TerminalName  string    `json:"terminal_station_name"`
	Weekday       string    `json:"weekday"`
	Heading       string    `json:"heading"`
	DepartureTime TimeOfDay `json:"departure_time"`
}

type SubwayRealtimeRow struct {
	StationID        string    `json:"station_id"`
	TerminalID       string    `json:"terminal_station_id"`
	TerminalName     string    `json:"terminal_station_name"`
	Heading          string    `json:"heading"`
	Sequence         int       `json:"sequence"`
	Location         string    `json:"location"`
	RemainingStation int       `json:"remaining_station"`
	RemainingTime    int       `json:"remaining_time"`
	TrainNumber      string    `json:"train_no"`
	Express          bool      `json:"is_express"`
	Last             bool      `json:"is_last"`
	Status           int       `json:"status"`
	UpdatedAt        time.Time `json:"updated_at"`
}
