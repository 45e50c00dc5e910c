package models

import (
	"fmt"
	"time"
)

// ShuttleTag groups routes that are presented as one merged arrival feed.
// The set is closed: unknown tags are rejected at the boundary instead of
// silently dropped.
type ShuttleTag string

const (
	ShuttleTagDH ShuttleTag = "DH"
	ShuttleTagDY ShuttleTag = "DY"
	ShuttleTagC  ShuttleTag = "C"
	ShuttleTagDJ ShuttleTag = "DJ"
)

// ShuttleTags enumerates every tag in presentation order. Tag-mode output
// always carries all of them, even with zero matching departures.
var ShuttleTags = []ShuttleTag{ShuttleTagDH, ShuttleTagDY, ShuttleTagC, ShuttleTagDJ}

func ParseShuttleTag(s string) (ShuttleTag, error) {
	for _, tag := range ShuttleTags {
		if string(tag) == s {
			return tag, nil
		}
	}
	return "", fmt.Errorf("unknown shuttle tag %q", s)
}

// ShuttleStop is static reference data loaded externally.
type ShuttleStop struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ShuttleRoute struct {
	Name    string     `json:"name"`
	Tag     ShuttleTag `json:"tag"`
	Korean  string     `json:"korean"`
	English string     `json:"english"`
}

// ShuttleRouteStop ties a stop into a route's ordered stop sequence.
// CumulativeTime is minutes from the route's first stop; for a fixed route
// the stop order is strictly increasing and non-decreasing in cumulative
// time.
type ShuttleRouteStop struct {
	RouteName      string `json:"route_name"`
	StopName       string `json:"stop_name"`
	StopOrder      int    `json:"sequence"`
	CumulativeTime int    `json:"cumulative_time"`
}

// ShuttleTimetableRow is one scheduled departure under a single
// (period type, weekday flag, route, stop) combination.
type ShuttleTimetableRow struct {
	PeriodType    string    `json:"period_type"`
	Weekday       bool      `json:"weekday"`
	RouteName     string    `json:"route_name"`
	StopName      string    `json:"stop_name"`
	DepartureTime TimeOfDay `json:"departure_time"`
}

// Period is a macro-schedule regime (semester, vacation, vacation_session)
// with a concrete datetime range.
type Period struct {
	Type  string    `json:"period_type"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Calendar types for Holiday rows.
const (
	CalendarSolar = "solar"
	CalendarLunar = "lunar"
)

// Holiday is a calendar date with a special service status. Lunar rows are
// matched against the lunar equivalent of the query date.
type Holiday struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Calendar string    `json:"calendar"`
}
