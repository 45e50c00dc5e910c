// Package timetable holds the shuttle scheduling core: resolving the
// effective query from overrides and the service calendar, selecting the
// timetable rows that apply, projecting arrival times across a route's
// stops and assembling the route/tag output views.
package timetable

import (
	"context"
	"fmt"
	"time"

	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/models"
)

// Output modes for arrival and timetable views.
const (
	OutputRoute = "route"
	OutputTag   = "tag"
)

func ParseOutput(s string) (string, error) {
	switch s {
	case "", OutputRoute:
		return OutputRoute, nil
	case OutputTag:
		return OutputTag, nil
	default:
		return "", fmt.Errorf("invalid output %q: must be %q or %q", s, OutputRoute, OutputTag)
	}
}

// Overrides are the caller-supplied filters. Zero values mean "resolve the
// default from the calendar".
type Overrides struct {
	Periods  []string
	Weekdays []bool
	Holiday  string
	Start    *models.TimeOfDay
	End      *models.TimeOfDay
}

// Query is the effective filter for one request. Now is captured once at
// the start of handling and reused for every comparison so a response is
// internally consistent.
type Query struct {
	Now      time.Time
	Periods  []string
	Weekdays []bool
	Holiday  string
	Start    *models.TimeOfDay
	End      *models.TimeOfDay
}

// Resolve applies the two-stage "override, else computed default" rule
// against the calendar oracle.
func Resolve(ctx context.Context, oracle *calendarutil.Oracle, now time.Time, ov Overrides) (Query, error) {
	q := Query{
		Now:      now,
		Periods:  ov.Periods,
		Weekdays: ov.Weekdays,
		Holiday:  ov.Holiday,
		Start:    ov.Start,
		End:      ov.End,
	}
	if len(q.Periods) == 0 {
		period, err := oracle.CurrentPeriod(ctx, now)
		if err != nil {
			return Query{}, fmt.Errorf("resolve period: %w", err)
		}
		q.Periods = []string{period}
	}
	if len(q.Weekdays) == 0 {
		q.Weekdays = []bool{!oracle.IsNonServiceDay(now)}
	}
	if q.Holiday == "" {
		status, err := oracle.HolidayStatus(ctx, now)
		if err != nil {
			return Query{}, fmt.Errorf("resolve holiday status: %w", err)
		}
		q.Holiday = status
	}
	return q, nil
}

// Halted reports whether shuttle service is fully suspended for the query
// date. Arrival views stay empty for every route and tag on a halt day.
func (q Query) Halted() bool {
	return q.Holiday == calendarutil.HolidayHalt
}
