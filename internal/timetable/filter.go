package timetable

import (
	"slices"

	"campusapi.hyuabot.app/internal/models"
)

// Departures before 04:00 belong to the late night of the previous service
// day and are always retained when a start bound is active.
var rolloverWindowEnd = models.NewTimeOfDay(4, 0, 0)

// Matches applies the per-row selection rule: period membership, weekday
// flag membership, then the optional time window with the post-midnight
// rollover carve-out.
func (q Query) Matches(row models.ShuttleTimetableRow) bool {
	if !slices.Contains(q.Periods, row.PeriodType) {
		return false
	}
	if !slices.Contains(q.Weekdays, row.Weekday) {
		return false
	}
	return InWindow(row.DepartureTime, q.Start, q.End)
}

// InWindow checks a departure against an optional [start, end] bound.
// A departure is rejected when start > departure > 04:00:00; anything in
// [00:00, 04:00] passes a start bound untouched. The end bound has no
// rollover carve-out. Bus and subway timetables share this rule.
func InWindow(departure models.TimeOfDay, start, end *models.TimeOfDay) bool {
	if start != nil && start.After(departure) && departure.After(rolloverWindowEnd) {
		return false
	}
	if end != nil && departure.After(*end) {
		return false
	}
	return true
}

// Filter keeps the rows the query selects, preserving input order.
func Filter(rows []models.ShuttleTimetableRow, q Query) []models.ShuttleTimetableRow {
	selected := make([]models.ShuttleTimetableRow, 0, len(rows))
	for _, row := range rows {
		if q.Matches(row) {
			selected = append(selected, row)
		}
	}
	return selected
}
