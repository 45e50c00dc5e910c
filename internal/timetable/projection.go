package timetable

import (
	"time"

	"campusapi.hyuabot.app/internal/models"
)

// OtherStop is the projected arrival of one departure at another stop on
// the same route.
type OtherStop struct {
	StopName  string
	TimeDelta int // minutes relative to the reference stop, may be negative
	Time      models.TimeOfDay
}

// ProjectOtherStops derives arrival times at every stop of a route from a
// departure at the reference stop, using the per-stop cumulative offsets.
// The addition happens in full datetime space against date, so spans past
// midnight reduce back to a valid clock time.
func ProjectOtherStops(departure models.TimeOfDay, date time.Time, ref models.ShuttleRouteStop, routeStops []models.ShuttleRouteStop) []OtherStop {
	base := departure.On(date)
	others := make([]OtherStop, 0, len(routeStops))
	for _, rs := range routeStops {
		delta := rs.CumulativeTime - ref.CumulativeTime
		others = append(others, OtherStop{
			StopName:  rs.StopName,
			TimeDelta: delta,
			Time:      models.TimeOfDayOf(base.Add(time.Duration(delta) * time.Minute)),
		})
	}
	return others
}

// Remaining is the duration from now until a departure on the same date.
// Departures in the rollover window that already passed today count toward
// tomorrow's early morning.
func Remaining(departure models.TimeOfDay, now time.Time) time.Duration {
	d := departure.On(now).Sub(now)
	if d < 0 && !departure.After(rolloverWindowEnd) {
		d += 24 * time.Hour
	}
	return d
}
