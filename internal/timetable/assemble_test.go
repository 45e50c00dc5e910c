package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/models"
)

func TestBuildDepartures(t *testing.T) {
	now := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	routeStops := []models.ShuttleRouteStop{
		{RouteName: "DHDD", StopName: "dormitory_o", StopOrder: 1, CumulativeTime: 0},
		{RouteName: "DHDD", StopName: "shuttlecock_o", StopOrder: 2, CumulativeTime: 10},
	}
	ref := routeStops[1]
	rows := []models.ShuttleTimetableRow{
		{PeriodType: calendarutil.PeriodSemester, Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: timeOfDay(8, 30)},
		{PeriodType: calendarutil.PeriodSemester, Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: timeOfDay(8, 10)},
		{PeriodType: calendarutil.PeriodVacation, Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: timeOfDay(8, 20)},
	}
	q := Query{
		Now:      now,
		Periods:  []string{calendarutil.PeriodSemester},
		Weekdays: []bool{true},
		Holiday:  calendarutil.HolidayNormal,
	}

	departures := BuildDepartures(rows, q, ref, routeStops)

	require.Len(t, departures, 2)
	assert.Equal(t, timeOfDay(8, 10), departures[0].Time)
	assert.Equal(t, timeOfDay(8, 30), departures[1].Time)
	assert.Equal(t, 10*time.Minute, departures[0].Remaining)
	require.Len(t, departures[0].OtherStops, 2)
	assert.Equal(t, -10, departures[0].OtherStops[0].TimeDelta)
	assert.Equal(t, timeOfDay(8, 0), departures[0].OtherStops[0].Time)
}

func TestBuildDeparturesHaltDay(t *testing.T) {
	rows := []models.ShuttleTimetableRow{
		{PeriodType: calendarutil.PeriodSemester, Weekday: true, DepartureTime: timeOfDay(8, 10)},
	}
	q := Query{
		Periods:  []string{calendarutil.PeriodSemester},
		Weekdays: []bool{true},
		Holiday:  calendarutil.HolidayHalt,
	}

	departures := BuildDepartures(rows, q, models.ShuttleRouteStop{}, nil)

	assert.Empty(t, departures)
}

func TestGroupByTagEnumeratesEveryTag(t *testing.T) {
	views := []RouteArrivals{
		{
			Route:      models.ShuttleRoute{Name: "DHDD", Tag: models.ShuttleTagDH},
			Departures: []Departure{{Time: timeOfDay(8, 30)}},
		},
		{
			Route:      models.ShuttleRoute{Name: "DHSS", Tag: models.ShuttleTagDH},
			Departures: []Departure{{Time: timeOfDay(8, 10)}},
		},
	}

	tags := GroupByTag(views)

	require.Len(t, tags, len(models.ShuttleTags))
	for i, tag := range models.ShuttleTags {
		assert.Equal(t, tag, tags[i].Tag)
	}

	// Routes sharing a tag are pooled and re-sorted.
	require.Len(t, tags[0].Departures, 2)
	assert.Equal(t, timeOfDay(8, 10), tags[0].Departures[0].Time)
	assert.Equal(t, timeOfDay(8, 30), tags[0].Departures[1].Time)

	// Unmatched tags carry empty lists, not nil.
	for _, view := range tags[1:] {
		assert.NotNil(t, view.Departures)
		assert.Empty(t, view.Departures)
	}
}

func TestGroupByTagSkipsUnknownTag(t *testing.T) {
	views := []RouteArrivals{
		{
			Route:      models.ShuttleRoute{Name: "XX", Tag: models.ShuttleTag("XX")},
			Departures: []Departure{{Time: timeOfDay(8, 0)}},
		},
	}

	tags := GroupByTag(views)

	require.Len(t, tags, len(models.ShuttleTags))
	for _, view := range tags {
		assert.Empty(t, view.Departures)
	}
}
