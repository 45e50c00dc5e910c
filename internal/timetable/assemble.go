package timetable

import (
	"sort"
	"time"

	"campusapi.hyuabot.app/internal/models"
)

// Departure is one selected timetable row with its computed times.
type Departure struct {
	RouteName  string
	Weekday    bool
	Time       models.TimeOfDay
	Remaining  time.Duration
	OtherStops []OtherStop
}

// RouteArrivals is the route-mode view: one route's departures at a stop,
// un-merged across routes.
type RouteArrivals struct {
	Route      models.ShuttleRoute
	Departures []Departure
}

// TagArrivals is the tag-mode view: departures pooled from every route
// sharing the tag.
type TagArrivals struct {
	Tag        models.ShuttleTag
	Departures []Departure
}

// BuildDepartures turns filtered rows into departures with remaining time
// and other-stop projections, sorted ascending by departure time. On a
// halt day the list is empty regardless of the rows.
func BuildDepartures(rows []models.ShuttleTimetableRow, q Query, ref models.ShuttleRouteStop, routeStops []models.ShuttleRouteStop) []Departure {
	if q.Halted() {
		return []Departure{}
	}
	departures := make([]Departure, 0, len(rows))
	for _, row := range Filter(rows, q) {
		departures = append(departures, Departure{
			RouteName:  row.RouteName,
			Weekday:    row.Weekday,
			Time:       row.DepartureTime,
			Remaining:  Remaining(row.DepartureTime, q.Now),
			OtherStops: ProjectOtherStops(row.DepartureTime, q.Now, ref, routeStops),
		})
	}
	SortDepartures(departures)
	return departures
}

// SortDepartures orders by departure time ascending; equal times keep
// their pre-sort order.
func SortDepartures(departures []Departure) {
	sort.SliceStable(departures, func(i, j int) bool {
		return departures[i].Time.Before(departures[j].Time)
	})
}

// GroupByTag pools route-mode views into the closed tag set. Every tag is
// present in the result, with an empty list when no route matched.
func GroupByTag(routes []RouteArrivals) []TagArrivals {
	buckets := make(map[models.ShuttleTag][]Departure, len(models.ShuttleTags))
	for _, tag := range models.ShuttleTags {
		buckets[tag] = []Departure{}
	}
	for _, route := range routes {
		tag := route.Route.Tag
		if _, ok := buckets[tag]; !ok {
			// Unrecognized tags are a data error; they are rejected at
			// the boundary rather than silently pooled.
			continue
		}
		buckets[tag] = append(buckets[tag], route.Departures...)
	}
	views := make([]TagArrivals, 0, len(models.ShuttleTags))
	for _, tag := range models.ShuttleTags {
		departures := buckets[tag]
		SortDepartures(departures)
		views = append(views, TagArrivals{Tag: tag, Departures: departures})
	}
	return views
}
