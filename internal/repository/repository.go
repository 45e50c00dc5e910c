// Package repository is the read-only data-access layer. Implementations
// perform equality and membership predicates only; every temporal rule
// lives in the calendar and timetable packages above.
package repository

import (
	"context"
	"errors"
	"time"

	"campusapi.hyuabot.app/internal/models"
)

// ErrNotFound marks a missing entity; the request boundary maps it to 404.
var ErrNotFound = errors.New("repository: not found")

// Repository is the storage contract the core consumes. List methods with
// a nameLike argument filter by substring when it is non-empty.
type Repository interface {
	// Campus shuttle.
	ShuttleStops(ctx context.Context, nameLike string) ([]models.ShuttleStop, error)
	ShuttleStop(ctx context.Context, name string) (*models.ShuttleStop, error)
	ShuttleRoutes(ctx context.Context, nameLike string, tag string) ([]models.ShuttleRoute, error)
	ShuttleRoute(ctx context.Context, name string) (*models.ShuttleRoute, error)
	// ShuttleRouteStops returns a route's stops ordered by stop order.
	ShuttleRouteStops(ctx context.Context, routeName string) ([]models.ShuttleRouteStop, error)
	// ShuttleStopRoutes returns the route memberships of one stop.
	ShuttleStopRoutes(ctx context.Context, stopName string) ([]models.ShuttleRouteStop, error)
	ShuttleTimetable(ctx context.Context, routeName, stopName string) ([]models.ShuttleTimetableRow, error)

	// Service calendar.
	Periods(ctx context.Context) ([]models.Period, error)
	Holidays(ctx context.Context) ([]models.Holiday, error)

	// City bus.
	BusRoutes(ctx context.Context, nameLike string) ([]models.BusRoute, error)
	BusRoute(ctx context.Context, id int) (*models.BusRoute, error)
	BusStops(ctx context.Context, nameLike string) ([]models.BusStop, error)
	BusStop(ctx context.Context, id int) (*models.BusStop, error)
	BusStopRoutes(ctx context.Context, stopID int) ([]models.BusRouteStop, error)
	BusRouteStop(ctx context.Context, stopID, routeID int) (*models.BusRouteStop, error)
	// BusTimetable returns departures from the route's start stop, ordered
	// by departure time.
	BusTimetable(ctx context.Context, routeID, startStopID int) ([]models.BusTimetableRow, error)
	BusRealtime(ctx context.Context, stopID, routeID int) ([]models.BusRealtimeRow, error)

	// Subway.
	SubwayStations(ctx context.Context, nameLike string) ([]models.SubwayStation, error)
	SubwayStation(ctx context.Context, id string) (*models.SubwayStation, error)
	SubwayTimetable(ctx context.Context, stationID string) ([]models.SubwayTimetableRow, error)
	SubwayRealtime(ctx context.Context, stationID string) ([]models.SubwayRealtimeRow, error)

	// Campus directory and library.
	Campuses(ctx context.Context, nameLike string) ([]models.Campus, error)
	Campus(ctx context.Context, id int) (*models.Campus, error)
	ReadingRooms(ctx context.Context, campusID *int, roomIDs []int, active *bool) ([]models.ReadingRoom, error)
	ReadingRoom(ctx context.Context, campusID, roomID int) (*models.ReadingRoom, error)

	// Cafeteria.
	Restaurants(ctx context.Context, campusID *int, restaurantIDs []int) ([]models.Restaurant, error)
	Menus(ctx context.Context, restaurantID int, date *time.Time, slot *string) ([]models.Menu, error)

	// Inter-campus commuter shuttle.
	CommuteRoutes(ctx context.Context, nameLike string) ([]models.CommuteShuttleRoute, error)
	CommuteRoute(ctx context.Context, name string) (*models.CommuteShuttleRoute, error)
	// CommuteTimetable returns a route's stops ordered by sequence.
	CommuteTimetable(ctx context.Context, routeName string) ([]models.CommuteShuttleTimetableRow, error)

	Ping(ctx context.Context) error
}
