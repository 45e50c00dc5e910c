package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"campusapi.hyuabot.app/internal/models"
)

// Memory is an in-memory Repository used by handler and engine tests.
// Slices are matched with the same equality/membership semantics as the
// Postgres implementation.
type Memory struct {
	ShuttleStopRows      []models.ShuttleStop
	ShuttleRouteRows     []models.ShuttleRoute
	ShuttleRouteStopRows []models.ShuttleRouteStop
	ShuttleTimetableRows []models.ShuttleTimetableRow
	PeriodRows           []models.Period
	HolidayRows          []models.Holiday

	BusStopRows      []models.BusStop
	BusRouteRows     []models.BusRoute
	BusRouteStopRows []models.BusRouteStop
	BusTimetableRows []models.BusTimetableRow
	BusRealtimeRows  []models.BusRealtimeRow

	SubwayStationRows   []models.SubwayStation
	SubwayTimetableRows []models.SubwayTimetableRow
	SubwayRealtimeRows  []models.SubwayRealtimeRow

	CampusRows      []models.Campus
	ReadingRoomRows []models.ReadingRoom
	RestaurantRows  []models.Restaurant
	MenuRows        []models.Menu

	CommuteRouteRows     []models.CommuteShuttleRoute
	CommuteTimetableRows []models.CommuteShuttleTimetableRow
}

var _ Repository = (*Memory)(nil)

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) ShuttleStops(ctx context.Context, nameLike string) ([]models.ShuttleStop, error) {
	var stops []models.ShuttleStop
	for _, s := range m.ShuttleStopRows {
		if nameLike == "" || strings.Contains(s.Name, nameLike) {
			stops = append(stops, s)
		}
	}
	return stops, nil
}

func (m *Memory) ShuttleStop(ctx context.Context, name string) (*models.ShuttleStop, error) {
	for _, s := range m.ShuttleStopRows {
		if s.Name == name {
			stop := s
			return &stop, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ShuttleRoutes(ctx context.Context, nameLike string, tag string) ([]models.ShuttleRoute, error) {
	var routes []models.ShuttleRoute
	for _, r := range m.ShuttleRouteRows {
		if nameLike != "" && !strings.Contains(r.Name, nameLike) {
			continue
		}
		if tag != "" && string(r.Tag) != tag {
			continue
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (m *Memory) ShuttleRoute(ctx context.Context, name string) (*models.ShuttleRoute, error) {
	for _, r := range m.ShuttleRouteRows {
		if r.Name == name {
			route := r
			return &route, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ShuttleRouteStops(ctx context.Context, routeName string) ([]models.ShuttleRouteStop, error) {
	var routeStops []models.ShuttleRouteStop
	for _, rs := range m.ShuttleRouteStopRows {
		if rs.RouteName == routeName {
			routeStops = append(routeStops, rs)
		}
	}
	sort.Slice(routeStops, func(i, j int) bool { return routeStops[i].StopOrder < routeStops[j].StopOrder })
	return routeStops, nil
}

func (m *Memory) ShuttleStopRoutes(ctx context.Context, stopName string) ([]models.ShuttleRouteStop, error) {
	var routeStops []models.ShuttleRouteStop
	for _, rs := range m.ShuttleRouteStopRows {
		if rs.StopName == stopName {
			routeStops = append(routeStops, rs)
		}
	}
	sort.Slice(routeStops, func(i, j int) bool { return routeStops[i].RouteName < routeStops[j].RouteName })
	return routeStops, nil
}

func (m *Memory) ShuttleTimetable(ctx context.Context, routeName, stopName string) ([]models.ShuttleTimetableRow, error) {
	var items []models.ShuttleTimetableRow
	for _, item := range m.ShuttleTimetableRows {
		if item.RouteName == routeName && item.StopName == stopName {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].DepartureTime.Before(items[j].DepartureTime) })
	return items, nil
}

func (m *Memory) Periods(ctx context.Context) ([]models.Period, error) {
	return m.PeriodRows, nil
}

func (m *Memory) Holidays(ctx context.Context) ([]models.Holiday, error) {
	return m.HolidayRows, nil
}

func (m *Memory) BusRoutes(ctx context.Context, nameLike string) ([]models.BusRoute, error) {
	var routes []models.BusRoute
	for _, r := range m.BusRouteRows {
		if nameLike == "" || strings.Contains(r.Name, nameLike) {
			routes = append(routes, r)
		}
	}
	return routes, nil
}

func (m *Memory) BusRoute(ctx context.Context, id int) (*models.BusRoute, error) {
	for _, r := range m.BusRouteRows {
		if r.ID == id {
			route := r
			return &route, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) BusStops(ctx context.Context, nameLike string) ([]models.BusStop, error) {
	var stops []models.BusStop
	for _, s := range m.BusStopRows {
		if nameLike == "" || strings.Contains(s.Name, nameLike) {
			stops = append(stops, s)
		}
	}
	return stops, nil
}

func (m *Memory) BusStop(ctx context.Context, id int) (*models.BusStop, error) {
	for _, s := range m.BusStopRows {
		if s.ID == id {
			stop := s
			return &stop, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) BusStopRoutes(ctx context.Context, stopID int) ([]models.BusRouteStop, error) {
	var routeStops []models.BusRouteStop
	for _, rs := range m.BusRouteStopRows {
		if rs.StopID == stopID {
			routeStops = append(routeStops, rs)
		}
	}
	return routeStops, nil
}

func (m *Memory) BusRouteStop(ctx context.Context, stopID, routeID int) (*models.BusRouteStop, error) {
	for _, rs := range m.BusRouteStopRows {
		if rs.StopID == stopID && rs.RouteID == routeID {
			routeStop := rs
			return &routeStop, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) BusTimetable(ctx context.Context, routeID, startStopID int) ([]models.BusTimetableRow, error) {
	var items []models.BusTimetableRow
	for _, item := range m.BusTimetableRows {
		if item.RouteID == routeID && item.StartStopID == startStopID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].DepartureTime.Before(items[j].DepartureTime) })
	return items, nil
}

func (m *Memory) BusRealtime(ctx context.Context, stopID, routeID int) ([]models.BusRealtimeRow, error) {
	var items []models.BusRealtimeRow
	for _, item := range m.BusRealtimeRows {
		if item.StopID == stopID && item.RouteID == routeID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Sequence < items[j].Sequence })
	return items, nil
}

func (m *Memory) SubwayStations(ctx context.Context, nameLike string) ([]models.SubwayStation, error) {
	var stations []models.SubwayStation
	for _, s := range m.SubwayStationRows {
		if nameLike == "" || strings.Contains(s.Name, nameLike) {
			stations = append(stations, s)
		}
	}
	return stations, nil
}

func (m *Memory) SubwayStation(ctx context.Context, id string) (*models.SubwayStation, error) {
	for _, s := range m.SubwayStationRows {
		if s.ID == id {
			station := s
			return &station, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SubwayTimetable(ctx context.Context, stationID string) ([]models.SubwayTimetableRow, error) {
	var items []models.SubwayTimetableRow
	for _, item := range m.SubwayTimetableRows {
		if item.StationID == stationID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].DepartureTime.Before(items[j].DepartureTime) })
	return items, nil
}

func (m *Memory) SubwayRealtime(ctx context.Context, stationID string) ([]models.SubwayRealtimeRow, error) {
	var items []models.SubwayRealtimeRow
	for _, item := range m.SubwayRealtimeRows {
		if item.StationID == stationID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *Memory) Campuses(ctx context.Context, nameLike string) ([]models.Campus, error) {
	var campuses []models.Campus
	for _, c := range m.CampusRows {
		if nameLike == "" || strings.Contains(c.Name, nameLike) {
			campuses = append(campuses, c)
		}
	}
	return campuses, nil
}

func (m *Memory) Campus(ctx context.Context, id int) (*models.Campus, error) {
	for _, c := range m.CampusRows {
		if c.ID == id {
			campus := c
			return &campus, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ReadingRooms(ctx context.Context, campusID *int, roomIDs []int, active *bool) ([]models.ReadingRoom, error) {
	var rooms []models.ReadingRoom
	for _, room := range m.ReadingRoomRows {
		if campusID != nil && room.CampusID != *campusID {
			continue
		}
		if len(roomIDs) > 0 && !containsInt(roomIDs, room.ID) {
			continue
		}
		if active != nil && room.Active != *active {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (m *Memory) ReadingRoom(ctx context.Context, campusID, roomID int) (*models.ReadingRoom, error) {
	for _, r := range m.ReadingRoomRows {
		if r.CampusID == campusID && r.ID == roomID {
			room := r
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Restaurants(ctx context.Context, campusID *int, restaurantIDs []int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	for _, r := range m.RestaurantRows {
		if campusID != nil && r.CampusID != *campusID {
			continue
		}
		if len(restaurantIDs) > 0 && !containsInt(restaurantIDs, r.ID) {
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}

func (m *Memory) Menus(ctx context.Context, restaurantID int, date *time.Time, slot *string) ([]models.Menu, error) {
	var menus []models.Menu
	for _, menu := range m.MenuRows {
		if menu.RestaurantID != restaurantID {
			continue
		}
		if date != nil && !menu.Date.Equal(*date) {
			continue
		}
		if slot != nil && menu.Slot != *slot {
			continue
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

func (m *Memory) CommuteRoutes(ctx context.Context, nameLike string) ([]models.CommuteShuttleRoute, error) {
	var routes []models.CommuteShuttleRoute
	for _, r := range m.CommuteRouteRows {
		if nameLike == "" ||
			strings.Contains(r.Name, nameLike) ||
			strings.Contains(r.Korean, nameLike) ||
			strings.Contains(r.English, nameLike) {
			routes = append(routes, r)
		}
	}
	return routes, nil
}

func (m *Memory) CommuteRoute(ctx context.Context, name string) (*models.CommuteShuttleRoute, error) {
	for _, r := range m.CommuteRouteRows {
		if r.Name == name {
			route := r
			return &route, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CommuteTimetable(ctx context.Context, routeName string) ([]models.CommuteShuttleTimetableRow, error) {
	var items []models.CommuteShuttleTimetableRow
	for _, item := range m.CommuteTimetableRows {
		if item.RouteName == routeName {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Sequence < items[j].Sequence })
	return items, nil
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
