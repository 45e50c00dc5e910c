package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campusapi.hyuabot.app/internal/models"
)

const busRouteColumns = `route_id, route_name, route_type_code, route_type_name,
	company_id, company_name, company_telephone, district_code,
	up_first_time, up_last_time, down_first_time, down_last_time,
	start_stop_id, end_stop_id`

func scanBusRoute(scanner interface{ Scan(...any) error }, r *models.BusRoute) error {
	return scanner.Scan(
		&r.ID, &r.Name, &r.TypeCode, &r.TypeName,
		&r.CompanyID, &r.CompanyName, &r.CompanyTelephone, &r.District,
		&r.UpFirstTime, &r.UpLastTime, &r.DownFirstTime, &r.DownLastTime,
		&r.StartStopID, &r.EndStopID,
	)
}

func (p *Postgres) BusRoutes(ctx context.Context, nameLike string) ([]models.BusRoute, error) {
	q := `SELECT ` + busRouteColumns + ` FROM bus_route`
	args := []any{}
	if nameLike != "" {
		q += ` WHERE route_name LIKE $1`
		args = append(args, likePattern(nameLike))
	}
	q += ` ORDER BY route_id`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query bus routes: %w", err)
	}
	defer rows.Close()

	var routes []models.BusRoute
	for rows.Next() {
		var r models.BusRoute
		if err := scanBusRoute(rows, &r); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (p *Postgres) BusRoute(ctx context.Context, id int) (*models.BusRoute, error) {
	q := `SELECT ` + busRouteColumns + ` FROM bus_route WHERE route_id = $1`
	var r models.BusRoute
	err := scanBusRoute(p.db.QueryRowContext(ctx, q, id), &r)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query bus route: %w", err)
	}
	return &r, nil
}

func (p *Postgres) BusStops(ctx context.Context, nameLike string) ([]models.BusStop, error) {
	q := `SELECT stop_id, stop_name, latitude, longitude, district_code, region_name, mobile_number
	      FROM bus_stop`
	args := []any{}
	if nameLike != "" {
		q += ` WHERE stop_name LIKE $1`
		args = append(args, likePattern(nameLike))
	}
	q += ` ORDER BY stop_id`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query bus stops: %w", err)
	}
	defer rows.Close()

	var stops []models.BusStop
	for rows.Next() {
		var s models.BusStop
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.District, &s.Region, &s.MobileNumber); err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func (p *Postgres) BusStop(ctx context.Context, id int) (*models.BusStop, error) {
	q := `SELECT stop_id, stop_name, latitude, longitude, district_code, region_name, mobile_number
	      FROM bus_stop WHERE stop_id = $1`
	var s models.BusStop
	err := p.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.District, &s.Region, &s.MobileNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query bus stop: %w", err)
	}
	return &s, nil
}

func (p *Postgres) BusStopRoutes(ctx context.Context, stopID int) ([]models.BusRouteStop, error) {
	q := `SELECT route_id, stop_id, stop_sequence, start_stop_id
	      FROM bus_route_stop WHERE stop_id = $1 ORDER BY route_id`
	rows, err := p.db.QueryContext(ctx, q, stopID)
	if err != nil {
		return nil, fmt.Errorf("query bus stop routes: %w", err)
	}
	defer rows.Close()

	var routeStops []models.BusRouteStop
	for rows.Next() {
		var rs models.BusRouteStop
		if err := rows.Scan(&rs.RouteID, &rs.StopID, &rs.Order, &rs.StartStopID); err != nil {
			return nil, err
		}
		routeStops = append(routeStops, rs)
	}
	return routeStops, rows.Err()
}

func (p *Postgres) BusRouteStop(ctx context.Context, stopID, routeID int) (*models.BusRouteStop, error) {
	q := `SELECT route_id, stop_id, stop_sequence, start_stop_id
	      FROM bus_route_stop WHERE stop_id = $1 AND route_id = $2`
	var rs models.BusRouteStop
	err := p.db.QueryRowContext(ctx, q, stopID, routeID).Scan(&rs.RouteID, &rs.StopID, &rs.Order, &rs.StartStopID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query bus route stop: %w", err)
	}
	return &rs, nil
}

func (p *Postgres) BusTimetable(ctx context.Context, routeID, startStopID int) ([]models.BusTimetableRow, error) {
	q := `SELECT route_id, start_stop_id, weekday, departure_time
	      FROM bus_timetable WHERE route_id = $1 AND start_stop_id = $2
	      ORDER BY departure_time`
	rows, err := p.db.QueryContext(ctx, q, routeID, startStopID)
	if err != nil {
		return nil, fmt.Errorf("query bus timetable: %w", err)
	}
	defer rows.Close()

	var items []models.BusTimetableRow
	for rows.Next() {
		var item models.BusTimetableRow
		if err := rows.Scan(&item.RouteID, &item.StartStopID, &item.Weekday, &item.DepartureTime); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (p *Postgres) BusRealtime(ctx context.Context, stopID, routeID int) ([]models.BusRealtimeRow, error) {
	q := `SELECT route_id, stop_id, arrival_sequence, remaining_stop_count,
	             remaining_seat_count, remaining_time, low_plate, last_updated_time
	      FROM bus_realtime WHERE stop_id = $1 AND route_id = $2
	      ORDER BY arrival_sequence`
	rows, err := p.db.QueryContext(ctx, q, stopID, routeID)
	if err != nil {
		return nil, fmt.Errorf("query bus realtime: %w", err)
	}
	defer rows.Close()

	var items []models.BusRealtimeRow
	for rows.Next() {
		var item models.BusRealtimeRow
		if err := rows.Scan(&item.RouteID, &item.StopID, &item.Sequence, &item.RemainingStop,
			&item.RemainingSeat, &item.RemainingTime, &item.LowFloor, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
