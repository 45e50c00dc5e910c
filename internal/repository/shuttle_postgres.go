package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campusapi.hyuabot.app/internal/models"
)

func (p *Postgres) ShuttleStops(ctx context.Context, nameLike string) ([]models.ShuttleStop, error) {
	q := `SELECT stop_name, latitude, longitude FROM shuttle_stop`
	args := []any{}
	if nameLike != "" {
		q += ` WHERE stop_name LIKE $1`
		args = append(args, likePattern(nameLike))
	}
	q += ` ORDER BY stop_name`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query shuttle stops: %w", err)
	}
	defer rows.Close()

	var stops []models.ShuttleStop
	for rows.Next() {
		var s models.ShuttleStop
		if err := rows.Scan(&s.Name, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func (p *Postgres) ShuttleStop(ctx context.Context, name string) (*models.ShuttleStop, error) {
	q := `SELECT stop_name, latitude, longitude FROM shuttle_stop WHERE stop_name = $1`
	var s models.ShuttleStop
	err := p.db.QueryRowContext(ctx, q, name).Scan(&s.Name, &s.Latitude, &s.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query shuttle stop: %w", err)
	}
	return &s, nil
}

func (p *Postgres) ShuttleRoutes(ctx context.Context, nameLike string, tag string) ([]models.ShuttleRoute, error) {
	q := `SELECT route_name, route_tag, route_description_korean, route_description_english
	      FROM shuttle_route WHERE 1=1`
	args := []any{}
	if nameLike != "" {
		args = append(args, likePattern(nameLike))
		q += fmt.Sprintf(` AND route_name LIKE $%d`, len(args))
	}
	if tag != "" {
		args = append(args, tag)
		q += fmt.Sprintf(` AND route_tag = $%d`, len(args))
	}
	q += ` ORDER BY route_name`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query shuttle routes: %w", err)
	}
	defer rows.Close()

	var routes []models.ShuttleRoute
	for rows.Next() {
		var r models.ShuttleRoute
		if err := rows.Scan(&r.Name, &r.Tag, &r.Korean, &r.English); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (p *Postgres) ShuttleRoute(ctx context.Context, name string) (*models.ShuttleRoute, error) {
	q := `SELECT route_name, route_tag, route_description_korean, route_description_english
	      FROM shuttle_route WHERE route_name = $1`
	var r models.ShuttleRoute
	err := p.db.QueryRowContext(ctx, q, name).Scan(&r.Name, &r.Tag, &r.Korean, &r.English)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query shuttle route: %w", err)
	}
	return &r, nil
}

func (p *Postgres) ShuttleRouteStops(ctx context.Context, routeName string) ([]models.ShuttleRouteStop, error) {
	q := `SELECT route_name, stop_name, stop_order, cumulative_time
	      FROM shuttle_route_stop WHERE route_name = $1 ORDER BY stop_order`
	return p.scanRouteStops(ctx, q, routeName)
}

func (p *Postgres) ShuttleStopRoutes(ctx context.Context, stopName string) ([]models.ShuttleRouteStop, error) {
	q := `SELECT route_name, stop_name, stop_order, cumulative_time
	      FROM shuttle_route_stop WHERE stop_name = $1 ORDER BY route_name`
	return p.scanRouteStops(ctx, q, stopName)
}

func (p *Postgres) scanRouteStops(ctx context.Context, q string, arg any) ([]models.ShuttleRouteStop, error) {
	rows, err := p.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, fmt.Errorf("query shuttle route stops: %w", err)
	}
	defer rows.Close()

	var routeStops []models.ShuttleRouteStop
	for rows.Next() {
		var rs models.ShuttleRouteStop
		if err := rows.Scan(&rs.RouteName, &rs.StopName, &rs.StopOrder, &rs.CumulativeTime); err != nil {
			return nil, err
		}
		routeStops = append(routeStops, rs)
	}
	return routeStops, rows.Err()
}

func (p *Postgres) ShuttleTimetable(ctx context.Context, routeName, stopName string) ([]models.ShuttleTimetableRow, error) {
	q := `SELECT period_type, weekday, route_name, stop_name, departure_time
	      FROM shuttle_timetable WHERE route_name = $1 AND stop_name = $2
	      ORDER BY departure_time`
	rows, err := p.db.QueryContext(ctx, q, routeName, stopName)
	if err != nil {
		return nil, fmt.Errorf("query shuttle timetable: %w", err)
	}
	defer rows.Close()

	var items []models.ShuttleTimetableRow
	for rows.Next() {
		var item models.ShuttleTimetableRow
		if err := rows.Scan(&item.PeriodType, &item.Weekday, &item.RouteName, &item.StopName, &item.DepartureTime); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (p *Postgres) Periods(ctx context.Context) ([]models.Period, error) {
	q := `SELECT period_type, period_start, period_end FROM shuttle_period`
	rows, err := p.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query shuttle periods: %w", err)
	}
	defer rows.Close()

	var periods []models.Period
	for rows.Next() {
		var period models.Period
		if err := rows.Scan(&period.Type, &period.Start, &period.End); err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

func (p *Postgres) Holidays(ctx context.Context) ([]models.Holiday, error) {
	q := `SELECT holiday_date, holiday_type, calendar_type FROM shuttle_holiday`
	rows, err := p.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query shuttle holidays: %w", err)
	}
	defer rows.Close()

	var holidays []models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.Date, &h.Type, &h.Calendar); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
