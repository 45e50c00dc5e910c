package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campusapi.hyuabot.app/internal/models"
)

func (p *Postgres) SubwayStations(ctx context.Context, nameLike string) ([]models.SubwayStation, error) {
	q := `SELECT rs.station_id, rs.station_name, rs.route_id, r.route_name,
	             rs.station_sequence, rs.cumulative_time
	      FROM subway_route_station rs
	      JOIN subway_route r ON r.route_id = rs.route_id`
	args := []any{}
	if nameLike != "" {
		q += ` WHERE rs.station_name LIKE $1`
		args = append(args, likePattern(nameLike))
	}
	q += ` ORDER BY rs.station_id`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query subway stations: %w", err)
	}
	defer rows.Close()

	var stations []models.SubwayStation
	for rows.Next() {
		var s models.SubwayStation
		if err := rows.Scan(&s.ID, &s.Name, &s.LineID, &s.LineName, &s.Sequence, &s.CumulativeTime); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

func (p *Postgres) SubwayStation(ctx context.Context, id string) (*models.SubwayStation, error) {
	q := `SELECT rs.station_id, rs.station_name, rs.route_id, r.route_name,
	             rs.station_sequence, rs.cumulative_time
	      FROM subway_route_station rs
	      JOIN subway_route r ON r.route_id = rs.route_id
	      WHERE rs.station_id = $1`
	var s models.SubwayStation
	err := p.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.LineID, &s.LineName, &s.Sequence, &s.CumulativeTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query subway station: %w", err)
	}
	return &s, nil
}

func (p *Postgres) SubwayTimetable(ctx context.Context, stationID string) ([]models.SubwayTimetableRow, error) {
	q := `SELECT t.station_id, t.start_station_id, start_rs.station_name,
	             t.terminal_station_id, terminal_rs.station_name,
	             t.weekday, t.up_down_type, t.departure_time
	      FROM subway_timetable t
	      JOIN subway_route_station start_rs ON start_rs.station_id = t.start_station_id
	      JOIN subway_route_station terminal_rs ON terminal_rs.station_id = t.terminal_station_id
	      WHERE t.station_id = $1
	      ORDER BY t.departure_time`
	rows, err := p.db.QueryContext(ctx, q, stationID)
	if err != nil {
		return nil, fmt.Errorf("query subway timetable: %w", err)
	}
	defer rows.Close()

	var items []models.SubwayTimetableRow
	for rows.Next() {
		var item models.SubwayTimetableRow
		if err := rows.Scan(&item.StationID, &item.StartID, &item.StartName,
			&item.TerminalID, &item.TerminalName,
			&item.Weekday, &item.Heading, &item.DepartureTime); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (p *Postgres) SubwayRealtime(ctx context.Context, stationID string) ([]models.SubwayRealtimeRow, error) {
	q := `SELECT rt.station_id, rt.terminal_station_id, terminal_rs.station_name,
	             rt.up_down_type, rt.arrival_sequence, rt.current_station_name,
	             rt.remaining_stop_count, rt.remaining_time, rt.train_number,
	             rt.is_express, rt.is_last_train, rt.status_code, rt.last_updated_at
	      FROM subway_realtime rt
	      JOIN subway_route_station terminal_rs ON terminal_rs.station_id = rt.terminal_station_id
	      WHERE rt.station_id = $1
	      ORDER BY rt.up_down_type, rt.arrival_sequence`
	rows, err := p.db.QueryContext(ctx, q, stationID)
	if err != nil {
		return nil, fmt.Errorf("query subway realtime: %w", err)
	}
	defer rows.Close()

	var items []models.SubwayRealtimeRow
	for rows.Next() {
		var item models.SubwayRealtimeRow
		if err := rows.Scan(&item.StationID, &item.TerminalID, &item.TerminalName,
			&item.Heading, &item.Sequence, &item.Location,
			&item.RemainingStation, &item.RemainingTime, &item.TrainNumber,
			&item.Express, &item.Last, &item.Status, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
