package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusapi.hyuabot.app/internal/models"
)

func (p *Postgres) Campuses(ctx context.Context, nameLike string) ([]models.Campus, error) {
	q := `SELECT campus_id, campus_name FROM campus`
	args := []any{}
	if nameLike != "" {
		q += ` WHERE campus_name LIKE $1`
		args = append(args, likePattern(nameLike))
	}
	q += ` ORDER BY campus_id`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query campuses: %w", err)
	}
	defer rows.Close()

	var campuses []models.Campus
	for rows.Next() {
		var c models.Campus
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		campuses = append(campuses, c)
	}
	return campuses, rows.Err()
}

func (p *Postgres) Campus(ctx context.Context, id int) (*models.Campus, error) {
	q := `SELECT campus_id, campus_name FROM campus WHERE campus_id = $1`
	var c models.Campus
	err := p.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query campus: %w", err)
	}
	return &c, nil
}

const readingRoomColumns = `room_id, campus_id, room_name, is_active, is_reservable,
	total_seats, active_seats, occupied_seats, available_seats, last_updated_time`

func scanReadingRoom(scanner interface{ Scan(...any) error }, room *models.ReadingRoom) error {
	return scanner.Scan(&room.ID, &room.CampusID, &room.Name, &room.Active, &room.Reservable,
		&room.TotalSeats, &room.ActiveSeats, &room.OccupiedSeats, &room.AvailableSeats, &room.UpdatedAt)
}

func (p *Postgres) ReadingRooms(ctx context.Context, campusID *int, roomIDs []int, active *bool) ([]models.ReadingRoom, error) {
	q := `SELECT ` + readingRoomColumns + ` FROM reading_room WHERE 1=1`
	args := []any{}
	if campusID != nil {
		args = append(args, *campusID)
		q += fmt.Sprintf(` AND campus_id = $%d`, len(args))
	}
	if len(roomIDs) > 0 {
		args = append(args, roomIDs)
		q += fmt.Sprintf(` AND room_id = ANY($%d)`, len(args))
	}
	if active != nil {
		args = append(args, *active)
		q += fmt.Sprintf(` AND is_active = $%d`, len(args))
	}
	q += ` ORDER BY room_id`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query reading rooms: %w", err)
	}
	defer rows.Close()

	var result []models.ReadingRoom
	for rows.Next() {
		var room models.ReadingRoom
		if err := scanReadingRoom(rows, &room); err != nil {
			return nil, err
		}
		result = append(result, room)
	}
	return result, rows.Err()
}

func (p *Postgres) ReadingRoom(ctx context.Context, campusID, roomID int) (*models.ReadingRoom, error) {
	q := `SELECT ` + readingRoomColumns + ` FROM reading_room WHERE campus_id = $1 AND room_id = $2`
	var room models.ReadingRoom
	err := scanReadingRoom(p.db.QueryRowContext(ctx, q, campusID, roomID), &room)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query reading room: %w", err)
	}
	return &room, nil
}

func (p *Postgres) Restaurants(ctx context.Context, campusID *int, restaurantIDs []int) ([]models.Restaurant, error) {
	q := `SELECT restaurant_id, campus_id, restaurant_name, latitude, longitude
	      FROM restaurant WHERE 1=1`
	args := []any{}
	if campusID != nil {
		args = append(args, *campusID)
		q += fmt.Sprintf(` AND campus_id = $%d`, len(args))
	}
	if len(restaurantIDs) > 0 {
		args = append(args, restaurantIDs)
		q += fmt.Sprintf(` AND restaurant_id = ANY($%d)`, len(args))
	}
	q += ` ORDER BY restaurant_id`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(&r.ID, &r.CampusID, &r.Name, &r.Latitude, &r.Longitude); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (p *Postgres) Menus(ctx context.Context, restaurantID int, date *time.Time, slot *string) ([]models.Menu, error) {
	q := `SELECT restaurant_id, feed_date, time_type, menu_food, menu_price
	      FROM menu WHERE restaurant_id = $1`
	args := []any{restaurantID}
	if date != nil {
		args = append(args, *date)
		q += fmt.Sprintf(` AND feed_date = $%d`, len(args))
	}
	if slot != nil {
		args = append(args, *slot)
		q += fmt.Sprintf(` AND time_type = $%d`, len(args))
	}
	q += ` ORDER BY feed_date, time_type`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	defer rows.Close()

	var menus []models.Menu
	for rows.Next() {
		var m models.Menu
		if err := rows.Scan(&m.RestaurantID, &m.Date, &m.Slot, &m.Food, &m.Price); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func (p *Postgres) CommuteRoutes(ctx context.Context, nameLike string) ([]models.CommuteShuttleRoute, error) {
	q := `SELECT route_name, route_description_korean, route_description_english
	      FROM commute_shuttle_route`
	args := []any{}
	if nameLike != "" {
		args = append(args, likePattern(nameLike))
		q += ` WHERE route_name LIKE $1
		       OR route_description_korean LIKE $1
		       OR route_description_english LIKE $1`
	}
	q += ` ORDER BY route_name`
	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query commute shuttle routes: %w", err)
	}
	defer rows.Close()

	var routes []models.CommuteShuttleRoute
	for rows.Next() {
		var r models.CommuteShuttleRoute
		if err := rows.Scan(&r.Name, &r.Korean, &r.English); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (p *Postgres) CommuteRoute(ctx context.Context, name string) (*models.CommuteShuttleRoute, error) {
	q := `SELECT route_name, route_description_korean, route_description_english
	      FROM commute_shuttle_route WHERE route_name = $1`
	var r models.CommuteShuttleRoute
	err := p.db.QueryRowContext(ctx, q, name).Scan(&r.Name, &r.Korean, &r.English)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query commute shuttle route: %w", err)
	}
	return &r, nil
}

func (p *Postgres) CommuteTimetable(ctx context.Context, routeName string) ([]models.CommuteShuttleTimetableRow, error) {
	q := `SELECT route_name, stop_name, stop_order, departure_time
	      FROM commute_shuttle_timetable WHERE route_name = $1 ORDER BY stop_order`
	rows, err := p.db.QueryContext(ctx, q, routeName)
	if err != nil {
		return nil, fmt.Errorf("query commute shuttle timetable: %w", err)
	}
	defer rows.Close()

	var items []models.CommuteShuttleTimetableRow
	for rows.Next() {
		var item models.CommuteShuttleTimetableRow
		if err := rows.Scan(&item.RouteName, &item.StopName, &item.Sequence, &item.DepartureTime); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
