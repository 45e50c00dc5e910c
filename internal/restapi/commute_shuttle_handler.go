package restapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

// Commute shuttle service status codes.
const (
	commuteStatusSuccess     = "SUCCESS"
	commuteStatusWeekends    = "ERROR.WEEKENDS"
	commuteStatusNotSemester = "ERROR.NOT_SEMESTER"
	commuteStatusHoliday     = "ERROR.HOLIDAY"
)

type commuteRouteListItem struct {
	ID      string `json:"id"`
	Korean  string `json:"korean"`
	English string `json:"english"`
}

type commuteRouteListResponse struct {
	Routes []commuteRouteListItem `json:"route"`
}

type commuteTimetableItem struct {
	Name string           `json:"name"`
	Time models.TimeOfDay `json:"time"`
}

type commuteCurrentLocation struct {
	Start commuteTimetableItem `json:"start"`
	End   commuteTimetableItem `json:"end"`
}

type commuteRouteResponse struct {
	Name      string                 `json:"name"`
	Timetable []commuteTimetableItem `json:"timetable"`
	Current   commuteCurrentLocation `json:"current"`
	Status    string                 `json:"status"`
}

type commuteArrivalItem struct {
	Name    string                 `json:"name"`
	Korean  string                 `json:"korean"`
	English string                 `json:"english"`
	Current commuteCurrentLocation `json:"current"`
}

type commuteArrivalResponse struct {
	Routes []commuteArrivalItem `json:"route"`
	Status string               `json:"status"`
}

// commuteStatus reports whether the commuter shuttle runs right now. It
// only operates on weekday semester days without a special holiday status.
func (api *RestAPI) commuteStatus(ctx context.Context, now time.Time) (string, error) {
	if api.Oracle.IsNonServiceDay(now) {
		return commuteStatusWeekends, nil
	}
	period, err := api.Oracle.CurrentPeriod(ctx, now)
	if err != nil {
		return "", err
	}
	if period != calendarutil.PeriodSemester {
		return commuteStatusNotSemester, nil
	}
	status, err := api.Oracle.HolidayStatus(ctx, now)
	if err != nil {
		return "", err
	}
	if status != calendarutil.HolidayNormal {
		return commuteStatusHoliday, nil
	}
	return commuteStatusSuccess, nil
}

// currentSegment finds the stop most recently passed and the next stop on
// the route, relative to now. Empty names mark "before the first stop" and
// "after the last stop".
func currentSegment(rows []models.CommuteShuttleTimetableRow, now time.Time) commuteCurrentLocation {
	nowTime := models.TimeOfDayOf(now)
	segment := commuteCurrentLocation{
		Start: commuteTimetableItem{},
		End:   commuteTimetableItem{},
	}
	for _, row := range rows {
		if row.DepartureTime.Before(nowTime) {
			if segment.Start.Name == "" || row.DepartureTime.After(segment.Start.Time) {
				segment.Start = commuteTimetableItem{Name: row.StopName, Time: row.DepartureTime}
			}
		}
		if row.DepartureTime.After(nowTime) {
			if segment.End.Name == "" || row.DepartureTime.Before(segment.End.Time) {
				segment.End = commuteTimetableItem{Name: row.StopName, Time: row.DepartureTime}
			}
		}
	}
	return segment
}

func (api *RestAPI) commuteRouteListHandler(w http.ResponseWriter, r *http.Request) {
	routes, err := api.Repo.CommuteRoutes(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]commuteRouteListItem, 0, len(routes))
	for _, route := range routes {
		items = append(items, commuteRouteListItem{
			ID:      route.Name,
			Korean:  route.Korean,
			English: route.English,
		})
	}
	api.sendResponse(w, r, commuteRouteListResponse{Routes: items})
}

func (api *RestAPI) commuteRouteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()

	route, err := api.Repo.CommuteRoute(ctx, utils.ExtractParam(r, "route_id"))
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Commute shuttle route not found.")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	rows, err := api.Repo.CommuteTimetable(ctx, route.Name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	status, err := api.commuteStatus(ctx, now)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]commuteTimetableItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, commuteTimetableItem{Name: row.StopName, Time: row.DepartureTime})
	}

	api.sendResponse(w, r, commuteRouteResponse{
		Name:      route.Name,
		Timetable: items,
		Current:   currentSegment(rows, now),
		Status:    status,
	})
}

func (api *RestAPI) commuteArrivalHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()

	status, err := api.commuteStatus(ctx, now)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	routes, err := api.Repo.CommuteRoutes(ctx, "")
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]commuteArrivalItem, 0, len(routes))
	for _, route := range routes {
		rows, err := api.Repo.CommuteTimetable(ctx, route.Name)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		items = append(items, commuteArrivalItem{
			Name:    route.Name,
			Korean:  route.Korean,
			English: route.English,
			Current: currentSegment(rows, now),
		})
	}

	api.sendResponse(w, r, commuteArrivalResponse{Routes: items, Status: status})
}
