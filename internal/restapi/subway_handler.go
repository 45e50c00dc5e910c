package restapi

import (
	"errors"
	"net/http"
	"time"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type subwayStationListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Line int    `json:"line"`
}

type subwayStationListResponse struct {
	Stations []subwayStationListItem `json:"station"`
}

type subwayStationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Line           int    `json:"line"`
	Sequence       int    `json:"sequence"`
	CumulativeTime int    `json:"cumulative_time"` // minutes from the line's first station
}

type subwayStationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type subwayTimetableItem struct {
	Weekday     string           `json:"weekday"`
	Heading     string           `json:"heading"`
	Sequence    int              `json:"sequence"`
	Origin      subwayStationRef `json:"origin"`
	Destination subwayStationRef `json:"destination"`
	Time        models.TimeOfDay `json:"time"`
}

type subwayCurrentStatus struct {
	Location string  `json:"location"`
	Time     float64 `json:"time"` // seconds until arrival
	Status   int     `json:"status"`
}

type subwayRealtimeItem struct {
	Heading     string              `json:"heading"`
	Sequence    int                 `json:"sequence"`
	TrainNumber string              `json:"no"`
	Destination subwayStationRef    `json:"destination"`
	Current     subwayCurrentStatus `json:"current"`
	Express     bool                `json:"express"`
	Last        bool                `json:"last"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type subwayHeadingGroup[T any] struct {
	Up   []T `json:"up"`
	Down []T `json:"down"`
}

type subwayArrivalResponse struct {
	ID        string                                  `json:"id"`
	Name      string                                  `json:"name"`
	Line      int                                     `json:"line"`
	Realtime  subwayHeadingGroup[subwayRealtimeItem]  `json:"realtime"`
	Timetable subwayHeadingGroup[subwayTimetableItem] `json:"timetable"`
}

type subwayTimetableResponse struct {
	ID       string                                  `json:"id"`
	Name     string                                  `json:"name"`
	Weekdays subwayHeadingGroup[subwayTimetableItem] `json:"weekdays"`
	Weekends subwayHeadingGroup[subwayTimetableItem] `json:"weekends"`
}

func (api *RestAPI) subwayStationListHandler(w http.ResponseWriter, r *http.Request) {
	stations, err := api.Repo.SubwayStations(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]subwayStationListItem, 0, len(stations))
	for _, station := range stations {
		items = append(items, subwayStationListItem{
			ID:   station.ID,
			Name: station.Name,
			Line: station.LineID,
		})
	}
	api.sendResponse(w, r, subwayStationListResponse{Stations: items})
}

func (api *RestAPI) subwayStationHandler(w http.ResponseWriter, r *http.Request) {
	station, err := api.Repo.SubwayStation(r.Context(), utils.ExtractParam(r, "station_id"))
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Station not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, subwayStationResponse{
		ID:             station.ID,
		Name:           station.Name,
		Line:           station.LineID,
		Sequence:       station.Sequence,
		CumulativeTime: station.CumulativeTime,
	})
}

// subwayArrivalHandler returns the live trains plus the remaining scheduled
// departures for today, split by heading.
func (api *RestAPI) subwayArrivalHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := api.Now()

	station, err := api.Repo.SubwayStation(ctx, utils.ExtractParam(r, "station_id"))
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Station not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	realtimeRows, err := api.Repo.SubwayRealtime(ctx, station.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	timetableRows, err := api.Repo.SubwayTimetable(ctx, station.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	weekdayName := api.Oracle.WeekdayName(now)
	nowTime := models.TimeOfDayOf(now)

	var realtime subwayHeadingGroup[subwayRealtimeItem]
	realtime.Up = []subwayRealtimeItem{}
	realtime.Down = []subwayRealtimeItem{}
	for _, row := range realtimeRows {
		item := subwayRealtimeItem{
			Heading:     row.Heading,
			Sequence:    row.Sequence,
			TrainNumber: row.TrainNumber,
			Destination: subwayStationRef{ID: row.TerminalID, Name: row.TerminalName},
			Current: subwayCurrentStatus{
				Location: row.Location,
				Time:     (time.Duration(row.RemainingTime) * time.Minute).Seconds(),
				Status:   row.Status,
			},
			Express:   row.Express,
			Last:      row.Last,
			UpdatedAt: row.UpdatedAt,
		}
		if row.Heading == models.HeadingUp {
			realtime.Up = append(realtime.Up, item)
		} else {
			realtime.Down = append(realtime.Down, item)
		}
	}

	var upcoming subwayHeadingGroup[subwayTimetableItem]
	upcoming.Up = []subwayTimetableItem{}
	upcoming.Down = []subwayTimetableItem{}
	for _, row := range timetableRows {
		if row.Weekday != weekdayName {
			continue
		}
		if !row.DepartureTime.After(nowTime) {
			continue
		}
		item := subwayTimetableItem{
			Weekday:     row.Weekday,
			Heading:     row.Heading,
			Origin:      subwayStationRef{ID: row.StartID, Name: row.StartName},
			Destination: subwayStationRef{ID: row.TerminalID, Name: row.TerminalName},
			Time:        row.DepartureTime,
		}
		if row.Heading == models.HeadingUp {
			item.Sequence = len(upcoming.Up)
			upcoming.Up = append(upcoming.Up, item)
		} else {
			item.Sequence = len(upcoming.Down)
			upcoming.Down = append(upcoming.Down, item)
		}
	}

	api.sendResponse(w, r, subwayArrivalResponse{
		ID:        station.ID,
		Name:      station.Name,
		Line:      station.LineID,
		Realtime:  realtime,
		Timetable: upcoming,
	})
}

func (api *RestAPI) subwayTimetableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	station, err := api.Repo.SubwayStation(ctx, utils.ExtractParam(r, "station_id"))
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Station not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	rows, err := api.Repo.SubwayTimetable(ctx, station.ID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := subwayTimetableResponse{ID: station.ID, Name: station.Name}
	response.Weekdays.Up = []subwayTimetableItem{}
	response.Weekdays.Down = []subwayTimetableItem{}
	response.Weekends.Up = []subwayTimetableItem{}
	response.Weekends.Down = []subwayTimetableItem{}

	appendItem := func(group *[]subwayTimetableItem, row models.SubwayTimetableRow) {
		*group = append(*group, subwayTimetableItem{
			Weekday:     row.Weekday,
			Heading:     row.Heading,
			Sequence:    len(*group),
			Origin:      subwayStationRef{ID: row.StartID, Name: row.StartName},
			Destination: subwayStationRef{ID: row.TerminalID, Name: row.TerminalName},
			Time:        row.DepartureTime,
		})
	}
	for _, row := range rows {
		weekday := row.Weekday == models.WeekdayNameWeekdays
		up := row.Heading == models.HeadingUp
		switch {
		case weekday && up:
			appendItem(&response.Weekdays.Up, row)
		case weekday && !up:
			appendItem(&response.Weekdays.Down, row)
		case !weekday && up:
			appendItem(&response.Weekends.Up, row)
		default:
			appendItem(&response.Weekends.Down, row)
		}
	}
	api.sendResponse(w, r, response)
}
