package restapi

import (
	"errors"
	"net/http"
	"time"

	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/utils"
)

type readingRoomStatus struct {
	Active     bool `json:"active"`
	Reservable bool `json:"reservable"`
}

type readingRoomSeats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type readingRoomItem struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Status    readingRoomStatus `json:"status"`
	Seats     readingRoomSeats  `json:"seats"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type campusReadingRoomResponse struct {
	ID    int               `json:"id"`
	Name  string            `json:"name"`
	Rooms []readingRoomItem `json:"rooms"`
}

func readingRoomItemOf(room models.ReadingRoom) readingRoomItem {
	return readingRoomItem{
		ID:   room.ID,
		Name: room.Name,
		Status: readingRoomStatus{
			Active:     room.Active,
			Reservable: room.Reservable,
		},
		Seats: readingRoomSeats{
			Total:     room.TotalSeats,
			Active:    room.ActiveSeats,
			Occupied:  room.OccupiedSeats,
			Available: room.AvailableSeats,
		},
		UpdatedAt: room.UpdatedAt,
	}
}

func (api *RestAPI) readingRoomListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campusID, err := utils.IntParam("campus_id", utils.ExtractParam(r, "campus_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	campus, err := api.Repo.Campus(ctx, campusID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Campus not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	rooms, err := api.Repo.ReadingRooms(ctx, &campusID, nil, nil)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	items := make([]readingRoomItem, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, readingRoomItemOf(room))
	}
	api.sendResponse(w, r, campusReadingRoomResponse{
		ID:    campus.ID,
		Name:  campus.Name,
		Rooms: items,
	})
}

func (api *RestAPI) readingRoomHandler(w http.ResponseWriter, r *http.Request) {
	campusID, err := utils.IntParam("campus_id", utils.ExtractParam(r, "campus_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	roomID, err := utils.IntParam("room_id", utils.ExtractParam(r, "room_id"))
	if err != nil {
		api.badRequestResponse(w, r, err)
		return
	}

	room, err := api.Repo.ReadingRoom(r.Context(), campusID, roomID)
	if errors.Is(err, repository.ErrNotFound) {
		api.sendNotFound(w, r, "Reading room not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, readingRoomItemOf(*room))
}
