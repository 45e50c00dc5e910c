package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingRoomList(t *testing.T) {
	api := newTestAPI(t, seedCampus(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/library/2/room")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[campusReadingRoomResponse](t, rec)

	assert.Equal(t, 2, body.ID)
	assert.Equal(t, "ERICA", body.Name)
	require.Len(t, body.Rooms, 2)
	assert.Equal(t, "제1열람실", body.Rooms[0].Name)
	assert.True(t, body.Rooms[0].Status.Active)
	assert.Equal(t, readingRoomSeats{Total: 300, Active: 300, Occupied: 120, Available: 180}, body.Rooms[0].Seats)
}

func TestReadingRoomListUnknownCampus(t *testing.T) {
	api := newTestAPI(t, seedCampus(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/library/9/room")

	requireMessage(t, rec, http.StatusNotFound, "Campus not found")
}

func TestReadingRoomDetail(t *testing.T) {
	api := newTestAPI(t, seedCampus(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/library/2/room/61")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[readingRoomItem](t, rec)

	assert.Equal(t, 61, body.ID)
	assert.False(t, body.Status.Active)
	assert.Equal(t, 0, body.Seats.Available)
}

func TestReadingRoomDetailNotFound(t *testing.T) {
	api := newTestAPI(t, seedCampus(), testNow)
	handler := api.Routes()

	rec := doRequest(t, handler, "/library/2/room/99")

	requireMessage(t, rec, http.StatusNotFound, "Reading room not found")
}
