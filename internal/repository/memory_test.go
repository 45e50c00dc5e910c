package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/models"
)

func TestMemoryShuttleLookups(t *testing.T) {
	repo := &Memory{
		ShuttleStopRows: []models.ShuttleStop{
			{Name: "dormitory_o"},
			{Name: "dormitory_i"},
			{Name: "shuttlecock_o"},
		},
		ShuttleRouteStopRows: []models.ShuttleRouteStop{
			{RouteName: "DYDD", StopName: "shuttlecock_o", StopOrder: 2},
			{RouteName: "DHDD", StopName: "shuttlecock_o", StopOrder: 3},
			{RouteName: "DHDD", StopName: "dormitory_o", StopOrder: 1},
		},
		ShuttleTimetableRows: []models.ShuttleTimetableRow{
			{RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(9, 0, 0)},
			{RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(8, 0, 0)},
			{RouteName: "DHDD", StopName: "dormitory_o", DepartureTime: models.NewTimeOfDay(7, 0, 0)},
		},
	}
	ctx := context.Background()

	t.Run("stop name filter is a substring match", func(t *testing.T) {
		stops, err := repo.ShuttleStops(ctx, "dormitory")
		require.NoError(t, err)
		assert.Len(t, stops, 2)
	})

	t.Run("missing stop returns ErrNotFound", func(t *testing.T) {
		_, err := repo.ShuttleStop(ctx, "nowhere")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stop memberships sort by route name", func(t *testing.T) {
		memberships, err := repo.ShuttleStopRoutes(ctx, "shuttlecock_o")
		require.NoError(t, err)
		require.Len(t, memberships, 2)
		assert.Equal(t, "DHDD", memberships[0].RouteName)
		assert.Equal(t, "DYDD", memberships[1].RouteName)
	})

	t.Run("route stops sort by stop order", func(t *testing.T) {
		routeStops, err := repo.ShuttleRouteStops(ctx, "DHDD")
		require.NoError(t, err)
		require.Len(t, routeStops, 2)
		assert.Equal(t, 1, routeStops[0].StopOrder)
	})

	t.Run("timetable rows sort by departure time", func(t *testing.T) {
		rows, err := repo.ShuttleTimetable(ctx, "DHDD", "shuttlecock_o")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.NewTimeOfDay(8, 0, 0), rows[0].DepartureTime)
		assert.Equal(t, models.NewTimeOfDay(9, 0, 0), rows[1].DepartureTime)
	})
}
