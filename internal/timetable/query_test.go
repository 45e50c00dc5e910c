package timetable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/models"
)

type stubSource struct {
	periods  []models.Period
	holidays []models.Holiday
}

func (s *stubSource) Periods(ctx context.Context) ([]models.Period, error) {
	return s.periods, nil
}

func (s *stubSource) Holidays(ctx context.Context) ([]models.Holiday, error) {
	return s.holidays, nil
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: OutputRoute},
		{input: "route", want: OutputRoute},
		{input: "tag", want: OutputTag},
		{input: "Route", wantErr: true},
		{input: "stops", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOutput(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveDefaults(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	monday := time.Date(2024, 5, 13, 8, 0, 0, 0, seoul)
	saturday := time.Date(2024, 5, 11, 8, 0, 0, 0, seoul)

	oracle := calendarutil.New(&stubSource{
		periods: []models.Period{
			{Type: calendarutil.PeriodVacation, Start: monday.AddDate(0, 0, -30), End: monday.AddDate(0, 0, 30)},
		},
		holidays: []models.Holiday{
			{Date: saturday, Type: calendarutil.HolidayHalt, Calendar: models.CalendarSolar},
		},
	}, nil)

	t.Run("computed defaults on a weekday", func(t *testing.T) {
		q, err := Resolve(context.Background(), oracle, monday, Overrides{})
		require.NoError(t, err)

		assert.Equal(t, []string{calendarutil.PeriodVacation}, q.Periods)
		assert.Equal(t, []bool{true}, q.Weekdays)
		assert.Equal(t, calendarutil.HolidayNormal, q.Holiday)
		assert.False(t, q.Halted())
	})

	t.Run("computed defaults on a halt saturday", func(t *testing.T) {
		q, err := Resolve(context.Background(), oracle, saturday, Overrides{})
		require.NoError(t, err)

		assert.Equal(t, []bool{false}, q.Weekdays)
		assert.Equal(t, calendarutil.HolidayHalt, q.Holiday)
		assert.True(t, q.Halted())
	})

	t.Run("overrides win over the calendar", func(t *testing.T) {
		start := models.NewTimeOfDay(9, 0, 0)
		q, err := Resolve(context.Background(), oracle, saturday, Overrides{
			Periods:  []string{calendarutil.PeriodSemester},
			Weekdays: []bool{true},
			Holiday:  calendarutil.HolidayNormal,
			Start:    &start,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{calendarutil.PeriodSemester}, q.Periods)
		assert.Equal(t, []bool{true}, q.Weekdays)
		assert.Equal(t, calendarutil.HolidayNormal, q.Holiday)
		assert.Equal(t, &start, q.Start)
	})
}
