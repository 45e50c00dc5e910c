package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "full", input: "08:05:30", want: NewTimeOfDay(8, 5, 30)},
		{name: "hour and minute only", input: "23:59", want: NewTimeOfDay(23, 59, 0)},
		{name: "midnight", input: "00:00:00", want: NewTimeOfDay(0, 0, 0)},
		{name: "surrounding whitespace", input: " 10:30:00 ", want: NewTimeOfDay(10, 30, 0)},
		{name: "hour out of range", input: "24:00:00", wantErr: true},
		{name: "minute out of range", input: "10:60:00", wantErr: true},
		{name: "negative", input: "-1:00:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "08:05:03", NewTimeOfDay(8, 5, 3).String())
	assert.Equal(t, "00:00:00", NewTimeOfDay(0, 0, 0).String())
	assert.Equal(t, "23:59:59", NewTimeOfDay(23, 59, 59).String())
}

func TestTimeOfDayOrdering(t *testing.T) {
	early := NewTimeOfDay(8, 0, 0)
	late := NewTimeOfDay(8, 0, 1)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
}

func TestTimeOfDayOn(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	date := time.Date(2024, 5, 13, 17, 45, 12, 0, loc)

	combined := NewTimeOfDay(8, 30, 0).On(date)

	assert.Equal(t, time.Date(2024, 5, 13, 8, 30, 0, 0, loc), combined)
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewTimeOfDay(8, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, `"08:05:00"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, NewTimeOfDay(8, 5, 0), parsed)
}

func TestTimeOfDayScan(t *testing.T) {
	var fromTime TimeOfDay
	require.NoError(t, fromTime.Scan(time.Date(2024, 1, 1, 7, 15, 0, 0, time.UTC)))
	assert.Equal(t, NewTimeOfDay(7, 15, 0), fromTime)

	var fromString TimeOfDay
	require.NoError(t, fromString.Scan("12:30:45"))
	assert.Equal(t, NewTimeOfDay(12, 30, 45), fromString)

	var fromBytes TimeOfDay
	require.NoError(t, fromBytes.Scan([]byte("06:00:00")))
	assert.Equal(t, NewTimeOfDay(6, 0, 0), fromBytes)

	var invalid TimeOfDay
	assert.Error(t, invalid.Scan(42))
}

func TestParseShuttleTag(t *testing.T) {
	for _, tag := range ShuttleTags {
		parsed, err := ParseShuttleTag(string(tag))
		require.NoError(t, err)
		assert.Equal(t, tag, parsed)
	}

	_, err := ParseShuttleTag("XX")
	assert.Error(t, err)
}
