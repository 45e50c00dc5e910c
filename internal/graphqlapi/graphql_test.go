package graphqlapi

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi.hyuabot.app/internal/app"
	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/models"
	"campusapi.hyuabot.app/internal/repository"
)

var seoul = time.FixedZone("KST", 9*3600)

// Monday morning during the semester.
var testNow = time.Date(2024, 5, 13, 8, 0, 0, 0, seoul)

func seedRepo() *repository.Memory {
	return &repository.Memory{
		ShuttleStopRows: []models.ShuttleStop{
			{Name: "shuttlecock_o", Latitude: 37.29875, Longitude: 126.83790},
		},
		ShuttleRouteRows: []models.ShuttleRoute{
			{Name: "DHDD", Tag: models.ShuttleTagDH, Korean: "한대앞 직행", English: "Direct to Station"},
		},
		ShuttleRouteStopRows: []models.ShuttleRouteStop{
			{RouteName: "DHDD", StopName: "dormitory_o", StopOrder: 1, CumulativeTime: 0},
			{RouteName: "DHDD", StopName: "shuttlecock_o", StopOrder: 2, CumulativeTime: 10},
		},
		ShuttleTimetableRows: []models.ShuttleTimetableRow{
			{PeriodType: "semester", Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(7, 30, 0)},
			{PeriodType: "semester", Weekday: true, RouteName: "DHDD", StopName: "shuttlecock_o", DepartureTime: models.NewTimeOfDay(8, 10, 0)},
		},
		PeriodRows: []models.Period{
			{
				Type:  "semester",
				Start: time.Date(2024, 3, 2, 0, 0, 0, 0, seoul),
				End:   time.Date(2024, 6, 21, 23, 59, 59, 0, seoul),
			},
		},
		BusStopRows: []models.BusStop{
			{ID: 100, Name: "한양대정문", MobileNumber: "18459"},
			{ID: 200, Name: "안산종합버스터미널"},
		},
		BusRouteRows: []models.BusRoute{
			{ID: 10, Name: "707-1", StartStopID: 200, EndStopID: 100},
		},
		BusRouteStopRows: []models.BusRouteStop{
			{RouteID: 10, StopID: 100, Order: 5, StartStopID: 200},
		},
		BusTimetableRows: []models.BusTimetableRow{
			{RouteID: 10, StartStopID: 200, Weekday: models.WeekdayNameWeekdays, DepartureTime: models.NewTimeOfDay(8, 30, 0)},
			{RouteID: 10, StartStopID: 200, Weekday: models.WeekdayNameSunday, DepartureTime: models.NewTimeOfDay(10, 0, 0)},
		},
		CampusRows: []models.Campus{{ID: 2, Name: "ERICA"}},
		ReadingRoomRows: []models.ReadingRoom{
			{ID: 1, CampusID: 2, Name: "제1열람실", Active: true, Reservable: true, TotalSeats: 300, ActiveSeats: 300, OccupiedSeats: 120, AvailableSeats: 180, UpdatedAt: testNow},
		},
		RestaurantRows: []models.Restaurant{
			{ID: 1, CampusID: 2, Name: "학생식당"},
		},
		MenuRows: []models.Menu{
			{RestaurantID: 1, Date: time.Date(2024, 5, 13, 0, 0, 0, 0, seoul), Slot: "중식", Food: "제육볶음", Price: "6000"},
		},
		CommuteRouteRows: []models.CommuteShuttleRoute{
			{Name: "1", Korean: "강남권", English: "Gangnam"},
		},
		CommuteTimetableRows: []models.CommuteShuttleTimetableRow{
			{RouteName: "1", StopName: "양재역", Sequence: 1, DepartureTime: models.NewTimeOfDay(7, 30, 0)},
		},
	}
}

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	repo := seedRepo()
	schema, err := NewSchema(&app.Application{
		Repo:     repo,
		Oracle:   calendarutil.New(repo, nil),
		Location: seoul,
		NowFunc:  func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return schema
}

func execute(t *testing.T, schema graphql.Schema, query string) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func TestShuttleQuery(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		shuttle(stop: ["shuttlecock_o"]) {
			stop {
				stopName
				location { latitude }
				route {
					routeID
					descriptionKorean
					timetable {
						weekdays
						time
						remainingTime
						otherStops { stopName timedelta time }
					}
				}
				tag { tagID }
			}
			params { period weekday }
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	shuttle := data["shuttle"].(map[string]interface{})

	params := shuttle["params"].(map[string]interface{})
	assert.Equal(t, []interface{}{"semester"}, params["period"])
	assert.Equal(t, []interface{}{true}, params["weekday"])

	stops := shuttle["stop"].([]interface{})
	require.Len(t, stops, 1)
	stop := stops[0].(map[string]interface{})
	assert.Equal(t, "shuttlecock_o", stop["stopName"])

	routes := stop["route"].([]interface{})
	require.Len(t, routes, 1)
	route := routes[0].(map[string]interface{})
	assert.Equal(t, "DHDD", route["routeID"])

	// Only the 08:10 departure is upcoming at 08:00.
	timetable := route["timetable"].([]interface{})
	require.Len(t, timetable, 1)
	entry := timetable[0].(map[string]interface{})
	assert.Equal(t, "08:10:00", entry["time"])
	assert.Equal(t, float64(600), entry["remainingTime"])

	otherStops := entry["otherStops"].([]interface{})
	require.Len(t, otherStops, 2)
	first := otherStops[0].(map[string]interface{})
	assert.Equal(t, "dormitory_o", first["stopName"])
	assert.Equal(t, -10, first["timedelta"])
	assert.Equal(t, "08:00:00", first["time"])

	// The tag view always enumerates the whole closed set.
	tags := stop["tag"].([]interface{})
	assert.Len(t, tags, len(models.ShuttleTags))
}

func TestShuttleQueryRejectsRouteAndTagTogether(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		shuttle(route: ["DHDD"], tag: ["DH"]) {
			params { period }
		}
	}`)

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "cannot be combined")
}

func TestShuttleQueryRejectsUnknownTag(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		shuttle(tag: ["XX"]) {
			params { period }
		}
	}`)

	require.NotEmpty(t, result.Errors)
}

func TestBusQuery(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		bus(routeStop: [{stop: 100, route: 10}]) {
			stopID
			stopName
			routeName
			startStopName
			timetable { weekday time }
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	items := data["bus"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, 100, item["stopID"])
	assert.Equal(t, "707-1", item["routeName"])
	assert.Equal(t, "안산종합버스터미널", item["startStopName"])

	// Monday: only the upcoming weekday departure remains.
	timetable := item["timetable"].([]interface{})
	require.Len(t, timetable, 1)
	entry := timetable[0].(map[string]interface{})
	assert.Equal(t, "weekdays", entry["weekday"])
	assert.Equal(t, "08:30:00", entry["time"])
}

func TestReadingRoomQuery(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		readingRoom(campusId: 2) {
			id
			name
			status { active }
			seats { available }
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	rooms := data["readingRoom"].([]interface{})
	require.Len(t, rooms, 1)
	room := rooms[0].(map[string]interface{})
	assert.Equal(t, "제1열람실", room["name"])
	seats := room["seats"].(map[string]interface{})
	assert.Equal(t, 180, seats["available"])
}

func TestCafeteriaQuery(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		cafeteria(campus: 2) {
			id
			name
			menu { date slot food price }
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	cafeterias := data["cafeteria"].([]interface{})
	require.Len(t, cafeterias, 1)
	cafeteria := cafeterias[0].(map[string]interface{})
	menu := cafeteria["menu"].([]interface{})
	require.Len(t, menu, 1)
	entry := menu[0].(map[string]interface{})
	assert.Equal(t, "2024-05-13", entry["date"])
	assert.Equal(t, "중식", entry["slot"])
}

func TestCommuteShuttleQuery(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(t, schema, `{
		commuteShuttle {
			routeName
			descriptionKorean
			timetable { stopName time }
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	routes := data["commuteShuttle"].([]interface{})
	require.Len(t, routes, 1)
	route := routes[0].(map[string]interface{})
	assert.Equal(t, "1", route["routeName"])
	timetable := route["timetable"].([]interface{})
	require.Len(t, timetable, 1)
	entry := timetable[0].(map[string]interface{})
	assert.Equal(t, "양재역", entry["stopName"])
	assert.Equal(t, "07:30:00", entry["time"])
}
