package calendarutil

import (
	"sync"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// Korean national holidays. Solar entries are fixed month/day pairs; the
// lunar entries (Seollal, Buddha's Birthday, Chuseok) move through the
// solar calendar and are converted per year.

var solarHolidays = [][2]int{
	{1, 1},   // New Year's Day
	{3, 1},   // Independence Movement Day
	{5, 5},   // Children's Day
	{6, 6},   // Memorial Day
	{8, 15},  // Liberation Day
	{10, 3},  // National Foundation Day
	{10, 9},  // Hangul Day
	{12, 25}, // Christmas Day
}

var (
	holidayCacheMu sync.Mutex
	holidayCache   = map[int]map[string]struct{}{}
)

// IsNationalHoliday reports whether date is a Korean national holiday,
// including the lunar holidays and their adjacent days.
func IsNationalHoliday(date time.Time) bool {
	set := holidaysForYear(date.Year())
	_, ok := set[dateKey(date)]
	return ok
}

// LunarDateOf converts a solar date to its lunar month and day.
func LunarDateOf(date time.Time) (month, day int) {
	lunar := calendar.NewSolarFromYmd(date.Year(), int(date.Month()), date.Day()).GetLunar()
	month = lunar.GetMonth()
	if month < 0 {
		// Leap months carry a negative sign; the holiday tables only use
		// regular months.
		month = -month
	}
	return month, lunar.GetDay()
}

func holidaysForYear(year int) map[string]struct{} {
	holidayCacheMu.Lock()
	defer holidayCacheMu.Unlock()
	if set, ok := holidayCache[year]; ok {
		return set
	}

	set := make(map[string]struct{})
	for _, md := range solarHolidays {
		set[dateKey(time.Date(year, time.Month(md[0]), md[1], 0, 0, 0, 0, time.UTC))] = struct{}{}
	}
	// Seollal and Chuseok span the eve and the following day.
	addLunarSpan(set, year, 1, 1, -1, 1)
	addLunarSpan(set, year, 4, 8, 0, 0)
	addLunarSpan(set, year, 8, 15, -1, 1)

	holidayCache[year] = set
	return set
}

func addLunarSpan(set map[string]struct{}, year, lunarMonth, lunarDay, before, after int) {
	solar := calendar.NewLunarFromYmd(year, lunarMonth, lunarDay).GetSolar()
	base := time.Date(solar.GetYear(), time.Month(solar.GetMonth()), solar.GetDay(), 0, 0, 0, 0, time.UTC)
	for offset := before; offset <= after; offset++ {
		set[dateKey(base.AddDate(0, 0, offset))] = struct{}{}
	}
}
