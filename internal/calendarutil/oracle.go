// Package calendarutil resolves the service calendar: weekend/holiday
// state, the active semester/vacation period, and special holiday status.
// All lookups default to normal service when no matching row exists.
package calendarutil

import (
	"context"
	"time"

	"campusapi.hyuabot.app/internal/models"
)

// Period type labels stored on shuttle timetable rows.
const (
	PeriodSemester        = "semester"
	PeriodVacation        = "vacation"
	PeriodVacationSession = "vacation_session"
)

// Holiday statuses. Halt suspends shuttle service entirely for the day.
const (
	HolidayNormal = "normal"
	HolidayHalt   = "halt"
)

// DataSource is the slice of the storage contract the oracle consumes.
// Rows come back unfiltered; containment and date-equivalence matching
// happen here.
type DataSource interface {
	Periods(ctx context.Context) ([]models.Period, error)
	Holidays(ctx context.Context) ([]models.Holiday, error)
}

type Oracle struct {
	src DataSource

	// Dates that are nominally national holidays but run a normal
	// weekday service (e.g. a make-up class day).
	workdayOverrides map[string]struct{}
}

func New(src DataSource, workdayOverrides []time.Time) *Oracle {
	overrides := make(map[string]struct{}, len(workdayOverrides))
	for _, d := range workdayOverrides {
		overrides[dateKey(d)] = struct{}{}
	}
	return &Oracle{src: src, workdayOverrides: overrides}
}

func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// IsNonServiceDay reports whether date runs the weekend timetable:
// Saturday, Sunday or a national holiday, unless the date is overridden
// to a normal service day.
func (o *Oracle) IsNonServiceDay(date time.Time) bool {
	if _, ok := o.workdayOverrides[dateKey(date)]; ok {
		return false
	}
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return true
	}
	return IsNationalHoliday(date)
}

// CurrentPeriod returns the label of the period whose range contains now.
// When no row matches it falls back to the semester timetable. Overlapping
// ranges resolve to the first row in storage order.
func (o *Oracle) CurrentPeriod(ctx context.Context, now time.Time) (string, error) {
	periods, err := o.src.Periods(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range periods {
		if !now.Before(p.Start) && !now.After(p.End) {
			return p.Type, nil
		}
	}
	return PeriodSemester, nil
}

// HolidayStatus resolves the holiday type for date, matching rows either
// on the solar calendar date or on the lunar-calendar equivalent of date.
func (o *Oracle) HolidayStatus(ctx context.Context, date time.Time) (string, error) {
	rows, err := o.src.Holidays(ctx)
	if err != nil {
		return "", err
	}
	lunarMonth, lunarDay := LunarDateOf(date)
	for _, row := range rows {
		switch row.Calendar {
		case models.CalendarLunar:
			if int(row.Date.Month()) == lunarMonth && row.Date.Day() == lunarDay {
				return row.Type, nil
			}
		default:
			if sameDate(row.Date, date) {
				return row.Type, nil
			}
		}
	}
	return HolidayNormal, nil
}

// WeekdayName maps date onto the textual weekday scheme used by bus and
// subway timetables. Holidays run the sunday timetable.
func (o *Oracle) WeekdayName(date time.Time) string {
	switch {
	case date.Weekday() == time.Saturday:
		return models.WeekdayNameSaturday
	case date.Weekday() == time.Sunday || IsNationalHoliday(date):
		return models.WeekdayNameSunday
	default:
		return models.WeekdayNameWeekdays
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
