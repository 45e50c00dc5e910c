package app

import (
	"log/slog"
	"time"

	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/config"
	"campusapi.hyuabot.app/internal/metrics"
	"campusapi.hyuabot.app/internal/repository"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  config.Config
	Logger  *slog.Logger
	Repo    repository.Repository
	Oracle  *calendarutil.Oracle
	Metrics *metrics.Collector

	// Location is the service timezone; every request captures its
	// reference instant in this location.
	Location *time.Location

	// NowFunc overrides the clock in tests. Nil means the real clock.
	NowFunc func() time.Time
}

// Now returns the reference instant for one request in the service
// timezone. Handlers call it once at the start of handling.
func (a *Application) Now() time.Time {
	if a.NowFunc != nil {
		return a.NowFunc()
	}
	if a.Location == nil {
		return time.Now()
	}
	return time.Now().In(a.Location)
}
