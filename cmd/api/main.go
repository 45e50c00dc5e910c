package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"campusapi.hyuabot.app/internal/app"
	"campusapi.hyuabot.app/internal/calendarutil"
	"campusapi.hyuabot.app/internal/config"
	"campusapi.hyuabot.app/internal/logging"
	"campusapi.hyuabot.app/internal/metrics"
	"campusapi.hyuabot.app/internal/repository"
	"campusapi.hyuabot.app/internal/restapi"
)

func main() {
	var cfg config.Config

	flag.IntVar(&cfg.Port, "port", 8000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.CalendarPath, "calendar", "", "Path to a service calendar YAML file")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	cfg.Calendar = config.DefaultCalendar()
	if cfg.CalendarPath != "" {
		calendar, err := config.LoadCalendar(cfg.CalendarPath)
		if err != nil {
			logging.LogError(logger, "failed to load calendar", err)
			os.Exit(1)
		}
		cfg.Calendar = calendar
	}

	location, err := cfg.Calendar.Location()
	if err != nil {
		logging.LogError(logger, "failed to resolve timezone", err)
		os.Exit(1)
	}
	overrides, err := cfg.Calendar.OverrideDates()
	if err != nil {
		logging.LogError(logger, "failed to parse workday overrides", err)
		os.Exit(1)
	}

	cfg.DatabaseDSN = config.DatabaseDSN()
	repo, err := repository.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		logging.LogError(logger, "failed to open database", err)
		os.Exit(1)
	}
	defer logging.SafeCloseWithLogging(repo, logger, "close database")

	application := &app.Application{
		Config:   cfg,
		Logger:   logger,
		Repo:     repo,
		Oracle:   calendarutil.New(repo, overrides),
		Metrics:  metrics.NewCollector(),
		Location: location,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "timezone", cfg.Calendar.Timezone)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
