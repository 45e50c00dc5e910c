package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all the settings the server needs to run. Port and Env come
// from command-line flags, the database DSN from the environment, and the
// service calendar from an optional YAML file.
type Config struct {
	Port         int
	Env          string
	DatabaseDSN  string
	CalendarPath string
	Calendar     Calendar
}

// Calendar configures the holiday/period oracle: the timezone all
// time-of-day comparisons happen in, and dates that are nominally national
// holidays but must be treated as normal service days.
type Calendar struct {
	Timezone         string   `yaml:"timezone" validate:"required"`
	WorkdayOverrides []string `yaml:"workday_overrides" validate:"dive,datetime=2006-01-02"`
}

// DefaultCalendar is used when no calendar file is configured.
func DefaultCalendar() Calendar {
	return Calendar{Timezone: "Asia/Seoul"}
}

// LoadCalendar reads and validates a calendar YAML file.
func LoadCalendar(path string) (Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Calendar{}, fmt.Errorf("read calendar file: %w", err)
	}

	var cal Calendar
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return Calendar{}, fmt.Errorf("parse calendar file: %w", err)
	}

	if err := validator.New().Struct(cal); err != nil {
		return Calendar{}, fmt.Errorf("validate calendar file: %w", err)
	}
	return cal, nil
}

// Location resolves the configured timezone.
func (c Calendar) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// OverrideDates parses the workday override list in the configured timezone.
func (c Calendar) OverrideDates() ([]time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(c.WorkdayOverrides))
	for _, raw := range c.WorkdayOverrides {
		d, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return nil, fmt.Errorf("parse workday override %q: %w", raw, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// DatabaseDSN builds a Postgres DSN from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence.
func DatabaseDSN() string {
	_ = godotenv.Load()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	name := envOr("DB_NAME", "campusapi")
	sslMode := envOr("DB_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, name, sslMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
