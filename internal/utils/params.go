package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campusapi.hyuabot.app/internal/models"
)

// StringList parses a repeated or comma-separated query parameter into a
// list. Empty entries are dropped; a missing parameter yields nil.
func StringList(values url.Values, name string) []string {
	var result []string
	for _, raw := range values[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

// BoolList parses a repeated or comma-separated boolean query parameter.
func BoolList(values url.Values, name string) ([]bool, error) {
	var result []bool
	for _, part := range StringList(values, name) {
		b, err := strconv.ParseBool(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", name, part)
		}
		result = append(result, b)
	}
	return result, nil
}

// IntParam parses a required integer path or query value.
func IntParam(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return v, nil
}

// TimeOfDayParam parses an optional HH:MM[:SS] query parameter. A missing
// value yields nil.
func TimeOfDayParam(values url.Values, name string) (*models.TimeOfDay, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := models.ParseTimeOfDay(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return &t, nil
}

// DateParam parses an optional YYYY-MM-DD query parameter in loc. A missing
// value yields nil.
func DateParam(values url.Values, name string, loc *time.Location) (*time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return &d, nil
}

// BoolParam parses an optional boolean query parameter, returning fallback
// when missing.
func BoolParam(values url.Values, name string, fallback bool) (bool, error) {
	raw := values.Get(name)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return b, nil
}
