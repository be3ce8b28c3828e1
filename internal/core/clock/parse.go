package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDurationSpec converts a duration preference into seconds. The spec is
// either a bare number of minutes, or a colon-separated H:M:S string. Excess
// colon-separated fields are discarded from the left; empty fields count as
// zero.
func ParseDurationSpec(spec string) (float64, error) {
	fields := strings.Split(spec, ":")
	if len(fields) > 3 {
		fields = fields[len(fields)-3:]
	}

	if len(fields) == 1 {
		text := strings.TrimSpace(fields[0])
		if text == "" {
			return 0, nil
		}
		minutes, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("parse duration %q: %w", spec, err)
		}
		return minutes * 60, nil
	}

	var seconds float64
	unit := 1.0
	for position := len(fields) - 1; position >= 0; position-- {
		field := strings.TrimSpace(fields[position])
		if field != "" {
			value, err := strconv.Atoi(field)
			if err != nil {
				return 0, fmt.Errorf("parse duration %q: %w", spec, err)
			}
			seconds += float64(value) * unit
		}
		unit *= 60
	}
	return seconds, nil
}

// ParseTarget resolves a date preference (TODAY, TOMORROW or M/D/Y) and a
// time preference (H[:M[:S]], optional am/pm suffix) into an absolute
// timestamp in now's location.
func ParseTarget(dateSpec, timeSpec string, now time.Time) (time.Time, error) {
	hour, minute, second, err := parseClockTime(timeSpec)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day, err := parseDate(dateSpec, now)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, hour, minute, second, 0, now.Location()), nil
}

func parseClockTime(spec string) (hour, minute, second int, err error) {
	text := strings.ToLower(strings.TrimSpace(spec))

	isPM := false
	hasSuffix := false
	if at := strings.Index(text, "am"); at >= 0 {
		text = text[:at]
		hasSuffix = true
	} else if at := strings.Index(text, "pm"); at >= 0 {
		text = text[:at]
		isPM = true
		hasSuffix = true
	}

	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) > 3 {
		return 0, 0, 0, fmt.Errorf("parse time %q: too many fields", spec)
	}

	var parts [3]int
	for position, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts[position], err = strconv.Atoi(field)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parse time %q: %w", spec, err)
		}
	}
	hour, minute, second = parts[0], parts[1], parts[2]

	if isPM && hour < 12 {
		hour += 12
	}
	if hasSuffix && !isPM && hour == 12 {
		hour = 0
	}
	// Clamp instead of reject: carried over from the original behavior for
	// 24-hour input, suspect but kept.
	if !hasSuffix && hour > 23 {
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, 0, 0, fmt.Errorf("parse time %q: out of range", spec)
	}
	return hour, minute, second, nil
}

func parseDate(spec string, now time.Time) (year int, month time.Month, day int, err error) {
	switch strings.ToUpper(strings.TrimSpace(spec)) {
	case "TODAY":
		return now.Year(), now.Month(), now.Day(), nil
	case "TOMORROW":
		next := now.AddDate(0, 0, 1)
		return next.Year(), next.Month(), next.Day(), nil
	}

	fields := strings.Split(strings.TrimSpace(spec), "/")
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("parse date %q: want M/D/Y", spec)
	}

	var parts [3]int
	for position, field := range fields {
		parts[position], err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parse date %q: %w", spec, err)
		}
	}
	if parts[0] < 1 || parts[0] > 12 || parts[1] < 1 || parts[1] > 31 {
		return 0, 0, 0, fmt.Errorf("parse date %q: out of range", spec)
	}
	return parts[2], time.Month(parts[0]), parts[1], nil
}
