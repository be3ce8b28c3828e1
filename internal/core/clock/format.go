package clock

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

const secondsPerDay = 86400

// renderRemaining assembles the display string for a remaining-seconds value.
// The format is split into %-prefixed clauses; the days clause is rendered
// separately because the strftime pass cannot represent spans above 24 hours,
// and every other clause is handed to strftime with the remaining seconds
// reinterpreted as a UTC offset since the epoch.
func renderRemaining(format string, remaining float64, hideZeroUnits, roundUp bool) string {
	segments := strings.Split(format, "%")
	prefix := segments[0]
	clauses := segments[1:]

	days := int(remaining) / secondsPerDay
	last := lastClause(clauses)

	dayText := ""
	kept := make([]string, 0, len(clauses))
	for _, segment := range clauses {
		if segment == "" {
			continue
		}
		switch unitLetter(segment) {
		case 'd':
			if !(hideZeroUnits && days == 0) {
				dayText = strconv.Itoa(days) + segment[1:]
			}
			continue
		case 'h':
			if hideZeroUnits && remaining < 3600 && unitLetter(last) != 'h' {
				continue
			}
		case 'm':
			if hideZeroUnits && remaining < 60 && unitLetter(last) != 'h' && unitLetter(last) != 'm' {
				continue
			}
		}
		kept = append(kept, segment)
	}

	// Display rounding only; the caller still sees the exact remaining value.
	rounded := remaining
	if roundUp && len(kept) > 0 {
		rounded += roundConstant(unitLetter(kept[len(kept)-1]))
	}

	body := ""
	if len(kept) > 0 {
		stamp := time.Unix(int64(rounded), 0).UTC()
		body = strftime.Format("%"+strings.Join(kept, "%"), stamp)
	}
	return prefix + dayText + body
}

// roundConstant is the seconds added when rounding up, keyed by the smallest
// unit still displayed.
func roundConstant(unit byte) float64 {
	switch unit {
	case 'd':
		return secondsPerDay
	case 'h':
		return 3600
	case 'm':
		return 60
	case 's':
		return 1
	}
	return 0
}

func lastClause(clauses []string) string {
	for position := len(clauses) - 1; position >= 0; position-- {
		if clauses[position] != "" {
			return clauses[position]
		}
	}
	return ""
}

// unitLetter reports the lowercased placeholder letter that opens a clause.
func unitLetter(clause string) byte {
	if clause == "" {
		return 0
	}
	letter := clause[0]
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}
