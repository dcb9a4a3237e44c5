package activityio

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIntervalField accepts either a raw interval count ("96") or a
// wall-clock "HH:MM" and converts the latter to intervals of the given
// length, so activity CSVs can be authored in whichever form is more
// convenient for a given data source.
func parseIntervalField(field string, intervalMinutes int) (int, error) {
	field = strings.TrimSpace(field)
	if !strings.Contains(field, ":") {
		return strconv.Atoi(field)
	}
	mins, err := parseHHMM(field)
	if err != nil {
		return 0, err
	}
	if intervalMinutes <= 0 {
		return 0, fmt.Errorf("interval minutes must be > 0 to convert %q", field)
	}
	return mins / intervalMinutes, nil
}

func parseHHMM(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}
