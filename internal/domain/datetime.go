package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	todayPrefix      = "today@"
	customMinuteForm = "2006-01-02T15:04"
	customSecondForm = "2006-01-02T15:04:05"
)

// ParseCustomDatetime parses a user-supplied record time.
//
// Accepted forms:
//   - today@HH:MM (current date at the given time)
//   - YYYY-MM-DDTHH:MM
//   - YYYY-MM-DDTHH:MM:SS
func ParseCustomDatetime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	if clock, ok := strings.CutPrefix(input, todayPrefix); ok {
		input = now.Format("2006-01-02") + "T" + clock
	}

	var layout string
	switch len(input) {
	case len(customMinuteForm):
		layout = customMinuteForm
	case len(customSecondForm):
		layout = customSecondForm
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCustomDatetime, input)
	}

	at, err := time.ParseInLocation(layout, input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidCustomDatetime, input, err)
	}
	return at, nil
}
