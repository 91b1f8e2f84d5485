package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It backs the boundaries of a Schedule and is ordered by plain integer
// comparison.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded "HH:MM" string. The format is strict:
// exactly five characters with a two-digit hour and minute, so that the
// lexicographic order of formatted values equals their chronological order.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, errs.NewValueIsInvalidErrorWithCause("time of day",
			fmt.Errorf("%q is not in HH:MM format", s))
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, errs.NewValueIsInvalidErrorWithCause("time of day",
				fmt.Errorf("%q is not in HH:MM format", s))
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour >= hoursPerDay {
		return 0, errs.NewValueIsOutOfRangeError("hour", hour, 0, hoursPerDay-1)
	}
	if minute >= minutesPerHour {
		return 0, errs.NewValueIsOutOfRangeError("minute", minute, 0, minutesPerHour-1)
	}
	return TimeOfDay(hour*minutesPerHour + minute), nil
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/minutesPerHour, int(t)%minutesPerHour)
}

// Validate checks that the time lies within a single day.
func (t TimeOfDay) Validate() error {
	if t < 0 || int(t) >= hoursPerDay*minutesPerHour {
		return errs.NewValueIsOutOfRangeError("time of day", int(t), 0, hoursPerDay*minutesPerHour-1)
	}
	return nil
}
