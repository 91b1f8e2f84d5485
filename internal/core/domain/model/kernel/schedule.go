package kernel

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrScheduleIsNotConstructed is returned when using a zero-value Schedule.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")
)

// TimeWindow is a single availability interval within a day.
// Windows are only produced by Schedule, which guarantees start <= end.
type TimeWindow struct {
	start TimeOfDay
	end   TimeOfDay
}

// Start returns the opening boundary of the window.
func (w TimeWindow) Start() TimeOfDay {
	return w.start
}

// End returns the closing boundary of the window.
func (w TimeWindow) End() TimeOfDay {
	return w.end
}

// overlaps reports whether two windows intersect. Boundary touching counts
// as intersection: a window ending at 12:00 overlaps one starting at 12:00.
func (w TimeWindow) overlaps(other TimeWindow) bool {
	return (w.start <= other.start && other.start <= w.end) ||
		(w.start <= other.end && other.end <= w.end) ||
		(other.start <= w.start && w.end <= other.end)
}

// Schedule is an ordered set of non-overlapping time windows representing
// courier availability or an order's delivery hours.
//
// A schedule is always derived from a flat list of boundary times: the
// boundaries of every input range are collected, sorted ascending, and paired
// consecutively (1st with 2nd, 3rd with 4th, ...). The window set is therefore
// NOT one window per input string. For sorted, non-overlapping input the
// derivation is the identity; for overlapping or out-of-order input the
// pairing is re-derived. This mirrors how hours are persisted (a flat bag of
// boundary timestamps) and must be preserved for compatibility with existing
// data.
type Schedule struct {
	windows []TimeWindow

	guard guard.ConstructorGuard
}

// NewSchedule builds a schedule from "HH:MM-HH:MM" range strings.
// Each string contributes exactly two boundaries; malformed strings fail fast.
// An empty input yields a valid empty schedule that overlaps nothing.
func NewSchedule(ranges []string) (Schedule, error) {
	boundaries := make([]TimeOfDay, 0, len(ranges)*2)

	for _, rng := range ranges {
		parts := strings.Split(rng, "-")
		if len(parts) != 2 {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause("hours",
				fmt.Errorf("%q is not in HH:MM-HH:MM format", rng))
		}

		for _, part := range parts {
			boundary, err := ParseTimeOfDay(part)
			if err != nil {
				return Schedule{}, err
			}
			boundaries = append(boundaries, boundary)
		}
	}

	return scheduleFromBoundaries(boundaries), nil
}

// RestoreSchedule rebuilds a schedule from persisted boundary times.
// The boundary count must be even; an odd count means the stored data is
// corrupt and restoring fails rather than guessing a pairing.
func RestoreSchedule(boundaries []TimeOfDay) (Schedule, error) {
	if len(boundaries)%2 != 0 {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("odd boundary count %d cannot be paired into windows", len(boundaries)))
	}

	for _, b := range boundaries {
		if err := b.Validate(); err != nil {
			return Schedule{}, err
		}
	}

	return scheduleFromBoundaries(slices.Clone(boundaries)), nil
}

// scheduleFromBoundaries applies the sort-then-pair derivation.
// The caller guarantees an even boundary count.
func scheduleFromBoundaries(boundaries []TimeOfDay) Schedule {
	slices.Sort(boundaries)

	windows := make([]TimeWindow, 0, len(boundaries)/2)
	for i := 0; i+1 < len(boundaries); i += 2 {
		windows = append(windows, TimeWindow{start: boundaries[i], end: boundaries[i+1]})
	}

	return Schedule{
		windows: windows,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the schedule was created via a constructor.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// Windows returns the derived window set in ascending order.
func (s Schedule) Windows() []TimeWindow {
	return slices.Clone(s.windows)
}

// Boundaries returns the flattened, sorted boundary times.
// This is the persistence representation of the schedule.
func (s Schedule) Boundaries() []TimeOfDay {
	boundaries := make([]TimeOfDay, 0, len(s.windows)*2)
	for _, w := range s.windows {
		boundaries = append(boundaries, w.start, w.end)
	}
	return boundaries
}

// IsEmpty reports whether the schedule has no windows.
func (s Schedule) IsEmpty() bool {
	return len(s.windows) == 0
}

// Overlaps reports whether any window of s intersects any window of other.
// Boundary touching counts as overlap. Window counts are small, so the
// pairwise O(n*m) comparison is fine.
func (s Schedule) Overlaps(other Schedule) bool {
	for _, a := range s.windows {
		for _, b := range other.windows {
			if a.overlaps(b) {
				return true
			}
		}
	}
	return false
}

// IsEqual reports whether two schedules derive the same window set.
func (s Schedule) IsEqual(other Schedule) bool {
	return slices.Equal(s.windows, other.windows)
}

// Strings formats the schedule back into "HH:MM-HH:MM" range strings.
// It is the inverse of NewSchedule only when the original input was already
// sorted and non-overlapping.
func (s Schedule) Strings() []string {
	formatted := make([]string, 0, len(s.windows)*2)
	for _, b := range s.Boundaries() {
		formatted = append(formatted, b.String())
	}
	// Zero-padded HH:MM sorts the same lexicographically as chronologically.
	slices.Sort(formatted)

	ranges := make([]string, 0, len(formatted)/2)
	for i := 0; i+1 < len(formatted); i += 2 {
		ranges = append(ranges, formatted[i]+"-"+formatted[i+1])
	}
	return ranges
}
