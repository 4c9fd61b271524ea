// Package timeofday handles the HH:MM wall-clock values used by slot
// templates. Keeping them as minutes since midnight makes interval and
// rollover arithmetic exact.
package timeofday

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight
type TimeOfDay int

// Parse converts an "HH:MM" 24-hour string into a TimeOfDay
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// Add advances the time by the given number of minutes, rolling minute
// overflow into the hour.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Before reports whether t is strictly before other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is strictly after other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String formats the time back to "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
