package timeutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// Clock is an optional time of day with minute precision. The zero value is
// "not set" and renders as the empty string.
type Clock struct {
	Minutes int
	Set     bool
}

// NewClock builds a set Clock from an hour and minute.
func NewClock(hour, min int) Clock {
	return Clock{Minutes: hour*60 + min, Set: true}
}

// Now returns the current wall-clock time of day.
func Now() Clock {
	t := time.Now()
	return NewClock(t.Hour(), t.Minute())
}

// ParseClock parses a strict 24-hour "HH:MM" string. Any other shape, the
// empty string included, returns an unset Clock with ok false.
func ParseClock(s string) (Clock, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, false
	}
	return NewClock(t.Hour(), t.Minute()), true
}

// String renders "HH:MM", or "" when the clock is not set.
func (c Clock) String() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Minutes/60, c.Minutes%60)
}

// Sub returns the signed difference c-other in seconds, ignoring dates.
func (c Clock) Sub(other Clock) Seconds {
	return Seconds(c.Minutes-other.Minutes) * minute
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "HH:MM" or any other string; unparseable input leaves
// the clock unset rather than erroring, so corrupt fields degrade to empty.
func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, ok := ParseClock(s)
	if !ok {
		*c = Clock{}
		return nil
	}
	*c = parsed
	return nil
}
