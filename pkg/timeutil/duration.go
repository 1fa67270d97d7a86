// Package timeutil parses and formats the compact duration and clock
// notation used throughout tempo ("2h30m", "-1h", "14:05").
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Seconds is a signed duration with second precision.
type Seconds int64

const (
	day    Seconds = 86400
	hour   Seconds = 3600
	minute Seconds = 60
)

// ParseDuration parses a duration string such as "2h30m" or "1d2h". Components
// are stripped in d, h, m order; a trailing bare numeral is read as minutes.
// An optional leading "-" negates the whole value. The second return is false
// when nothing parsed; "0" parses to zero. A malformed numeric component fails
// the whole parse rather than yielding a partial value.
func ParseDuration(s string) (Seconds, bool) {
	sign := Seconds(1)
	rest := s
	if strings.HasPrefix(rest, "-") {
		sign = -1
		rest = rest[1:]
	}

	var total Seconds
	seen := false

	for _, unit := range []struct {
		suffix string
		scale  Seconds
	}{
		{"d", day},
		{"h", hour},
		{"m", minute},
	} {
		head, tail, found := strings.Cut(rest, unit.suffix)
		if !found {
			continue
		}
		n, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return 0, false
		}
		total += Seconds(n * float64(unit.scale))
		seen = true
		rest = tail
	}

	if rest != "" {
		// Trailing numeral with no unit suffix, read as minutes.
		n, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false
		}
		total += Seconds(n * float64(minute))
		seen = true
	}

	if !seen {
		return 0, false
	}
	return sign * total, true
}

// FormatDuration renders seconds in the compact d/h/m notation, omitting
// leading zero components. Negative values are formatted from the absolute
// value with a "-" prefix. Sub-minute precision is truncated.
func FormatDuration(s Seconds) string {
	if s < 0 {
		return "-" + FormatDuration(-s)
	}

	d := s / day
	h := (s % day) / hour
	m := (s % hour) / minute

	switch {
	case d != 0:
		return fmt.Sprintf("%dd%dh%dm", d, h, m)
	case h != 0:
		return fmt.Sprintf("%dh%dm", h, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
