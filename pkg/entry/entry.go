// Package entry defines a single time-log record and the two-stage plan
// budget shared by a continuation chain.
package entry

import (
	"tableflip.dev/tempo/pkg/timeutil"
)

// Entry is one logged interval: an activity name and optional start and end
// times of day. Names are not unique; same-named entries may be linked into a
// continuation chain by the journal.
type Entry struct {
	Name  string         `json:"name"`
	Start timeutil.Clock `json:"start_str"`
	End   timeutil.Clock `json:"end_str"`
}

// Duration returns end minus start, or 0 when either side is unset. An
// interval that crosses midnight (end before start) gains a day.
func (e *Entry) Duration() timeutil.Seconds {
	if !e.Start.Set || !e.End.Set {
		return 0
	}
	d := e.End.Sub(e.Start)
	if d < 0 {
		d += 24 * 3600
	}
	return d
}
