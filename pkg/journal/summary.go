package journal

import (
	"tableflip.dev/tempo/pkg/entry"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Summary buckets chain durations by mark state. Totals accumulate effective
// durations; Plus and Minus split the remaining last-stage budget by sign.
type Summary struct {
	MarkedTotal timeutil.Seconds
	MarkedPlus  timeutil.Seconds
	MarkedMinus timeutil.Seconds

	NotMarkedTotal timeutil.Seconds
	NotMarkedPlus  timeutil.Seconds
	NotMarkedMinus timeutil.Seconds
}

// Vars exposes the summary as the bonus formula's variable set.
func (s Summary) Vars(planTime, previousBonus timeutil.Seconds) map[string]float64 {
	return map[string]float64{
		"plan_time":        float64(planTime),
		"previous_bonus":   float64(previousBonus),
		"marked_plus":      float64(s.MarkedPlus),
		"marked_minus":     float64(s.MarkedMinus),
		"marked_total":     float64(s.MarkedTotal),
		"not_marked_plus":  float64(s.NotMarkedPlus),
		"not_marked_minus": float64(s.NotMarkedMinus),
		"not_marked_total": float64(s.NotMarkedTotal),
	}
}

// Summarize walks each distinct chain exactly once and buckets it by mark
// state. Chains are deduplicated by plan identity, not entry identity, and
// counted through their tail so the whole chain contributes once.
func (j *Journal) Summarize() Summary {
	var s Summary

	seen := make(map[*entry.Plan]bool)
	for i, it := range j.Items {
		if seen[it.Plan] {
			continue
		}
		seen[it.Plan] = true

		tail := j.Tail(i)
		total := j.TotalDuration(tail)
		effective := j.EffectiveDuration(tail)

		diff := timeutil.Seconds(0)
		if last, ok := it.Plan.Last(); ok {
			diff = last - total
		}

		if it.Plan.Marked {
			if diff >= 0 {
				s.MarkedPlus += diff
			} else {
				s.MarkedMinus += diff
			}
			s.MarkedTotal += effective
		} else {
			if diff >= 0 {
				s.NotMarkedPlus += diff
			} else {
				s.NotMarkedMinus += diff
			}
			s.NotMarkedTotal += effective
		}
	}
	return s
}

// Merged is a by-name rollup of chain durations for the sheet listing.
type Merged struct {
	Name     string
	Duration timeutil.Seconds
}

// MergeByName sums entry durations per activity name, preserving first-seen
// order.
func (j *Journal) MergeByName() []Merged {
	order := make([]string, 0, len(j.Items))
	totals := make(map[string]timeutil.Seconds)
	for _, it := range j.Items {
		if _, ok := totals[it.Name]; !ok {
			order = append(order, it.Name)
		}
		totals[it.Name] += it.Duration()
	}
	out := make([]Merged, len(order))
	for i, name := range order {
		out[i] = Merged{Name: name, Duration: totals[name]}
	}
	return out
}
