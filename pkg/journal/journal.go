package journal

import (
	"fmt"

	"tableflip.dev/tempo/pkg/timeutil"
)

// MaxArchive bounds the previous-session archive kept by Clear.
const MaxArchive = 500

// DefaultFormula is the stock bonus formula restored by `tempo formula
// --default` and used when a sheet has none.
const DefaultFormula = "not_marked_total - plan_time + previous_bonus * 0.5 + not_marked_plus * 0.5"

// DefaultBreakTitle names break entries when the sheet has no configured
// break title.
const DefaultBreakTitle = "break"

// Journal is one sheet of log items plus the sheet-level planning state that
// is persisted alongside it. All mutation is single-threaded; callers edit
// items, then run Reconcile before reading any derived value.
type Journal struct {
	Items []*Item

	// Archive holds cleared items from previous sessions, most recent first,
	// bounded by MaxArchive. It feeds mark inheritance for fresh entries.
	Archive []*Item

	BonusFormula  string
	PlanTime      string
	PreviousBonus string

	ContinueAfterBreak bool
	BreakTitle         string
	Highlights         string

	undo [][]*Item
	redo [][]*Item
}

// New returns an empty journal with the default bonus formula.
func New() *Journal {
	return &Journal{BonusFormula: DefaultFormula}
}

// Append adds a fresh unlinked item at the end of the sheet and returns it.
// The caller is responsible for reconciling afterwards.
func (j *Journal) Append(name, startStr, endStr string) *Item {
	it := NewItem(name, startStr, endStr, len(j.Items))
	j.Items = append(j.Items, it)
	return it
}

// Reconcile rebuilds every chain link and plan assignment from the flat item
// list. It is a single left-to-right pass: each item only ever links after a
// same-named predecessor, so chains follow list order and cycles cannot form.
// The pass is idempotent and must run after every single-field edit.
//
// Name matching is case-sensitive exact match.
func (j *Journal) Reconcile() {
	for i, it := range j.Items {
		it.Index = i
		it.clearLinks()

		p := j.lastSameName(it.Name, i)

		if p != nil && !it.ManuallyUncontinued {
			j.splice(it, p)
			if it.Plan != p.Plan {
				// Adopt the chain's shared plan. The item's own plan stays
				// reachable through backup for when it leaves the chain.
				it.Plan = p.Plan
			}
			continue
		}

		it.Continued = false
		marked := it.Plan.Marked
		markSet := it.Plan.MarkSet
		it.Plan = it.backup
		it.Plan.Marked = marked
		it.Plan.MarkSet = markSet

		if !it.Plan.MarkSet {
			if p != nil {
				it.Plan.Marked = p.Plan.Marked
			} else if a := j.lastArchived(it.Name); a != nil {
				it.Plan.Marked = a.Plan.Marked
			}
		}
	}
}

// lastSameName returns the most recent item before position i with the given
// name, or nil.
func (j *Journal) lastSameName(name string, i int) *Item {
	for k := i - 1; k >= 0; k-- {
		if j.Items[k].Name == name {
			return j.Items[k]
		}
	}
	return nil
}

// lastArchived returns the most recent archived item with the given name.
// The archive is stored most recent first.
func (j *Journal) lastArchived(name string) *Item {
	for _, a := range j.Archive {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// splice links it into the chain directly after p.
func (j *Journal) splice(it, p *Item) {
	it.Continued = true

	nextIdx := p.next
	it.prev = p.Index
	it.next = nextIdx

	p.next = it.Index
	if nextIdx != noLink {
		j.Items[nextIdx].prev = it.Index
	}
}

// Tail returns the index of the last item in the chain containing i. It
// panics on impossible topology rather than returning a corrupted chain.
func (j *Journal) Tail(i int) int {
	steps := 0
	for j.Items[i].next != noLink {
		i = j.Items[i].next
		steps++
		if steps > len(j.Items) {
			panic(fmt.Sprintf("journal: chain cycle detected at item %d", i))
		}
	}
	return i
}

// TotalDuration returns the summed duration of the chain prefix ending at i:
// the item's own duration plus everything reachable through previous links.
// The tail's total is the whole chain's duration.
func (j *Journal) TotalDuration(i int) timeutil.Seconds {
	total := timeutil.Seconds(0)
	steps := 0
	for i != noLink {
		total += j.Items[i].Duration()
		i = j.Items[i].prev
		steps++
		if steps > len(j.Items) {
			panic(fmt.Sprintf("journal: chain cycle detected at item %d", i))
		}
	}
	return total
}

// EffectiveDuration returns the chain's budget-aware duration: the declared
// last-stage budget when it parses, otherwise the actual elapsed chain total.
func (j *Journal) EffectiveDuration(i int) timeutil.Seconds {
	it := j.Items[i]
	if last, ok := it.Plan.Last(); ok {
		return last
	}
	return j.TotalDuration(j.Tail(i))
}

// Diffs carries the remaining first- and last-stage budget for a chain.
// Either side is absent when its plan field does not parse or the chain tail
// is missing a start or end time.
type Diffs struct {
	First, Last     timeutil.Seconds
	FirstOK, LastOK bool
}

// TimeDiffs reports how far the chain containing i is from its two budget
// stages: budget minus the tail's total duration.
func (j *Journal) TimeDiffs(i int) Diffs {
	it := j.Items[i]
	tail := j.Items[j.Tail(i)]
	total := j.TotalDuration(tail.Index)

	timesSet := tail.Start.Set && tail.End.Set

	var d Diffs
	if first, ok := it.Plan.First(); ok && timesSet {
		d.First = first - total
		d.FirstOK = true
	}
	if last, ok := it.Plan.Last(); ok && timesSet {
		d.Last = last - total
		d.LastOK = true
	}
	return d
}

// SetName renames the item at i.
func (j *Journal) SetName(i int, name string) {
	j.Items[i].Name = name
}

// SetStart sets the item's start from an "HH:MM" string; anything else
// clears it.
func (j *Journal) SetStart(i int, s string) {
	c, _ := timeutil.ParseClock(s)
	j.Items[i].Start = c
}

// SetEnd sets the item's end from an "HH:MM" string; anything else clears it.
func (j *Journal) SetEnd(i int, s string) {
	c, _ := timeutil.ParseClock(s)
	j.Items[i].End = c
}

// SetMarked records an explicit user mark on the item's plan.
func (j *Journal) SetMarked(i int, marked bool) {
	j.Items[i].Plan.Marked = marked
	j.Items[i].Plan.MarkSet = true
}

// SetContinued records the user's continuation choice. Unchecking is sticky:
// it suppresses auto-linking until the box is checked again.
func (j *Journal) SetContinued(i int, continued bool) {
	j.Items[i].Continued = continued
	j.Items[i].ManuallyUncontinued = !continued
}

// RemoveMarks clears the mark on every plan in the sheet.
func (j *Journal) RemoveMarks() {
	for _, it := range j.Items {
		it.Plan.Marked = false
		it.backup.Marked = false
	}
}

// Break splits the current activity: it closes the gap since the last item's
// end with a break entry ending now, then reopens the interrupted activity
// with an empty end. Whether the reopened entry continues its chain follows
// ContinueAfterBreak. No-op on an empty sheet.
func (j *Journal) Break(now timeutil.Clock) {
	if len(j.Items) == 0 {
		return
	}
	last := j.Items[len(j.Items)-1]

	title := j.BreakTitle
	if title == "" {
		title = DefaultBreakTitle
	}

	brk := j.Append(title, "", "")
	brk.Start = last.End
	brk.End = now

	cont := j.Append(last.Name, "", "")
	cont.Start = now
	cont.ManuallyUncontinued = !j.ContinueAfterBreak
}

// Clear archives the whole sheet into the bounded previous-session archive,
// most recent first, then empties it.
func (j *Journal) Clear() {
	archived := make([]*Item, 0, len(j.Items)+len(j.Archive))
	for i := len(j.Items) - 1; i >= 0; i-- {
		archived = append(archived, j.Items[i].clone())
	}
	archived = append(archived, j.Archive...)
	if len(archived) > MaxArchive {
		archived = archived[:MaxArchive]
	}
	j.Archive = archived
	j.Items = nil
}
