package entry

import "tableflip.dev/tempo/pkg/timeutil"

// Plan is the two-stage time budget for one continuation chain. Every entry
// in a chain holds the same *Plan, so an edit through any member is visible
// to all of them. FirstDuration and LastDuration are kept as entered; an
// unparseable or empty field simply means "no budget at that stage".
//
// MarkSet records that a user explicitly touched Marked; it suppresses the
// automatic mark inheritance performed during reconciliation.
type Plan struct {
	FirstDuration string `json:"first_duration"`
	LastDuration  string `json:"last_duration"`
	Marked        bool   `json:"is_marked"`
	MarkSet       bool   `json:"is_mark_set"`
}

// First parses the first-stage budget.
func (p *Plan) First() (timeutil.Seconds, bool) {
	return timeutil.ParseDuration(p.FirstDuration)
}

// Last parses the last-stage budget.
func (p *Plan) Last() (timeutil.Seconds, bool) {
	return timeutil.ParseDuration(p.LastDuration)
}

// Clone returns an independent copy.
func (p *Plan) Clone() *Plan {
	cp := *p
	return &cp
}
