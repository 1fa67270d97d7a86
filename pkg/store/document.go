package store

import (
	"tableflip.dev/tempo/pkg/entry"
	"tableflip.dev/tempo/pkg/journal"
)

// Document is the persisted shape of one sheet. Chain links are never
// serialized; reconciliation rebuilds them from index order on load.
type Document struct {
	Logs          []LogRecord `json:"logs"`
	PreviousLogs  []LogRecord `json:"previous_logs"`
	BonusFormula  string      `json:"bonus_formula"`
	PlanTime      string      `json:"plan_time"`
	PreviousBonus string      `json:"previous_bonus"`

	ContinueAfterBreak bool   `json:"continue_after_break"`
	BreakTitle         string `json:"break_title"`
	Highlights         string `json:"highlights"`
}

// LogRecord is one persisted log item.
type LogRecord struct {
	Name                   string     `json:"name"`
	StartStr               string     `json:"start_str"`
	EndStr                 string     `json:"end_str"`
	Index                  int        `json:"index"`
	IsContinued            bool       `json:"is_continued"`
	ManuallySetUncontinued bool       `json:"manually_set_uncontinued"`
	Plan                   PlanRecord `json:"plan"`
}

// PlanRecord is the persisted two-stage budget.
type PlanRecord struct {
	FirstDuration string `json:"first_duration"`
	LastDuration  string `json:"last_duration"`
	IsMarked      bool   `json:"is_marked"`
	IsMarkSet     bool   `json:"is_mark_set"`
}

func toRecord(it *journal.Item) LogRecord {
	return LogRecord{
		Name:                   it.Name,
		StartStr:               it.Start.String(),
		EndStr:                 it.End.String(),
		Index:                  it.Index,
		IsContinued:            it.Continued,
		ManuallySetUncontinued: it.ManuallyUncontinued,
		Plan: PlanRecord{
			FirstDuration: it.Plan.FirstDuration,
			LastDuration:  it.Plan.LastDuration,
			IsMarked:      it.Plan.Marked,
			IsMarkSet:     it.Plan.MarkSet,
		},
	}
}

func fromRecord(r LogRecord, index int) *journal.Item {
	plan := &entry.Plan{
		FirstDuration: r.Plan.FirstDuration,
		LastDuration:  r.Plan.LastDuration,
		Marked:        r.Plan.IsMarked,
		MarkSet:       r.Plan.IsMarkSet,
	}
	return journal.NewItemWithPlan(r.Name, r.StartStr, r.EndStr, index, plan, r.IsContinued, r.ManuallySetUncontinued)
}

// MarshalJournal flattens a journal into its persisted document.
func MarshalJournal(j *journal.Journal) Document {
	doc := Document{
		Logs:               make([]LogRecord, 0, len(j.Items)),
		PreviousLogs:       make([]LogRecord, 0, len(j.Archive)),
		BonusFormula:       j.BonusFormula,
		PlanTime:           j.PlanTime,
		PreviousBonus:      j.PreviousBonus,
		ContinueAfterBreak: j.ContinueAfterBreak,
		BreakTitle:         j.BreakTitle,
		Highlights:         j.Highlights,
	}
	for _, it := range j.Items {
		doc.Logs = append(doc.Logs, toRecord(it))
	}
	for _, it := range j.Archive {
		doc.PreviousLogs = append(doc.PreviousLogs, toRecord(it))
	}
	return doc
}

// UnmarshalJournal rebuilds a journal from its persisted document and runs a
// reconciliation pass to restore chain links and plan sharing.
func UnmarshalJournal(doc Document) *journal.Journal {
	j := journal.New()
	if doc.BonusFormula != "" {
		j.BonusFormula = doc.BonusFormula
	}
	j.PlanTime = doc.PlanTime
	j.PreviousBonus = doc.PreviousBonus
	j.ContinueAfterBreak = doc.ContinueAfterBreak
	j.BreakTitle = doc.BreakTitle
	j.Highlights = doc.Highlights

	for i, r := range doc.Logs {
		j.Items = append(j.Items, fromRecord(r, i))
	}
	for i, r := range doc.PreviousLogs {
		j.Archive = append(j.Archive, fromRecord(r, i))
	}

	j.Reconcile()
	return j
}
