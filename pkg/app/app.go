// Package app provides high-level operations on a log sheet. It wraps
// persistence and the journal's reconcile/summarize/save pipeline so the CLI
// and the TUI can share logic.
package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/formula"
	"tableflip.dev/tempo/pkg/journal"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Service binds one named sheet to its persistence. Mutating methods follow
// the controller cycle: edit, reconcile, save.
type Service struct {
	Persistence store.Persistence
	Sheet       string

	j *journal.Journal
}

var errNoPersistence = errors.New("app: no persistence configured")

// Journal returns the loaded sheet, reading it from storage on first use.
func (s *Service) Journal() *journal.Journal {
	if s.j == nil {
		if s.Persistence != nil {
			s.j = s.Persistence.LoadSheet(s.Sheet)
		} else {
			s.j = journal.New()
		}
	}
	return s.j
}

// Commit reconciles the sheet and writes it out. Derived values are only
// valid after a commit (or an explicit Reconcile).
func (s *Service) Commit() error {
	j := s.Journal()
	j.Reconcile()
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := s.Persistence.SaveSheet(s.Sheet, j); err != nil {
		return fmt.Errorf("app: save sheet %q: %w", s.Sheet, err)
	}
	return nil
}

// Snapshot registers an undo point for the next mutation.
func (s *Service) Snapshot() {
	s.Journal().RegisterUndo()
}

// Append adds a new item and commits.
func (s *Service) Append(name, startStr, endStr string) error {
	s.Snapshot()
	s.Journal().Append(name, startStr, endStr)
	return s.Commit()
}

// Break splits the current activity around a break ending now.
func (s *Service) Break(now timeutil.Clock) error {
	j := s.Journal()
	if len(j.Items) == 0 {
		return errors.New("app: nothing to break, the sheet is empty")
	}
	s.Snapshot()
	j.Break(now)
	return s.Commit()
}

// Clear archives the sheet into the previous-session buffer.
func (s *Service) Clear() error {
	s.Snapshot()
	s.Journal().Clear()
	return s.Commit()
}

// RemoveMarks unmarks every plan on the sheet.
func (s *Service) RemoveMarks() error {
	s.Snapshot()
	s.Journal().RemoveMarks()
	return s.Commit()
}

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo.
func (s *Service) Undo() (bool, error) {
	if !s.Journal().Undo() {
		return false, nil
	}
	return true, s.Commit()
}

// Redo restores the most recently undone state.
func (s *Service) Redo() (bool, error) {
	if !s.Journal().Redo() {
		return false, nil
	}
	return true, s.Commit()
}

func (s *Service) checkIndex(i int) error {
	if i < 0 || i >= len(s.Journal().Items) {
		return fmt.Errorf("app: no item %d on sheet %q", i, s.Sheet)
	}
	return nil
}

// SetMarked records an explicit mark on the item's chain and commits.
func (s *Service) SetMarked(i int, marked bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Snapshot()
	s.Journal().SetMarked(i, marked)
	return s.Commit()
}

// SetContinued records the user's continuation choice and commits.
func (s *Service) SetContinued(i int, continued bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Snapshot()
	s.Journal().SetContinued(i, continued)
	return s.Commit()
}

// SetName renames an item and commits. Renames can split or join chains.
func (s *Service) SetName(i int, name string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Snapshot()
	s.Journal().SetName(i, name)
	return s.Commit()
}

// SetStart updates an item's start time from "HH:MM" text and commits.
func (s *Service) SetStart(i int, clock string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Snapshot()
	s.Journal().SetStart(i, clock)
	return s.Commit()
}

// SetEnd updates an item's end time from "HH:MM" text and commits.
func (s *Service) SetEnd(i int, clock string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Snapshot()
	s.Journal().SetEnd(i, clock)
	return s.Commit()
}

// SetPlanDurations replaces both of the chain's budget fields with exactly
// what was given. An empty string clears a stage, dropping the budget back to
// elapsed time.
func (s *Service) SetPlanDurations(i int, first, last string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Snapshot()
	plan := s.Journal().Items[i].Plan
	plan.FirstDuration = first
	plan.LastDuration = last
	return s.Commit()
}

// Summary recomputes the marked/unmarked duration buckets.
func (s *Service) Summary() journal.Summary {
	j := s.Journal()
	j.Reconcile()
	return j.Summarize()
}

// BonusText evaluates the sheet's bonus formula against the current summary.
// Evaluation failures come back as a user-facing "Error: ..." string and
// never affect other computed state.
func (s *Service) BonusText() string {
	j := s.Journal()
	sum := s.Summary()

	planTime, _ := timeutil.ParseDuration(j.PlanTime)
	previousBonus, _ := timeutil.ParseDuration(j.PreviousBonus)

	bonus, err := formula.Eval(j.BonusFormula, sum.Vars(planTime, previousBonus))
	if err != nil {
		return "Error: " + err.Error()
	}
	return "Bonus: " + timeutil.FormatDuration(timeutil.Seconds(bonus))
}

// SetFormula replaces the sheet's bonus formula and commits. An empty source
// resets to the default formula. Evaluation errors are reported lazily via
// BonusText, not here.
func (s *Service) SetFormula(src string) error {
	j := s.Journal()
	if src == "" {
		src = journal.DefaultFormula
	}
	j.BonusFormula = src
	return s.Commit()
}

// SetPlanTime records the planned working time fed into the bonus formula.
func (s *Service) SetPlanTime(d string) error {
	if _, ok := timeutil.ParseDuration(d); d != "" && !ok {
		return fmt.Errorf("app: bad plan time %q", d)
	}
	s.Journal().PlanTime = d
	return s.Commit()
}

// SetPreviousBonus records the carried-over bonus fed into the bonus formula.
func (s *Service) SetPreviousBonus(d string) error {
	if _, ok := timeutil.ParseDuration(d); d != "" && !ok {
		return fmt.Errorf("app: bad previous bonus %q", d)
	}
	s.Journal().PreviousBonus = d
	return s.Commit()
}

// SetHighlights replaces the sheet's free-text highlights note.
func (s *Service) SetHighlights(text string) error {
	s.Journal().Highlights = text
	return s.Commit()
}

// SetBreakBehavior configures the break entry title and whether the
// interrupted item resumes automatically after a break.
func (s *Service) SetBreakBehavior(title string, continueAfter bool) error {
	j := s.Journal()
	if title != "" {
		j.BreakTitle = title
	}
	j.ContinueAfterBreak = continueAfter
	return s.Commit()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Reload drops the cached sheet so the next access rereads storage.
func (s *Service) Reload() {
	s.j = nil
}
