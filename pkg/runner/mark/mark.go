// Package mark provides runners that flip per-item flags on a sheet.
package mark

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Mark sets or clears the done mark on one item's plan.
type Mark struct {
	Sheet       string
	Index       int
	Unmark      bool
	Persistence store.Persistence
}

func (n *Mark) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not mark, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	if err := svc.SetMarked(n.Index, !n.Unmark); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	fmt.Println("")
	pp.Title(n.Sheet)
	pp.Sheet(svc.Journal())
	return nil
}

// Continue sets or clears the continuation opt-out on one item.
type Continue struct {
	Sheet       string
	Index       int
	Uncontinue  bool
	Persistence store.Persistence
}

func (n *Continue) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not continue, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	if err := svc.SetContinued(n.Index, !n.Uncontinue); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	fmt.Println("")
	pp.Title(n.Sheet)
	pp.Sheet(svc.Journal())
	return nil
}

// Plan sets the budget durations on one item's plan. A stage is only written
// when its Set flag is true; writing an empty string clears the stage.
type Plan struct {
	Sheet       string
	Index       int
	First       string
	SetFirst    bool
	Last        string
	SetLast     bool
	Persistence store.Persistence
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not plan, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}

	items := svc.Journal().Items
	if n.Index < 0 || n.Index >= len(items) {
		return fmt.Errorf("no item %d on sheet %q", n.Index, n.Sheet)
	}
	first, last := items[n.Index].Plan.FirstDuration, items[n.Index].Plan.LastDuration
	if n.SetFirst {
		first = n.First
	}
	if n.SetLast {
		last = n.Last
	}
	if err := svc.SetPlanDurations(n.Index, first, last); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	fmt.Println("")
	pp.Title(n.Sheet)
	pp.Sheet(svc.Journal())
	return nil
}
