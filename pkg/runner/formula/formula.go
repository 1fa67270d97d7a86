// Package formula provides the runner that shows and edits a sheet's bonus
// formula and its inputs.
package formula

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/journal"
	"tableflip.dev/tempo/pkg/store"
)

// Formula updates the bonus formula, plan time and previous bonus where set,
// then prints the sheet's current planning inputs.
type Formula struct {
	Sheet         string
	Expression    string
	UseDefault    bool
	PlanTime      string
	PreviousBonus string
	Persistence   store.Persistence
}

func (n *Formula) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set formula, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}

	changed := false
	switch {
	case n.UseDefault:
		if err := svc.SetFormula(journal.DefaultFormula); err != nil {
			return err
		}
		changed = true
	case n.Expression != "":
		if err := svc.SetFormula(n.Expression); err != nil {
			return err
		}
		changed = true
	}
	if n.PlanTime != "" {
		if err := svc.SetPlanTime(n.PlanTime); err != nil {
			return err
		}
		changed = true
	}
	if n.PreviousBonus != "" {
		if err := svc.SetPreviousBonus(n.PreviousBonus); err != nil {
			return err
		}
		changed = true
	}

	j := svc.Journal()
	fmt.Printf("formula:        %s\n", j.BonusFormula)
	fmt.Printf("plan time:      %s\n", j.PlanTime)
	fmt.Printf("previous bonus: %s\n", j.PreviousBonus)
	if changed {
		fmt.Println(svc.BonusText())
	}
	return nil
}
