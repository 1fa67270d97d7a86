// Package brk provides the runner that splits the open item around a break.
package brk

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Break closes the last item at the given clock, records a break entry,
// and opens a continuation of the interrupted item.
type Break struct {
	Sheet       string
	At          string
	Persistence store.Persistence
}

func (n *Break) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not break, no persistence")
	}
	now := timeutil.Now()
	if n.At != "" {
		c, ok := timeutil.ParseClock(n.At)
		if !ok {
			return fmt.Errorf("bad break time %q, want HH:MM", n.At)
		}
		now = c
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	if err := svc.Break(now); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(n.Sheet)
	pp.Sheet(svc.Journal())
	return nil
}
