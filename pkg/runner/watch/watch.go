// Package watch provides the runner that reprints a sheet as it changes.
package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Watch prints the sheet, then reprints it whenever the store reports a
// change, until the context is cancelled.
type Watch struct {
	Sheet       string
	Persistence store.Persistence
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}

	events, err := svc.Watch(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	render := func() {
		fmt.Print("\033[H\033[2J")
		pp.Title(n.Sheet)
		pp.Sheet(svc.Journal())
		pp.NewLine()
		pp.Summary(svc.Summary(), svc.BonusText())
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Sheet != n.Sheet {
				continue
			}
			svc.Reload()
			render()
		}
	}
}
