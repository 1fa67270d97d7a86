// Package clear provides runners that reset sheet state.
package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/store"
)

// Clear archives the current items and empties the sheet.
type Clear struct {
	Sheet       string
	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	if err := svc.Clear(); err != nil {
		return err
	}
	fmt.Printf("cleared %s\n", n.Sheet)
	return nil
}

// Unmark removes the done mark from every plan on the sheet.
type Unmark struct {
	Sheet       string
	Persistence store.Persistence
}

func (n *Unmark) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not unmark, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	if err := svc.RemoveMarks(); err != nil {
		return err
	}
	fmt.Printf("unmarked %s\n", n.Sheet)
	return nil
}
