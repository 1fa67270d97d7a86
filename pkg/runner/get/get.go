// Package get provides the runners that print sheets and sheet listings.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Get prints a single sheet with item indexes.
type Get struct {
	Sheet       string
	ShowIndex   bool
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}

	pp := printers.PrettyPrint{ShowIndex: n.ShowIndex}
	fmt.Println("")
	pp.Title(n.Sheet)
	pp.Sheet(svc.Journal())
	return nil
}

// List prints the names of all stored sheets.
type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	for _, name := range n.Persistence.Sheets(ctx) {
		fmt.Println(name)
	}
	return nil
}
