// Package add provides the runner that appends a log item to a sheet.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Add appends one item and reprints the sheet.
type Add struct {
	Sheet       string
	Name        string
	Start       string
	End         string
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	if err := svc.Append(n.Name, n.Start, n.End); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(n.Sheet)
	pp.Sheet(svc.Journal())
	return nil
}
