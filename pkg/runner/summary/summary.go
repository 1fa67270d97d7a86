// Package summary provides the runner that aggregates and prints a sheet.
package summary

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/store"
)

// Summary prints the per-sheet duration buckets and the bonus line.
type Summary struct {
	Sheet       string
	Merged      bool
	Persistence store.Persistence
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not summarize, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(n.Sheet)
	if n.Merged {
		pp.Merged(svc.Journal().MergeByName())
		return nil
	}
	pp.Summary(svc.Summary(), svc.BonusText())
	return nil
}
