// Package ui provides the runner that launches the full-screen editor.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/tui"
)

// UI opens the sheet editor on one sheet.
type UI struct {
	Sheet       string
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence, Sheet: n.Sheet}
	return tui.Run(ctx, svc)
}
