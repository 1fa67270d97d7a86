package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/ui"
	"tableflip.dev/tempo/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SheetOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the text-based sheet editor",
		Example: `
tempo ui
tempo ui --sheet 2026-08-29
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Sheet: so.Resolve(), Persistence: p}
			return i.Do(context.Background())
		},
	}

	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
