package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/watch"
	"tableflip.dev/tempo/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	so := &options.SheetOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint a sheet whenever it changes on disk",
		Example: `
tempo watch
tempo watch --sheet 2026-08-29
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := watch.Watch{
				Sheet:       so.Resolve(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
