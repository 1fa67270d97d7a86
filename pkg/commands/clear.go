package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/clear"
	"tableflip.dev/tempo/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	so := &options.SheetOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Archive the sheet's items and start fresh",
		Long: "Moves the current items into the sheet's previous-session " +
			"archive. New items with the same name inherit their mark from " +
			"the archive.",
		Example: `
tempo clear
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := clear.Clear{
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

func addUnmark(topLevel *cobra.Command) {
	so := &options.SheetOptions{}

	cmd := &cobra.Command{
		Use:   "unmark",
		Short: "Remove the done mark from every plan on the sheet",
		Example: `
tempo unmark
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := clear.Unmark{
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
