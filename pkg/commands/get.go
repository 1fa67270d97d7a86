package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/get"
	"tableflip.dev/tempo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	showIndex := false

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show", "ls"},
		Short:   "Print a sheet",
		Example: `
tempo get
tempo get --sheet 2026-08-29
tempo get --index
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := get.Get{
				Sheet:       so.Resolve(),
				ShowIndex:   showIndex,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&showIndex, "index", "i", false,
		"Show row indexes, as used by mark, continue and plan.")
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func addSheets(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List stored sheets",
		Example: `
tempo sheets
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := get.List{Persistence: p}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
