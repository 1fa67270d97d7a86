package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/mark"
	"tableflip.dev/tempo/pkg/store"
)

func addMark(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	io := &options.ItemOptions{}
	unmark := false

	cmd := &cobra.Command{
		Use:     "mark",
		Aliases: []string{"done"},
		Short:   "Mark an item's plan as done",
		Example: `
tempo mark 2
tempo mark 2 --undo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.ParseIndexArg(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := mark.Mark{
				Sheet:       so.Resolve(),
				Index:       io.Index,
				Unmark:      unmark,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&unmark, "undo", false, "Clear the mark instead.")
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
