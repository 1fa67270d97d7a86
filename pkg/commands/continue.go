package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/mark"
	"tableflip.dev/tempo/pkg/store"
)

func addContinue(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	io := &options.ItemOptions{}
	off := false

	cmd := &cobra.Command{
		Use:   "continue",
		Short: "Link an item to the previous one with the same name",
		Long: "Items continue an earlier item with the same name unless told " +
			"not to. Use --off to keep an item standalone.",
		Example: `
tempo continue 3
tempo continue 3 --off
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

			s := mark.Continue{
				Sheet:       so.Resolve(),
				Index:       io.Index,
				Uncontinue:  off,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Detach the item from its chain.")
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
