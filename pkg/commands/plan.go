package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/mark"
	"tableflip.dev/tempo/pkg/store"
)

func addPlan(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	io := &options.ItemOptions{}
	first := ""
	last := ""

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Set the budget on an item's plan",
		Long: "Sets the two budget stages on the chain the item belongs to. " +
			"The first stage is the initial estimate, the last stage the " +
			"current one used for summaries.",
		Example: `
tempo plan 1 --first 2h --last 2h30m
tempo plan 1 --last 45m
tempo plan 1 --last ""
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return io.ParseIndexArg(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			setFirst := cmd.Flags().Changed("first")
			setLast := cmd.Flags().Changed("last")
			if !setFirst && !setLast {
				return errors.New("nothing to set, use --first and/or --last")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := mark.Plan{
				Sheet:       so.Resolve(),
				Index:       io.Index,
				First:       first,
				SetFirst:    setFirst,
				Last:        last,
				SetLast:     setLast,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&first, "first", "", `First-stage budget, e.g. "2h30m".`)
	cmd.Flags().StringVar(&last, "last", "", `Last-stage budget, e.g. "1h45m".`)
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
