package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/formula"
	"tableflip.dev/tempo/pkg/store"
)

func addFormula(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	useDefault := false
	planTime := ""
	previousBonus := ""

	cmd := &cobra.Command{
		Use:   "formula [expression]",
		Short: "Show or set the sheet's bonus formula and its inputs",
		Long: "Without arguments the current formula, plan time and previous " +
			"bonus are printed. A positional expression replaces the formula; " +
			"it may use not_marked_total, not_marked_plus, not_marked_minus, " +
			"marked_total, marked_plus, marked_minus, plan_time and " +
			"previous_bonus.",
		Example: `
tempo formula
tempo formula --plan-time 8h --previous-bonus 30m
tempo formula "not_marked_total - plan_time"
tempo formula --default
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := formula.Formula{
				Sheet:         so.Resolve(),
				Expression:    strings.Join(args, " "),
				UseDefault:    useDefault,
				PlanTime:      planTime,
				PreviousBonus: previousBonus,
				Persistence:   p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&useDefault, "default", false, "Reset to the default formula.")
	cmd.Flags().StringVar(&planTime, "plan-time", "", `Planned working time, e.g. "8h".`)
	cmd.Flags().StringVar(&previousBonus, "previous-bonus", "", `Bonus carried over, e.g. "-30m".`)
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
