package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/summary"
	"tableflip.dev/tempo/pkg/store"
)

func addSummary(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	merged := false

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print duration totals and the bonus for a sheet",
		Example: `
tempo summary
tempo summary --merged
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := summary.Summary{
				Sheet:       so.Resolve(),
				Merged:      merged,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&merged, "merged", false,
		"Roll items up by name instead of the marked/unmarked buckets.")
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
