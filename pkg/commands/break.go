package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/brk"
	"tableflip.dev/tempo/pkg/store"
)

func addBreak(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	at := ""

	cmd := &cobra.Command{
		Use:   "break",
		Short: "Close the open item and log a break",
		Long: "Closes the last item at the given time, records a break entry, " +
			"and opens a continuation of the interrupted item.",
		Example: `
tempo break
tempo break --at 14:10
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := brk.Break{
				Sheet:       so.Resolve(),
				At:          at,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&at, "at", "",
		`End of the break as "HH:MM". Defaults to now.`)
	options.AddSheetArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
