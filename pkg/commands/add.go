package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/add"
	"tableflip.dev/tempo/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.SheetOptions{}
	to := &options.TimeOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a log item",
		Example: `
tempo add deep work --start now
tempo add standup --start 09:30 --end 09:45
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an item name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Sheet:       so.Resolve(),
				Name:        name,
				Start:       to.StartString(),
				End:         to.EndString(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSheetArgs(cmd, so)
	options.AddTimeArgs(cmd, to)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
