package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tempo",
		Short: base.Wrap80("Time logging and planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addBreak(topLevel)
	addGet(topLevel)
	addSheets(topLevel)
	addMark(topLevel)
	addContinue(topLevel)
	addPlan(topLevel)
	addClear(topLevel)
	addUnmark(topLevel)
	addSummary(topLevel)
	addFormula(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}
