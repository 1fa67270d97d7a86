package options

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/timeutil"
)

// ItemOptions addresses one row of a sheet by its index.
type ItemOptions struct {
	Index int
}

// ParseIndexArg reads the row index from the first positional argument.
func (o *ItemOptions) ParseIndexArg(args []string) error {
	if len(args) < 1 {
		return errors.New("requires a row index")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("row index must be a number")
	}
	o.Index = i
	return nil
}

// TimeOptions captures start/end flags shared by add-style commands. The
// value "now" resolves to the current wall clock.
type TimeOptions struct {
	Start string
	End   string
}

// AddTimeArgs wires the start/end flags on the provided command.
func AddTimeArgs(cmd *cobra.Command, o *TimeOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start time as "HH:MM", or "now".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End time as "HH:MM", or "now".`)
}

func resolveNow(s string) string {
	if s == "now" {
		return timeutil.Now().String()
	}
	return s
}

// StartString resolves the start flag.
func (o *TimeOptions) StartString() string { return resolveNow(o.Start) }

// EndString resolves the end flag.
func (o *TimeOptions) EndString() string { return resolveNow(o.End) }
