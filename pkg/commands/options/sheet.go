// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// SheetOptions selects which sheet a command operates on.
type SheetOptions struct {
	Sheet string
}

// AddSheetArgs wires the sheet selection flag on the provided command.
func AddSheetArgs(cmd *cobra.Command, o *SheetOptions) {
	cmd.Flags().StringVarP(&o.Sheet, "sheet", "s", "today",
		"Specify the sheet. \"today\" resolves to the current date.")
}

// Resolve maps the "today" alias onto the current date.
func (o *SheetOptions) Resolve() string {
	if o.Sheet == "today" || o.Sheet == "" {
		return time.Now().Format(layoutISO)
	}
	return o.Sheet
}
