// Package printers renders sheets and summaries for the terminal.
package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/tempo/pkg/journal"
	"tableflip.dev/tempo/pkg/timeutil"
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

type PrettyPrint struct {
	ShowIndex bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Sheet prints every item with its chain-aware durations and budget state.
func (pp *PrettyPrint) Sheet(j *journal.Journal) {
	if len(j.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	if pp.ShowIndex {
		table.AddRow("#", "", "NAME", "START", "END", "DURATION", "CHAIN", "BUDGET", "LEFT")
	} else {
		table.AddRow("", "NAME", "START", "END", "DURATION", "CHAIN", "BUDGET", "LEFT")
	}

	for i, it := range j.Items {
		mark := " "
		if it.Plan.Marked {
			mark = "✔"
		}

		chain := ""
		if it.InChain() {
			chain = timeutil.FormatDuration(j.TotalDuration(j.Tail(i)))
			if it.Continued {
				chain = "↪ " + chain
			}
		}

		left := pp.budgetLeft(j, i)

		cols := []interface{}{mark, it.Name, it.Start.String(), it.End.String(),
			timeutil.FormatDuration(it.Duration()), chain, it.Plan.LastDuration, left}
		if pp.ShowIndex {
			cols = append([]interface{}{i}, cols...)
		}
		table.AddRow(cols...)
	}
	fmt.Println(table)
	fmt.Println("")
}

// budgetLeft colors the remaining last-stage budget: green while the first
// stage is still open, red once the last stage is blown.
func (pp *PrettyPrint) budgetLeft(j *journal.Journal, i int) string {
	d := j.TimeDiffs(i)
	if !d.FirstOK && !d.LastOK {
		return ""
	}
	text := timeutil.FormatDuration(d.Last)
	switch {
	case d.FirstOK && d.First >= 0:
		return color.GreenString(text)
	case d.LastOK && d.Last >= 0:
		return text
	default:
		return color.RedString(text)
	}
}

// Summary prints the marked/unmarked buckets and the bonus line.
func (pp *PrettyPrint) Summary(sum journal.Summary, bonus string) {
	table := uitable.New()
	table.AddRow("", "TOTAL", "PLUS", "MINUS")
	table.AddRow("Marked:",
		timeutil.FormatDuration(sum.MarkedTotal),
		timeutil.FormatDuration(sum.MarkedPlus),
		timeutil.FormatDuration(sum.MarkedMinus))
	table.AddRow("Not marked:",
		timeutil.FormatDuration(sum.NotMarkedTotal),
		timeutil.FormatDuration(sum.NotMarkedPlus),
		timeutil.FormatDuration(sum.NotMarkedMinus))
	fmt.Println(table)

	if strings.HasPrefix(bonus, "Error") {
		_, _ = color.New(color.FgRed).Println(bonus)
	} else {
		fmt.Println(bonus)
	}
}

// Merged prints the by-name duration rollup.
func (pp *PrettyPrint) Merged(merged []journal.Merged) {
	for _, m := range merged {
		name := m.Name
		if name == "" {
			name = color.New(color.Faint).Sprint("(unnamed)")
		}
		fmt.Printf("%s %s\n", name, timeutil.FormatDuration(m.Duration))
	}
	fmt.Println("")
}
