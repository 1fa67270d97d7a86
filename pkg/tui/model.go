// Package tui implements the full-screen sheet editor.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/timeutil"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEditName
	actionEditStart
	actionEditEnd
	actionEditFirst
	actionEditLast
	actionEditHighlights
)

// messages
type errMsg struct{ err error }
type changedMsg struct{ sheet string }

// Model contains the editor state for one sheet.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	action action

	cursor int

	input  textinput.Model
	status string

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a sheet editor backed by the Service. The events channel is
// optional; when set, external edits to the sheet reload the view.
func New(svc *app.Service, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	return Model{
		svc:    svc,
		ctx:    context.Background(),
		mode:   modeNormal,
		action: actionNone,
		input:  ti,
		events: events,
		status: "NORMAL: j/k move, o add, b break, x mark, c chain, i/s/e edit, f/d budget, u/r undo/redo, ? help",
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return changedMsg{sheet: ev.Sheet}
	}
}

func (m *Model) clampCursor() {
	if n := len(m.svc.Journal().Items); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// apply runs a mutation and reports the outcome in the status line.
func (m *Model) apply(ok string, fn func() error) {
	if err := fn(); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = ok
	m.clampCursor()
}

// enterInsert switches to insert mode with the input preloaded.
func (m *Model) enterInsert(a action, placeholder, value string, cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

// commitInsert applies the input buffer according to the pending action.
func (m *Model) commitInsert() {
	text := strings.TrimSpace(m.input.Value())
	i := m.cursor
	switch m.action {
	case actionAdd:
		if text == "" {
			m.status = "Add cancelled"
			return
		}
		m.apply("Added", func() error {
			return m.svc.Append(text, timeutil.Now().String(), "")
		})
		m.cursor = len(m.svc.Journal().Items) - 1
	case actionEditName:
		m.apply("Renamed", func() error { return m.svc.SetName(i, text) })
	case actionEditStart:
		m.apply("Start set", func() error { return m.svc.SetStart(i, text) })
	case actionEditEnd:
		m.apply("End set", func() error { return m.svc.SetEnd(i, text) })
	case actionEditFirst:
		last := m.svc.Journal().Items[i].Plan.LastDuration
		m.apply("Budget set", func() error { return m.svc.SetPlanDurations(i, text, last) })
	case actionEditLast:
		first := m.svc.Journal().Items[i].Plan.FirstDuration
		m.apply("Budget set", func() error { return m.svc.SetPlanDurations(i, first, text) })
	case actionEditHighlights:
		m.apply("Highlights set", func() error { return m.svc.SetHighlights(text) })
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case changedMsg:
		// Reload on external edits, but never while an input is open; the
		// save triggered by our own commit also lands here and a reload is
		// harmless then.
		if m.mode == modeNormal && msg.sheet == m.svc.Sheet {
			m.svc.Reload()
			m.clampCursor()
		}
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.commitInsert()
				m.leaveInsert()
			case "esc":
				m.leaveInsert()
				m.status = "Cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			items := m.svc.Journal().Items
			switch msg.String() {
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)

			// movement
			case "j", "down":
				if m.cursor < len(items)-1 {
					m.cursor++
				}
			case "k", "up":
				if m.cursor > 0 {
					m.cursor--
				}
			case "g":
				m.cursor = 0
			case "G":
				m.cursor = len(items) - 1
				m.clampCursor()

			// add and break
			case "o":
				m.enterInsert(actionAdd, "New item name", "", &cmds)
			case "b":
				m.apply("Break", func() error { return m.svc.Break(timeutil.Now()) })
				m.cursor = len(m.svc.Journal().Items) - 1
				m.clampCursor()

			// flags
			case "x":
				if m.cursor < len(items) {
					marked := items[m.cursor].Plan.Marked
					i := m.cursor
					m.apply("Mark toggled", func() error { return m.svc.SetMarked(i, !marked) })
				}
			case "c":
				if m.cursor < len(items) {
					detached := items[m.cursor].ManuallyUncontinued
					i := m.cursor
					m.apply("Chain toggled", func() error { return m.svc.SetContinued(i, detached) })
				}

			// pull the start time from the previous row's end
			case "L":
				if m.cursor > 0 && m.cursor < len(items) {
					i := m.cursor
					prevEnd := items[i-1].End.String()
					m.apply("Start pulled", func() error { return m.svc.SetStart(i, prevEnd) })
				}

			// field edits
			case "i":
				if m.cursor < len(items) {
					m.enterInsert(actionEditName, "Name", items[m.cursor].Name, &cmds)
				}
			case "s":
				if m.cursor < len(items) {
					m.enterInsert(actionEditStart, "Start HH:MM", items[m.cursor].Start.String(), &cmds)
				}
			case "e":
				if m.cursor < len(items) {
					m.enterInsert(actionEditEnd, "End HH:MM", items[m.cursor].End.String(), &cmds)
				}
			case "f":
				if m.cursor < len(items) {
					m.enterInsert(actionEditFirst, `First budget, e.g. "2h30m"`, items[m.cursor].Plan.FirstDuration, &cmds)
				}
			case "d":
				if m.cursor < len(items) {
					m.enterInsert(actionEditLast, `Last budget, e.g. "2h30m"`, items[m.cursor].Plan.LastDuration, &cmds)
				}
			case "H":
				m.enterInsert(actionEditHighlights, "Highlights", m.svc.Journal().Highlights, &cmds)

			// history
			case "u":
				switch ok, err := m.svc.Undo(); {
				case err != nil:
					m.status = "ERR: " + err.Error()
				case !ok:
					m.status = "nothing to undo"
				default:
					m.status = "Undo"
					m.clampCursor()
				}
			case "r":
				switch ok, err := m.svc.Redo(); {
				case err != nil:
					m.status = "ERR: " + err.Error()
				case !ok:
					m.status = "nothing to redo"
				default:
					m.status = "Redo"
					m.clampCursor()
				}

			case "?":
				m.mode = modeHelp
			}
		}
	}

	return m, tea.Batch(cmds...)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	markedStyle   = lipgloss.NewStyle().Faint(true)
	overStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	underStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) rowText(i int) string {
	j := m.svc.Journal()
	it := j.Items[i]

	mark := " "
	if it.Plan.Marked {
		mark = "✔"
	}
	chain := " "
	if it.Continued {
		chain = "↪"
	}

	left := ""
	d := j.TimeDiffs(i)
	switch {
	case d.FirstOK && d.First >= 0:
		left = underStyle.Render(timeutil.FormatDuration(d.Last))
	case d.LastOK && d.Last >= 0:
		left = timeutil.FormatDuration(d.Last)
	case d.FirstOK || d.LastOK:
		left = overStyle.Render(timeutil.FormatDuration(d.Last))
	}

	text := fmt.Sprintf("%s %s %-24s %5s %5s %7s %7s %s",
		mark, chain,
		truncate(it.Name, 24),
		it.Start.String(), it.End.String(),
		timeutil.FormatDuration(it.Duration()),
		it.Plan.LastDuration,
		left)
	if it.Plan.Marked {
		return markedStyle.Render(text)
	}
	return text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (m Model) View() string {
	j := m.svc.Journal()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.svc.Sheet))
	b.WriteString("\n\n")

	if len(j.Items) == 0 {
		b.WriteString(" (empty, press o to add an item)\n")
	}
	for i := range j.Items {
		row := m.rowText(i)
		if i == m.cursor && m.mode != modeHelp {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeInsert:
		prompt := map[action]string{
			actionAdd:            "Add: ",
			actionEditName:       "Name: ",
			actionEditStart:      "Start: ",
			actionEditEnd:        "End: ",
			actionEditFirst:      "First budget: ",
			actionEditLast:       "Last budget: ",
			actionEditHighlights: "Highlights: ",
		}[m.action]
		b.WriteString("\n" + prompt + m.input.View() + "\n")
	case modeHelp:
		help := "Keys: j/k move, g/G top/bottom, o add item, b break, x toggle mark, " +
			"c toggle chain, i name, s start, e end, L start from previous end, " +
			"f/d first/last budget, H highlights, u undo, r redo, q quit"
		width := m.termWidth
		if width <= 0 {
			width = 80
		}
		b.WriteString("\n" + wordwrap.String(help, width) + "\n")
	default:
		if h := j.Highlights; h != "" {
			width := m.termWidth
			if width <= 0 {
				width = 80
			}
			b.WriteString("\n" + wordwrap.String("★ "+h, width) + "\n")
		}
		sum := m.svc.Summary()
		footer := fmt.Sprintf("not marked %s (+%s/-%s)  marked %s (+%s/-%s)  %s",
			timeutil.FormatDuration(sum.NotMarkedTotal),
			timeutil.FormatDuration(sum.NotMarkedPlus),
			timeutil.FormatDuration(sum.NotMarkedMinus),
			timeutil.FormatDuration(sum.MarkedTotal),
			timeutil.FormatDuration(sum.MarkedPlus),
			timeutil.FormatDuration(sum.MarkedMinus),
			m.svc.BonusText())
		width := m.termWidth
		if width <= 0 {
			width = 80
		}
		b.WriteString("\n" + wordwrap.String(footer, width) + "\n")
	}

	b.WriteString("\n" + statusStyle.Render(m.status))
	return b.String()
}

// Run opens the editor and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	events, err := svc.Watch(ctx)
	if err != nil {
		// The editor still works without live reloads.
		events = nil
	}
	p := tea.NewProgram(New(svc, events), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
