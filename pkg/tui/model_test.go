package tui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tempo/pkg/app"
	"tableflip.dev/tempo/pkg/journal"
	"tableflip.dev/tempo/pkg/store"
)

type fakePersistence struct {
	docs map[string][]byte
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{docs: map[string][]byte{}}
}

func (f *fakePersistence) LoadSheet(name string) *journal.Journal {
	data, ok := f.docs[name]
	if !ok {
		return journal.New()
	}
	var doc store.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return journal.New()
	}
	return store.UnmarshalJournal(doc)
}

func (f *fakePersistence) SaveSheet(name string, j *journal.Journal) error {
	data, err := json.Marshal(store.MarshalJournal(j))
	if err != nil {
		return err
	}
	f.docs[name] = data
	return nil
}

func (f *fakePersistence) Sheets(ctx context.Context) []string { return nil }

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func newTestModel(t *testing.T) (Model, *app.Service) {
	t.Helper()
	svc := &app.Service{Persistence: newFakePersistence(), Sheet: "test"}
	if err := svc.Append("reading", "09:00", "10:00"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := svc.Append("writing", "10:00", "11:30"); err != nil {
		t.Fatalf("append: %v", err)
	}
	return New(svc, nil), svc
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, key("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor after j = %d, want 1", m.cursor)
	}
	m = update(t, m, key("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor must stop at the last row, got %d", m.cursor)
	}
	m = update(t, m, key("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor after k = %d, want 0", m.cursor)
	}
	m = update(t, m, key("G"))
	if m.cursor != 1 {
		t.Fatalf("cursor after G = %d, want 1", m.cursor)
	}
	m = update(t, m, key("g"))
	if m.cursor != 0 {
		t.Fatalf("cursor after g = %d, want 0", m.cursor)
	}
}

func TestMarkToggleThroughKeys(t *testing.T) {
	m, svc := newTestModel(t)

	m = update(t, m, key("x"))
	if !svc.Journal().Items[0].Plan.Marked {
		t.Fatal("x must mark the selected item's plan")
	}
	m = update(t, m, key("x"))
	if svc.Journal().Items[0].Plan.Marked {
		t.Fatal("x again must clear the mark")
	}
	_ = m
}

func TestInsertModeAddsItem(t *testing.T) {
	m, svc := newTestModel(t)

	m = update(t, m, key("o"))
	if m.mode != modeInsert || m.action != actionAdd {
		t.Fatalf("o must enter insert/add, got mode=%d action=%d", m.mode, m.action)
	}
	for _, r := range "lunch" {
		m = update(t, m, key(string(r)))
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	items := svc.Journal().Items
	if len(items) != 3 {
		t.Fatalf("expected 3 items after add, got %d", len(items))
	}
	if items[2].Name != "lunch" {
		t.Fatalf("added item name = %q, want %q", items[2].Name, "lunch")
	}
	if m.mode != modeNormal {
		t.Fatalf("enter must leave insert mode, still in %d", m.mode)
	}
	if m.cursor != 2 {
		t.Fatalf("cursor must follow the added row, got %d", m.cursor)
	}
}

func TestInsertModeEscCancels(t *testing.T) {
	m, svc := newTestModel(t)

	m = update(t, m, key("o"))
	m = update(t, m, key("a"))
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if len(svc.Journal().Items) != 2 {
		t.Fatalf("esc must not add an item, got %d items", len(svc.Journal().Items))
	}
	if m.mode != modeNormal {
		t.Fatalf("esc must leave insert mode, still in %d", m.mode)
	}
}

func TestBudgetEditAndClearThroughKeys(t *testing.T) {
	m, svc := newTestModel(t)
	if err := svc.SetPlanDurations(0, "1h", "2h"); err != nil {
		t.Fatal(err)
	}

	// Editing the last stage leaves the first stage alone. The input opens
	// prefilled with the current value, so erase it before typing.
	m = update(t, m, key("d"))
	for range "2h" {
		m = update(t, m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	}
	for _, r := range "45m" {
		m = update(t, m, key(string(r)))
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	p := svc.Journal().Items[0].Plan
	if p.FirstDuration != "1h" || p.LastDuration != "45m" {
		t.Fatalf("plan = (%q, %q), want (1h, 45m)", p.FirstDuration, p.LastDuration)
	}

	// Submitting an emptied field clears the stage.
	m = update(t, m, key("d"))
	for range "45m" {
		m = update(t, m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := svc.Journal().Items[0].Plan.LastDuration; got != "" {
		t.Fatalf("last duration after clearing the field = %q, want empty", got)
	}
	if got := svc.Journal().Items[0].Plan.FirstDuration; got != "1h" {
		t.Fatalf("first duration must survive the clear, got %q", got)
	}
}

func TestUndoKeyRevertsMark(t *testing.T) {
	m, svc := newTestModel(t)

	m = update(t, m, key("x"))
	if !svc.Journal().Items[0].Plan.Marked {
		t.Fatal("setup: item must be marked")
	}
	m = update(t, m, key("u"))
	if svc.Journal().Items[0].Plan.Marked {
		t.Fatal("u must revert the mark")
	}
	m = update(t, m, key("r"))
	if !svc.Journal().Items[0].Plan.Marked {
		t.Fatal("r must reapply the mark")
	}
	_ = m
}

func TestHighlightsEditThroughKeys(t *testing.T) {
	m, svc := newTestModel(t)

	m = update(t, m, key("H"))
	if m.mode != modeInsert || m.action != actionEditHighlights {
		t.Fatalf("H must open the highlights input, got mode=%d action=%d", m.mode, m.action)
	}
	for _, r := range "shipped" {
		m = update(t, m, key(string(r)))
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := svc.Journal().Highlights; got != "shipped" {
		t.Fatalf("highlights = %q, want %q", got, "shipped")
	}
	if out := m.View(); !strings.Contains(out, "shipped") {
		t.Fatalf("view must show the highlights note, got:\n%s", out)
	}

	// Reloading from storage keeps the note.
	svc.Reload()
	if got := svc.Journal().Highlights; got != "shipped" {
		t.Fatalf("highlights after reload = %q, want %q", got, "shipped")
	}
}

func TestViewShowsRowsAndFooter(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "reading") || !strings.Contains(out, "writing") {
		t.Fatalf("view must list item names, got:\n%s", out)
	}
	if !strings.Contains(out, "not marked") {
		t.Fatalf("view must include the summary footer, got:\n%s", out)
	}
	if !strings.Contains(out, "test") {
		t.Fatalf("view must include the sheet title, got:\n%s", out)
	}
}

func TestExternalChangeReloads(t *testing.T) {
	m, svc := newTestModel(t)

	// Another process rewrites the sheet behind our back.
	other := &app.Service{Persistence: svc.Persistence, Sheet: "test"}
	if err := other.Append("review", "12:00", ""); err != nil {
		t.Fatalf("append: %v", err)
	}
	svc.Reload()

	m = update(t, m, changedMsg{sheet: "test"})
	if got := len(svc.Journal().Items); got != 3 {
		t.Fatalf("expected reload to pick up 3 items, got %d", got)
	}
	_ = m
}
