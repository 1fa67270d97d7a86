package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/journal"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestSheetRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	j := journal.New()
	j.Append("write", "09:00", "09:30")
	j.Items[0].Plan.LastDuration = "2h"
	j.Append("write", "09:30", "10:15")
	j.Append("email", "10:15", "10:30")
	j.SetContinued(2, false)
	j.PlanTime = "8h"
	j.PreviousBonus = "30m"
	j.BreakTitle = "coffee"
	j.ContinueAfterBreak = true
	j.Reconcile()

	if err := p.SaveSheet("monday", j); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadSheet("monday")
	if len(got.Items) != 3 {
		t.Fatalf("loaded %d items, want 3", len(got.Items))
	}
	if got.Items[0].Plan != got.Items[1].Plan {
		t.Error("chain plan sharing was not rebuilt on load")
	}
	if !got.Items[1].Continued {
		t.Error("continuation flag lost")
	}
	if !got.Items[2].ManuallyUncontinued {
		t.Error("manual uncontinue flag lost")
	}
	if total := got.TotalDuration(got.Tail(0)); total != 75*60 {
		t.Errorf("chain total after reload = %d, want 4500", total)
	}
	if got.PlanTime != "8h" || got.PreviousBonus != "30m" {
		t.Error("sheet text fields lost")
	}
	if got.BreakTitle != "coffee" || !got.ContinueAfterBreak {
		t.Error("break settings lost")
	}
}

func TestLoadSheetDegradesSilently(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	j := p.LoadSheet("never-saved")
	if j == nil || len(j.Items) != 0 {
		t.Fatal("missing sheet must load as empty")
	}
	if j.BonusFormula != journal.DefaultFormula {
		t.Error("empty sheet should carry the default formula")
	}

	// Corrupt content degrades the same way.
	if err := p.(*persistence).d.Write(toKey("broken"), []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if got := p.LoadSheet("broken"); len(got.Items) != 0 {
		t.Error("corrupt sheet must load as empty")
	}
}

func TestArchivePersisted(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	j := journal.New()
	j.Append("deep work", "09:00", "10:00")
	j.SetMarked(0, true)
	j.Reconcile()
	j.Clear()
	if err := p.SaveSheet("s", j); err != nil {
		t.Fatal(err)
	}

	got := p.LoadSheet("s")
	if len(got.Archive) != 1 || got.Archive[0].Name != "deep work" {
		t.Fatalf("archive not restored: %+v", got.Archive)
	}

	// Archived marks keep feeding inheritance after a reload.
	got.Append("deep work", "11:00", "11:30")
	got.Reconcile()
	if !got.Items[0].Plan.Marked {
		t.Error("archive mark inheritance broken after reload")
	}
}

func TestDocumentFieldNames(t *testing.T) {
	j := journal.New()
	j.Append("x", "09:00", "10:00")
	j.Reconcile()

	data, err := json.Marshal(MarshalJournal(j))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"logs", "previous_logs", "bonus_formula", "plan_time", "previous_bonus", "continue_after_break", "break_title", "highlights"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("document missing %q", key)
		}
	}
	logs := raw["logs"].([]any)
	first := logs[0].(map[string]any)
	for _, key := range []string{"name", "start_str", "end_str", "index", "is_continued", "manually_set_uncontinued", "plan"} {
		if _, ok := first[key]; !ok {
			t.Errorf("log record missing %q", key)
		}
	}
	plan := first["plan"].(map[string]any)
	for _, key := range []string{"first_duration", "last_duration", "is_marked", "is_mark_set"} {
		if _, ok := plan[key]; !ok {
			t.Errorf("plan record missing %q", key)
		}
	}
}

func TestSheets(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, name := range []string{"b", "a"} {
		if err := p.SaveSheet(name, journal.New()); err != nil {
			t.Fatal(err)
		}
	}
	got := p.Sheets(context.Background())
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Sheets = %v", got)
	}
}

func TestWatchEmitsSheetChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.SaveSheet("monday", journal.New()); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Sheet != "monday" {
			t.Fatalf("expected sheet 'monday', got %q", evt.Sheet)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sheet change event")
	}
}
