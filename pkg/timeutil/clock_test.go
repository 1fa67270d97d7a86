package timeutil

import (
	"encoding/json"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
		ok   bool
	}{
		{"09:30", NewClock(9, 30), true},
		{"00:00", NewClock(0, 0), true},
		{"23:59", NewClock(23, 59), true},
		{"24:00", Clock{}, false},
		{"9:3", Clock{}, false},
		{"half past nine", Clock{}, false},
		{"", Clock{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseClock(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClockString(t *testing.T) {
	if got := NewClock(9, 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want 09:05", got)
	}
	if got := (Clock{}).String(); got != "" {
		t.Errorf("unset String() = %q, want empty", got)
	}
}

func TestClockSub(t *testing.T) {
	a := NewClock(10, 15)
	b := NewClock(9, 0)
	if got := a.Sub(b); got != 4500 {
		t.Errorf("Sub = %d, want 4500", got)
	}
	if got := b.Sub(a); got != -4500 {
		t.Errorf("reverse Sub = %d, want -4500", got)
	}
}

func TestClockJSON(t *testing.T) {
	data, err := json.Marshal(NewClock(14, 5))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"14:05"` {
		t.Errorf("marshal = %s", data)
	}

	var c Clock
	if err := json.Unmarshal([]byte(`"14:05"`), &c); err != nil {
		t.Fatal(err)
	}
	if c != NewClock(14, 5) {
		t.Errorf("unmarshal = %v", c)
	}

	// Garbage degrades to unset, never errors.
	if err := json.Unmarshal([]byte(`"not a time"`), &c); err != nil {
		t.Fatal(err)
	}
	if c.Set {
		t.Errorf("expected unset clock, got %v", c)
	}
}
