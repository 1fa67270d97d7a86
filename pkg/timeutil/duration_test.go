package timeutil

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want Seconds
		ok   bool
	}{
		{"2h30m", 9000, true},
		{"1d", 86400, true},
		{"1d2h3m", 93780, true},
		{"45m", 2700, true},
		{"45", 2700, true},
		{"0", 0, true},
		{"-1h", -3600, true},
		{"-30", -1800, true},
		{"", 0, false},
		{"abc", 0, false},
		{"xh30m", 0, false},
		{"2h3x", 0, false},
		{"h30", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDuration(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDuration(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   Seconds
		want string
	}{
		{0, "0m"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h0m"},
		{9000, "2h30m"},
		{93780, "1d2h3m"},
		{-9000, "-2h30m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	// Every whole-minute value survives format then parse.
	for _, s := range []Seconds{0, 60, 2700, 3600, 9000, 86400, 90060, 359940} {
		back, ok := ParseDuration(FormatDuration(s))
		if !ok {
			t.Fatalf("round trip of %d failed to parse %q", s, FormatDuration(s))
		}
		if back != s {
			t.Errorf("round trip of %d via %q = %d", s, FormatDuration(s), back)
		}
	}
}
