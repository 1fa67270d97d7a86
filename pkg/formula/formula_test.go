package formula

import (
	"math"
	"strings"
	"testing"
)

var vars = map[string]float64{
	"plan_time":        28800,
	"previous_bonus":   600,
	"marked_plus":      1200,
	"marked_minus":     -300,
	"marked_total":     7200,
	"not_marked_plus":  2700,
	"not_marked_minus": -900,
	"not_marked_total": 18000,
}

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"-4 + 2", -2},
		{"10 / 4", 2.5},
		{"plan_time", 28800},
		{"marked_plus + marked_minus", 900},
		{"not_marked_total - plan_time + previous_bonus * 0.5 + not_marked_plus * 0.5", -9150},
		{"2 * (previous_bonus - 100)", 1000},
	}
	for _, tt := range tests {
		got, err := Eval(tt.src, vars)
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tt.src, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		src     string
		wantMsg string
	}{
		{"not_marked_total + 1/0", "division by zero"},
		{"bogus + 1", "unknown variable"},
		{"1 +", "unexpected"},
		{"(1 + 2", "parenthesis"},
		{"1 2", "unexpected"},
		{"1 & 2", "unexpected character"},
		{"1..2", "bad number"},
		{"", "unexpected"},
	}
	for _, tt := range tests {
		if _, err := Eval(tt.src, vars); err == nil {
			t.Errorf("Eval(%q) succeeded, want error", tt.src)
		} else if !strings.Contains(err.Error(), tt.wantMsg) {
			t.Errorf("Eval(%q) error %q, want substring %q", tt.src, err, tt.wantMsg)
		}
	}
}

func TestEvalNoAmbientNames(t *testing.T) {
	// Only the caller-provided variables resolve; nothing else is reachable.
	for _, src := range []string{"len", "print", "__builtins__", "math"} {
		if _, err := Eval(src, vars); err == nil {
			t.Errorf("Eval(%q) resolved a name outside the variable set", src)
		}
	}
}
