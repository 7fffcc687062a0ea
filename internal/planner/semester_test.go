package planner

import "testing"

func TestTermCode(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Fall 2026", "FA26"},
		{"Spring 2027", "SP27"},
		{"Summer 2026", "SU26"},
		{"Winter 2026", "WI26"},
		{"fall 2026", "FA26"},
		{"FALL 2026", "FA26"},
		{"Autumn 2026", ""},
		{"Fall", ""},
		{"Fall 26", ""},
		{"Fall 20X6", ""},
		{"Fall 2026 extra", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TermCode(tt.label); got != tt.want {
			t.Errorf("TermCode(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
