package pointvalue

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		symbol string
		want   float64
	}{
		{"MGCQ5", 10},
		{"GCQ5", 100},
		{"ESU5", 50},
		{"MESU5", 50},
		{"NQU5", 20},
		{"MNQU5", 20},
		{"RTYU5", 50},
		{"M2KU5", 50},
		{"CLV5", 1000},
		{"MCLV5", 1000},
		{"AAPL", 1},
		{"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			if got := Resolve(tt.symbol); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}
}

// Micro Gold contains both MGC and GC; the MGC rule must win.
func TestResolve_SubstringPriority(t *testing.T) {
	if got := Resolve("MGC"); got != 10 {
		t.Fatalf("Resolve(MGC) = %v, want 10", got)
	}
}
