package core

import (
	"errors"
	"testing"
	"time"
)

func validExecution() Execution {
	return Execution{
		ExternalID: "ex-1",
		Symbol:     "MESZ5",
		Side:       SideBuy,
		Quantity:   2,
		Price:      5850.25,
		ExecutedAt: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC),
		Currency:   "USD",
	}
}

func TestExecution_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Execution)
		wantErr error
	}{
		{"valid", func(e *Execution) {}, nil},
		{"missing symbol", func(e *Execution) { e.Symbol = "" }, ErrInvalidExecution},
		{"bad side", func(e *Execution) { e.Side = "HOLD" }, ErrInvalidSide},
		{"zero quantity", func(e *Execution) { e.Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(e *Execution) { e.Quantity = -1 }, ErrInvalidQuantity},
		{"zero price", func(e *Execution) { e.Price = 0 }, ErrInvalidPrice},
		{"zero time", func(e *Execution) { e.ExecutedAt = time.Time{} }, ErrInvalidExecution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExecution()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDerivedTrade_Day(t *testing.T) {
	trade := DerivedTrade{
		ExitTime: time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC),
	}
	if got := trade.Day(); got != "2025-06-02" {
		t.Errorf("Day() = %q, want 2025-06-02", got)
	}
}

func TestDerivedTrade_IsWin(t *testing.T) {
	if (DerivedTrade{PnlDollars: 0.01}).IsWin() != true {
		t.Error("positive pnl should be a win")
	}
	if (DerivedTrade{PnlDollars: 0}).IsWin() {
		t.Error("break-even is not a win")
	}
	if (DerivedTrade{PnlDollars: -5}).IsWin() {
		t.Error("negative pnl is not a win")
	}
}
