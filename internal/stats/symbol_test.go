package stats

import (
	"testing"

	"github.com/novalabs/novacore/internal/core"
)

func symTrade(symbol string, pnl float64) core.DerivedTrade {
	tr := trade(pnl, 0)
	tr.Symbol = symbol
	return tr
}

func TestBySymbol(t *testing.T) {
	trades := []core.DerivedTrade{
		symTrade("NQU5", 100),
		symTrade("ESU5", -40),
		symTrade("NQU5", -20),
		symTrade("ESU5", 60),
		symTrade("NQU5", 30),
	}

	out := BySymbol(trades)
	if len(out) != 2 {
		t.Fatalf("got %d symbols, want 2", len(out))
	}

	es, nq := out[0], out[1]
	if es.Symbol != "ESU5" || nq.Symbol != "NQU5" {
		t.Fatalf("symbols not sorted: %s, %s", es.Symbol, nq.Symbol)
	}
	if es.Pnl != 20 || es.TradeCount != 2 || es.WinRate != 50 {
		t.Errorf("ESU5 = %+v, want pnl 20, count 2, winRate 50", es)
	}
	if nq.Pnl != 110 || nq.TradeCount != 3 {
		t.Errorf("NQU5 = %+v, want pnl 110, count 3", nq)
	}
	approx(t, "NQU5 win rate", nq.WinRate, 200.0/3)
}

func TestBySymbol_Empty(t *testing.T) {
	if out := BySymbol(nil); len(out) != 0 {
		t.Errorf("got %d, want 0", len(out))
	}
}
