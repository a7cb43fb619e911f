package stats

import (
	"sort"

	"github.com/novalabs/novacore/internal/core"
)

// BySymbol groups closed trades by symbol and computes per-symbol P&L,
// trade count and win rate. Output is sorted by symbol for stable
// presentation.
func BySymbol(trades []core.DerivedTrade) []core.SymbolStats {
	type acc struct {
		pnl     float64
		count   int
		winners int
	}

	bySym := make(map[string]*acc)
	for _, t := range trades {
		a, ok := bySym[t.Symbol]
		if !ok {
			a = &acc{}
			bySym[t.Symbol] = a
		}
		a.pnl += t.PnlDollars
		a.count++
		if t.IsWin() {
			a.winners++
		}
	}

	out := make([]core.SymbolStats, 0, len(bySym))
	for sym, a := range bySym {
		s := core.SymbolStats{Symbol: sym, Pnl: a.pnl, TradeCount: a.count}
		if a.count > 0 {
			s.WinRate = float64(a.winners) / float64(a.count) * 100
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
