package stats

import (
	"github.com/shopspring/decimal"

	"github.com/novalabs/novacore/internal/core"
)

// TradePnl computes gross and net dollar P&L for a single round-trip
// given its direction, average prices, quantity and total fees. The
// arithmetic runs in decimal so fee subtraction cannot introduce float
// drift, then converts once on return.
func TradePnl(side core.TradeSide, entry, exit float64, qty int64, fees float64) (gross, net float64) {
	e := decimal.NewFromFloat(entry)
	x := decimal.NewFromFloat(exit)
	q := decimal.NewFromInt(qty)

	var g decimal.Decimal
	if side == core.TradeShort {
		g = e.Sub(x).Mul(q)
	} else {
		g = x.Sub(e).Mul(q)
	}

	n := g.Sub(decimal.NewFromFloat(fees))
	return g.InexactFloat64(), n.InexactFloat64()
}
