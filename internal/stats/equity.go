package stats

import "github.com/novalabs/novacore/internal/core"

// BuildEquityCurve folds ordered daily P&L into a cumulative equity
// series with a running peak. The first day's equity is its own net P&L
// and its drawdown is 0 by construction; the peak never decreases and
// drawdown is always <= 0.
func BuildEquityCurve(days []core.DayStats) []core.EquityPoint {
	if len(days) == 0 {
		return nil
	}

	points := make([]core.EquityPoint, 0, len(days))
	var equity, peak float64
	for i, d := range days {
		equity += d.NetPnl
		if i == 0 || equity > peak {
			peak = equity
		}
		points = append(points, core.EquityPoint{
			Date:     d.Date,
			Equity:   equity,
			Peak:     peak,
			Drawdown: equity - peak,
		})
	}
	return points
}
