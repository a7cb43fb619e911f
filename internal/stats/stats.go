// Package stats computes aggregate performance metrics over closed
// round-trip trades. Every function is total: empty input yields a
// zeroed result, never NaN or a panic.
package stats

import (
	"math"

	"github.com/novalabs/novacore/internal/core"
)

// Compute derives aggregate trade statistics from closed trades.
func Compute(trades []core.DerivedTrade) core.TradeStats {
	var s core.TradeStats
	if len(trades) == 0 {
		// Zero profit and zero loss: the zero profit factor is valid,
		// not the infinite sentinel.
		s.ProfitFactorValid = true
		return s
	}

	s.TotalTrades = len(trades)

	dayPnl := make(map[string]float64)
	for _, t := range trades {
		pnl := t.PnlDollars
		s.NetPnl += pnl
		dayPnl[t.Day()] += pnl

		switch {
		case pnl > 0:
			s.WinningTrades++
			s.GrossProfit += pnl
		case pnl < 0:
			s.LosingTrades++
			s.GrossLoss += -pnl
		default:
			s.BreakEvenTrades++
		}
	}

	s.TradeWinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100

	switch {
	case s.GrossLoss > 0:
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
		s.ProfitFactorValid = true
	case s.GrossProfit == 0:
		// No profits and no losses: zero, and valid as such.
		s.ProfitFactorValid = true
	default:
		// Profits with no losses: unbounded. Callers render a sentinel.
		s.ProfitFactorValid = false
	}

	if s.WinningTrades > 0 {
		s.AvgWin = s.GrossProfit / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = s.GrossLoss / float64(s.LosingTrades)
	}
	if s.AvgLoss > 0 {
		s.AvgWinLossRatio = s.AvgWin / s.AvgLoss
	}

	s.TradingDays = len(dayPnl)
	for _, pnl := range dayPnl {
		if pnl > 0 {
			s.WinningDays++
		} else if pnl < 0 {
			s.LosingDays++
		}
	}
	if s.TradingDays > 0 {
		rate := float64(s.WinningDays) / float64(s.TradingDays) * 100
		s.DailyWinRate = math.Round(rate*10) / 10
	}

	return s
}
