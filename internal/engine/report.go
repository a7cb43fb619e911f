package engine

import (
	"fmt"
	"strings"
)

// FormatProfitFactor renders a profit factor for display. An unbounded
// factor (profits with zero losses) renders as the infinity symbol;
// arithmetic consumers must use the struct fields instead.
func FormatProfitFactor(value float64, valid bool) string {
	if !valid {
		return "∞"
	}
	return fmt.Sprintf("%.2f", value)
}

// RenderReport renders a plain-text performance report.
func RenderReport(r *Result) string {
	var b strings.Builder
	s := r.Stats

	b.WriteString("===== Trading Report =====\n")
	fmt.Fprintf(&b, "Total Trades:       %d\n", s.TotalTrades)
	fmt.Fprintf(&b, "Open Positions:     %d\n", len(r.OpenPositions))

	b.WriteString("\n-- Performance --\n")
	fmt.Fprintf(&b, "Net P&L:            %.2f\n", s.NetPnl)
	fmt.Fprintf(&b, "Win Rate:           %.1f%% (%dW / %dL / %dBE)\n",
		s.TradeWinRate, s.WinningTrades, s.LosingTrades, s.BreakEvenTrades)
	fmt.Fprintf(&b, "Profit Factor:      %s\n", FormatProfitFactor(s.ProfitFactor, s.ProfitFactorValid))
	fmt.Fprintf(&b, "Avg Win:            %.2f\n", s.AvgWin)
	fmt.Fprintf(&b, "Avg Loss:           %.2f\n", s.AvgLoss)
	fmt.Fprintf(&b, "Avg Win/Loss:       %.2f\n", s.AvgWinLossRatio)

	b.WriteString("\n-- Daily --\n")
	fmt.Fprintf(&b, "Trading Days:       %d\n", s.TradingDays)
	fmt.Fprintf(&b, "Daily Win Rate:     %.1f%% (%dW / %dL)\n",
		s.DailyWinRate, s.WinningDays, s.LosingDays)
	if n := len(r.Equity); n > 0 {
		last := r.Equity[n-1]
		fmt.Fprintf(&b, "Final Equity:       %.2f\n", last.Equity)
		fmt.Fprintf(&b, "Current Drawdown:   %.2f\n", last.Drawdown)
	}

	if len(r.Symbols) > 0 {
		b.WriteString("\n-- Symbols --\n")
		for _, sym := range r.Symbols {
			fmt.Fprintf(&b, "%-10s %10.2f  (%d trades, %.1f%% win)\n",
				sym.Symbol, sym.Pnl, sym.TradeCount, sym.WinRate)
		}
	}

	b.WriteString("\n-- Nova Score --\n")
	fmt.Fprintf(&b, "Score:              %d (%s)\n", r.Nova.Score, r.Nova.Label)
	for _, axis := range r.Nova.Radar {
		fmt.Fprintf(&b, "  %-14s %.1f\n", axis.Axis, axis.Value)
	}

	b.WriteString("==========================\n")
	return b.String()
}
