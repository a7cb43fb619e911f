package stats

import (
	"sort"

	"github.com/novalabs/novacore/internal/core"
)

// AggregateDaily buckets closed trades by the calendar day of their exit
// and sums each day's net P&L and trade count. The result is sorted
// ascending by date so the equity curve can consume it directly.
func AggregateDaily(trades []core.DerivedTrade) []core.DayStats {
	byDay := make(map[string]*core.DayStats)
	for _, t := range trades {
		day := t.Day()
		d, ok := byDay[day]
		if !ok {
			d = &core.DayStats{Date: day}
			byDay[day] = d
		}
		d.NetPnl += t.PnlDollars
		d.TradeCount++
	}

	days := make([]core.DayStats, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
