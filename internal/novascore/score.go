// Package novascore computes the composite 0–100 Nova Score: a weighted
// blend of win rate, profit factor, average win/loss ratio, recovery
// factor, max drawdown and day-to-day consistency, plus the six-axis
// breakdown used by the radar chart.
package novascore

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// TradePoint is the minimal input the scorer needs: realized dollar P&L
// and the date it was realized.
type TradePoint struct {
	Pnl  float64
	Date time.Time
}

// Metrics are the six underlying axis values before weighting. Ratio
// metrics are the display values: uncapped, with the zero-denominator
// fallback (10 when the numerator is positive, 0 otherwise) applied.
type Metrics struct {
	WinRate            float64
	ProfitFactor       float64
	AvgWinLoss         float64
	RecoveryFactor     float64
	MaxDrawdownPercent float64
	Consistency        float64
}

// RadarAxis is one chart axis with its 0–100 display value.
type RadarAxis struct {
	Axis  string
	Value float64
}

// NovaScore is the scorer's full output.
type NovaScore struct {
	Score   int
	Label   string
	Metrics Metrics
	Radar   []RadarAxis
}

// Ratio caps and normalization targets. The scoring targets and the
// radar display targets deliberately differ: the score calibrates
// against "good enough" thresholds while the chart leaves headroom for
// exceptional values. Keep them separate.
const ratioCap = 10

type targets struct {
	profitFactor   float64
	avgWinLoss     float64
	recoveryFactor float64
}

var (
	scoreTargets = targets{profitFactor: 2, avgWinLoss: 2, recoveryFactor: 3}
	radarTargets = targets{profitFactor: 3, avgWinLoss: 3, recoveryFactor: 5}
)

// Score weights; they sum to 1.
const (
	weightWinRate      = 0.15
	weightProfitFactor = 0.20
	weightAvgWinLoss   = 0.15
	weightRecovery     = 0.15
	weightDrawdown     = 0.20
	weightConsistency  = 0.15
)

// Score computes the composite score over realized trade P&L. Empty
// input yields the fixed "No Data" result.
func Score(trades []TradePoint) NovaScore {
	if len(trades) == 0 {
		return NovaScore{Label: "No Data", Radar: radar(Metrics{})}
	}

	ordered := append([]TradePoint(nil), trades...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var winners, losers int
	var grossProfit, grossLoss, netProfit float64
	for _, t := range ordered {
		netProfit += t.Pnl
		if t.Pnl > 0 {
			winners++
			grossProfit += t.Pnl
		} else if t.Pnl < 0 {
			losers++
			grossLoss += -t.Pnl
		}
	}

	m := Metrics{
		WinRate: float64(winners) / float64(len(ordered)) * 100,
	}

	m.ProfitFactor = ratio(grossProfit, grossLoss)
	avgWin, avgLoss := 0.0, 0.0
	if winners > 0 {
		avgWin = grossProfit / float64(winners)
	}
	if losers > 0 {
		avgLoss = grossLoss / float64(losers)
	}
	m.AvgWinLoss = ratio(avgWin, avgLoss)

	maxDrawdown, maxDrawdownPct := drawdown(ordered)
	m.MaxDrawdownPercent = maxDrawdownPct
	m.RecoveryFactor = ratio(netProfit, maxDrawdown)
	m.Consistency = consistency(ordered)

	// The 10-cap applies to the scoring pass only; Metrics carry the
	// raw ratios for display.
	score := m.WinRate*weightWinRate +
		normalize(math.Min(m.ProfitFactor, ratioCap), scoreTargets.profitFactor)*100*weightProfitFactor +
		normalize(math.Min(m.AvgWinLoss, ratioCap), scoreTargets.avgWinLoss)*100*weightAvgWinLoss +
		normalize(math.Min(m.RecoveryFactor, ratioCap), scoreTargets.recoveryFactor)*100*weightRecovery +
		invertDrawdown(m.MaxDrawdownPercent)*weightDrawdown +
		m.Consistency*weightConsistency

	rounded := int(math.Round(clamp(score, 0, 100)))

	return NovaScore{
		Score:   rounded,
		Label:   label(rounded),
		Metrics: m,
		Radar:   radar(m),
	}
}

// ratio divides numerator by denominator with the shared fallback
// policy: a zero denominator means 10 when there is something to show
// and 0 otherwise. The quotient itself is not capped here.
func ratio(num, den float64) float64 {
	if den <= 0 {
		if num > 0 {
			return ratioCap
		}
		return 0
	}
	return num / den
}

// drawdown walks the trade-level cumulative equity and returns the
// largest observed peak-to-trough decline in dollars and as a percent
// of the running peak (0 when the peak never rises above zero).
func drawdown(trades []TradePoint) (maxDD, maxDDPercent float64) {
	var equity, peak float64
	for _, t := range trades {
		equity += t.Pnl
		if equity > peak {
			peak = equity
		}
		if dd := peak - equity; dd > maxDD {
			maxDD = dd
			if peak > 0 {
				maxDDPercent = dd / peak * 100
			}
		}
	}
	return maxDD, maxDDPercent
}

// consistency maps the coefficient of variation of daily P&L sums onto
// 0–100: a flat equity-building rhythm scores high, a lumpy one low.
// Fewer than two distinct days is insufficient signal and returns the
// neutral 50, not zero.
func consistency(trades []TradePoint) float64 {
	byDay := make(map[string]float64)
	for _, t := range trades {
		byDay[t.Date.Format("2006-01-02")] += t.Pnl
	}
	if len(byDay) < 2 {
		return 50
	}

	daily := make([]float64, 0, len(byDay))
	for _, pnl := range byDay {
		daily = append(daily, pnl)
	}

	mean := stat.Mean(daily, nil)
	stdDev := stat.PopStdDev(daily, nil)

	var cv float64
	switch {
	case mean != 0:
		cv = stdDev / math.Abs(mean)
	case stdDev == 0:
		cv = 0
	default:
		// Zero mean with nonzero spread: maximally inconsistent.
		return 0
	}

	return 100 * (1 - math.Min(cv/2, 1))
}

func normalize(v, target float64) float64 {
	return math.Min(v/target, 1)
}

func invertDrawdown(ddPercent float64) float64 {
	return math.Max(0, 100-2*ddPercent)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func label(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	default:
		return "Needs Work"
	}
}

// radar renders the six axes with the display normalization targets.
func radar(m Metrics) []RadarAxis {
	return []RadarAxis{
		{Axis: "Win Rate", Value: m.WinRate},
		{Axis: "Profit Factor", Value: normalize(m.ProfitFactor, radarTargets.profitFactor) * 100},
		{Axis: "Avg Win/Loss", Value: normalize(m.AvgWinLoss, radarTargets.avgWinLoss) * 100},
		{Axis: "Recovery", Value: normalize(m.RecoveryFactor, radarTargets.recoveryFactor) * 100},
		{Axis: "Drawdown", Value: invertDrawdown(m.MaxDrawdownPercent)},
		{Axis: "Consistency", Value: m.Consistency},
	}
}
