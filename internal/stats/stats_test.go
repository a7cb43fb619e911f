package stats

import (
	"math"
	"testing"
	"time"

	"github.com/novalabs/novacore/internal/core"
)

var day1 = time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

// trade builds a closed trade with the given dollar P&L exiting on
// day1 + dayOffset.
func trade(pnl float64, dayOffset int) core.DerivedTrade {
	return core.DerivedTrade{
		Symbol:     "ESU5",
		PnlDollars: pnl,
		ExitTime:   day1.AddDate(0, 0, dayOffset),
	}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// Reference fixture: [100, 200, -100] on day 1, [-50, 0] on day 2,
// [150] on day 3.
func referenceTrades() []core.DerivedTrade {
	return []core.DerivedTrade{
		trade(100, 0), trade(200, 0), trade(-100, 0),
		trade(-50, 1), trade(0, 1),
		trade(150, 2),
	}
}

func TestCompute_ReferenceScenario(t *testing.T) {
	s := Compute(referenceTrades())

	if s.TotalTrades != 6 {
		t.Errorf("TotalTrades = %d, want 6", s.TotalTrades)
	}
	if s.WinningTrades != 3 || s.LosingTrades != 2 || s.BreakEvenTrades != 1 {
		t.Errorf("buckets = %d/%d/%d, want 3/2/1",
			s.WinningTrades, s.LosingTrades, s.BreakEvenTrades)
	}
	approx(t, "NetPnl", s.NetPnl, 300)
	approx(t, "TradeWinRate", s.TradeWinRate, 50)
	if !s.ProfitFactorValid {
		t.Error("ProfitFactorValid = false, want true")
	}
	approx(t, "ProfitFactor", s.ProfitFactor, 3.0) // 450 / 150
	approx(t, "AvgWin", s.AvgWin, 150)
	approx(t, "AvgLoss", s.AvgLoss, 75)
	approx(t, "AvgWinLossRatio", s.AvgWinLossRatio, 2.0)
	if s.TradingDays != 3 || s.WinningDays != 2 || s.LosingDays != 1 {
		t.Errorf("days = %d/%d/%d, want 3/2/1", s.TradingDays, s.WinningDays, s.LosingDays)
	}
	approx(t, "DailyWinRate", s.DailyWinRate, 66.7)
}

func TestCompute_BucketsSumToTotal(t *testing.T) {
	sets := [][]core.DerivedTrade{
		nil,
		{trade(5, 0)},
		{trade(-5, 0), trade(0, 0)},
		referenceTrades(),
	}
	for _, trades := range sets {
		s := Compute(trades)
		if s.WinningTrades+s.LosingTrades+s.BreakEvenTrades != s.TotalTrades {
			t.Errorf("buckets %d+%d+%d != total %d",
				s.WinningTrades, s.LosingTrades, s.BreakEvenTrades, s.TotalTrades)
		}
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	// An empty journal has zero profit and zero loss, so its profit
	// factor is a valid zero, never the infinite sentinel.
	want := core.TradeStats{ProfitFactorValid: true}
	if s != want {
		t.Errorf("empty input: got %+v, want %+v", s, want)
	}
}

func TestCompute_AllWinners(t *testing.T) {
	s := Compute([]core.DerivedTrade{trade(10, 0), trade(20, 0)})
	if s.ProfitFactorValid {
		t.Error("profit factor with no losses should be flagged as unbounded")
	}
	approx(t, "TradeWinRate", s.TradeWinRate, 100)
	approx(t, "AvgWinLossRatio", s.AvgWinLossRatio, 0) // no losers to ratio against
}

func TestCompute_AllBreakEven(t *testing.T) {
	s := Compute([]core.DerivedTrade{trade(0, 0), trade(0, 1)})
	if !s.ProfitFactorValid || s.ProfitFactor != 0 {
		t.Errorf("zero-profit zero-loss profit factor = %v/%v, want 0/valid",
			s.ProfitFactor, s.ProfitFactorValid)
	}
	if s.WinningDays != 0 || s.LosingDays != 0 {
		t.Errorf("break-even days counted as winning or losing")
	}
	if s.TradingDays != 2 {
		t.Errorf("TradingDays = %d, want 2", s.TradingDays)
	}
}
