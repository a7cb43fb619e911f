package core

import "time"

// Side represents the direction of a single execution (fill).
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// TradeSide represents the direction of a round-trip trade.
type TradeSide string

const (
	TradeLong  TradeSide = "LONG"
	TradeShort TradeSide = "SHORT"
)

// Execution is one normalized broker fill: a single side, quantity and
// price at a timestamp. Producing these from broker-specific export
// formats is the ingestion layer's job; the engine assumes they are valid.
type Execution struct {
	ExternalID  string
	Symbol      string
	Product     string
	Description string
	Side        Side
	Quantity    int64
	Price       float64
	ExecutedAt  time.Time
	Currency    string
}

// Validate checks the invariants the engine relies on.
func (e Execution) Validate() error {
	if e.Symbol == "" {
		return ErrInvalidExecution
	}
	if e.Side != SideBuy && e.Side != SideSell {
		return ErrInvalidSide
	}
	if e.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if e.Price <= 0 {
		return ErrInvalidPrice
	}
	if e.ExecutedAt.IsZero() {
		return ErrInvalidExecution
	}
	return nil
}

// OpenPosition is an unmatched open lot remaining after all executions
// for a symbol have been processed. Quantity is the still-open remainder.
type OpenPosition struct {
	Symbol      string
	Side        Side
	Quantity    int64
	Price       float64
	OpenedAt    time.Time
	ExecutionID string
}

// DerivedTrade is one completed round-trip: the aggregation of FIFO
// partial closes that brought a symbol's position from flat back to flat.
// Entry and exit prices are quantity-weighted averages across all partial
// closes, not first/last fill prices.
type DerivedTrade struct {
	Symbol           string
	Product          string
	Description      string
	Side             TradeSide
	Quantity         int64
	EntryPrice       float64
	ExitPrice        float64
	EntryTime        time.Time
	ExitTime         time.Time
	PnlPoints        float64
	PnlDollars       float64
	OpenExecutionID  string
	CloseExecutionID string
	Currency         string
}

// IsWin reports whether the trade closed with positive dollar P&L.
func (t DerivedTrade) IsWin() bool {
	return t.PnlDollars > 0
}

// Day returns the calendar day of the trade's exit, in the exit
// timestamp's location. All daily bucketing keys off this.
func (t DerivedTrade) Day() string {
	return t.ExitTime.Format("2006-01-02")
}

// TradeStats holds aggregate performance metrics over a set of closed
// trades. A zero value is the correct result for an empty trade set.
type TradeStats struct {
	TotalTrades     int
	WinningTrades   int
	LosingTrades    int
	BreakEvenTrades int

	NetPnl      float64
	GrossProfit float64
	GrossLoss   float64 // absolute value

	TradeWinRate float64 // percent

	// ProfitFactor is gross profit over gross loss. When there are
	// profits but no losses the ratio is unbounded: ProfitFactorValid is
	// false and callers must render a sentinel (e.g. "∞") instead of the
	// zero value.
	ProfitFactor      float64
	ProfitFactorValid bool

	AvgWin          float64
	AvgLoss         float64 // absolute value
	AvgWinLossRatio float64

	TradingDays  int
	WinningDays  int
	LosingDays   int
	DailyWinRate float64 // percent, one decimal place
}

// DayStats is the per-calendar-day rollup of closed trades, keyed by the
// day of the exit timestamp.
type DayStats struct {
	Date       string // "2006-01-02"
	NetPnl     float64
	TradeCount int
}

// EquityPoint is one day on the cumulative equity curve. Drawdown is
// equity minus the running peak and is always <= 0.
type EquityPoint struct {
	Date     string
	Equity   float64
	Peak     float64
	Drawdown float64
}

// SymbolStats is the per-symbol rollup of closed trades.
type SymbolStats struct {
	Symbol     string
	Pnl        float64
	TradeCount int
	WinRate    float64 // percent
}
