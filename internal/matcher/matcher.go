// Package matcher derives round-trip trades from a time-ordered stream
// of broker executions by FIFO position matching across partial fills.
package matcher

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/novalabs/novacore/internal/core"
	"github.com/novalabs/novacore/internal/pointvalue"
)

// Resolver maps a symbol to the dollar value of one point of movement.
type Resolver func(symbol string) float64

// Matcher turns executions into closed round-trip trades plus residual
// open positions. It holds no state between calls; Match is pure.
type Matcher struct {
	resolve Resolver
}

// New creates a Matcher using the default point value table.
func New() *Matcher {
	return &Matcher{resolve: pointvalue.Resolve}
}

// NewWithResolver creates a Matcher with a custom point value resolver.
func NewWithResolver(r Resolver) *Matcher {
	return &Matcher{resolve: r}
}

// openLot is one open fill awaiting an opposite-side match. Quantity is
// decremented in place as closes consume it; the lot is dropped when it
// reaches zero. Lots never outlive their symbol's matching pass.
type openLot struct {
	side        core.Side
	quantity    int64
	price       float64
	time        time.Time
	executionID string
}

// partialClose is one FIFO match event inside a round-trip in progress.
type partialClose struct {
	entryPrice  float64
	exitPrice   float64
	quantity    int64
	entryTime   time.Time
	exitTime    time.Time
	pnlPoints   decimal.Decimal
	openExecID  string
	closeExecID string
}

// Match processes executions in ascending time order and returns closed
// trades plus any unmatched open positions. Input is sorted defensively;
// executions are partitioned by symbol and each symbol is matched
// independently.
func (m *Matcher) Match(executions []core.Execution) ([]core.DerivedTrade, []core.OpenPosition) {
	symbols, bySymbol := partition(executions)

	var trades []core.DerivedTrade
	var open []core.OpenPosition
	for _, sym := range symbols {
		t, o := m.matchSymbol(sym, bySymbol[sym])
		trades = append(trades, t...)
		open = append(open, o...)
	}

	sortResults(trades, open)
	return trades, open
}

// MatchParallel is Match with the per-symbol passes fanned out across
// goroutines. Symbol passes share nothing, so the only coordination is
// collecting results; output is identical to Match.
func (m *Matcher) MatchParallel(executions []core.Execution) ([]core.DerivedTrade, []core.OpenPosition) {
	symbols, bySymbol := partition(executions)

	var mu sync.Mutex
	var wg sync.WaitGroup
	var trades []core.DerivedTrade
	var open []core.OpenPosition

	for _, sym := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			t, o := m.matchSymbol(sym, bySymbol[sym])
			mu.Lock()
			trades = append(trades, t...)
			open = append(open, o...)
			mu.Unlock()
		}(sym)
	}
	wg.Wait()

	sortResults(trades, open)
	return trades, open
}

// partition sorts executions by time and groups them by symbol,
// preserving first-seen symbol order.
func partition(executions []core.Execution) ([]string, map[string][]core.Execution) {
	sorted := append([]core.Execution(nil), executions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutedAt.Before(sorted[j].ExecutedAt)
	})

	var symbols []string
	bySymbol := make(map[string][]core.Execution)
	for _, e := range sorted {
		if _, ok := bySymbol[e.Symbol]; !ok {
			symbols = append(symbols, e.Symbol)
		}
		bySymbol[e.Symbol] = append(bySymbol[e.Symbol], e)
	}
	return symbols, bySymbol
}

func sortResults(trades []core.DerivedTrade, open []core.OpenPosition) {
	sort.SliceStable(trades, func(i, j int) bool {
		if !trades[i].ExitTime.Equal(trades[j].ExitTime) {
			return trades[i].ExitTime.Before(trades[j].ExitTime)
		}
		return trades[i].Symbol < trades[j].Symbol
	})
	sort.SliceStable(open, func(i, j int) bool {
		if open[i].Symbol != open[j].Symbol {
			return open[i].Symbol < open[j].Symbol
		}
		return open[i].OpenedAt.Before(open[j].OpenedAt)
	})
}

// matchSymbol runs the FIFO pass for one symbol's executions, already in
// ascending time order.
func (m *Matcher) matchSymbol(symbol string, execs []core.Execution) ([]core.DerivedTrade, []core.OpenPosition) {
	var trades []core.DerivedTrade
	var queue []*openLot
	var closes []partialClose

	pointValue := m.resolve(symbol)

	for _, exec := range execs {
		remaining := exec.Quantity

		// Opposite side against an open queue: consume lots oldest first.
		if len(queue) > 0 && exec.Side != queue[0].side {
			for remaining > 0 && len(queue) > 0 {
				lot := queue[0]
				matched := min64(remaining, lot.quantity)

				closes = append(closes, newPartialClose(lot, exec, matched))

				lot.quantity -= matched
				remaining -= matched
				if lot.quantity == 0 {
					queue = queue[1:]
				}
			}

			// Flat again: the round-trip is complete.
			if len(queue) == 0 && len(closes) > 0 {
				trades = append(trades, finalize(exec, symbol, closes, pointValue))
				closes = nil
			}
		}

		// Leftover quantity opens a new lot: either the execution was
		// same-side from the start, or it reversed through flat and the
		// excess starts a fresh position on the opposite side.
		if remaining > 0 {
			queue = append(queue, &openLot{
				side:        exec.Side,
				quantity:    remaining,
				price:       exec.Price,
				time:        exec.ExecutedAt,
				executionID: exec.ExternalID,
			})
		}
	}

	open := make([]core.OpenPosition, 0, len(queue))
	for _, lot := range queue {
		open = append(open, core.OpenPosition{
			Symbol:      symbol,
			Side:        lot.side,
			Quantity:    lot.quantity,
			Price:       lot.price,
			OpenedAt:    lot.time,
			ExecutionID: lot.executionID,
		})
	}
	return trades, open
}

// newPartialClose records one matched slice of quantity between an open
// lot and the closing execution. P&L is signed per the lot's direction
// and accumulated in decimal so partial closes cannot drift.
func newPartialClose(lot *openLot, exec core.Execution, matched int64) partialClose {
	entry := decimal.NewFromFloat(lot.price)
	exit := decimal.NewFromFloat(exec.Price)
	qty := decimal.NewFromInt(matched)

	var pnl decimal.Decimal
	if lot.side == core.SideBuy {
		pnl = exit.Sub(entry).Mul(qty)
	} else {
		pnl = entry.Sub(exit).Mul(qty)
	}

	return partialClose{
		entryPrice:  lot.price,
		exitPrice:   exec.Price,
		quantity:    matched,
		entryTime:   lot.time,
		exitTime:    exec.ExecutedAt,
		pnlPoints:   pnl,
		openExecID:  lot.executionID,
		closeExecID: exec.ExternalID,
	}
}

// finalize folds the accumulated partial closes into one DerivedTrade.
// The dollar conversion is applied once to the summed points, not per
// partial close, so rounding happens exactly once per round-trip.
func finalize(exec core.Execution, symbol string, closes []partialClose, pointValue float64) core.DerivedTrade {
	var qty int64
	pnlPoints := decimal.Zero
	entryWeighted := decimal.Zero
	exitWeighted := decimal.Zero
	entryTime := closes[0].entryTime
	exitTime := closes[0].exitTime

	for _, pc := range closes {
		q := decimal.NewFromInt(pc.quantity)
		qty += pc.quantity
		pnlPoints = pnlPoints.Add(pc.pnlPoints)
		entryWeighted = entryWeighted.Add(decimal.NewFromFloat(pc.entryPrice).Mul(q))
		exitWeighted = exitWeighted.Add(decimal.NewFromFloat(pc.exitPrice).Mul(q))
		if pc.entryTime.Before(entryTime) {
			entryTime = pc.entryTime
		}
		if pc.exitTime.After(exitTime) {
			exitTime = pc.exitTime
		}
	}

	totalQty := decimal.NewFromInt(qty)
	pv := decimal.NewFromFloat(pointValue)

	// The position's direction is the side of its opening lots: the
	// closing execution is the opposite side by construction.
	side := core.TradeLong
	if exec.Side == core.SideBuy {
		side = core.TradeShort
	}

	return core.DerivedTrade{
		Symbol:           symbol,
		Product:          exec.Product,
		Description:      exec.Description,
		Side:             side,
		Quantity:         qty,
		EntryPrice:       entryWeighted.Div(totalQty).InexactFloat64(),
		ExitPrice:        exitWeighted.Div(totalQty).InexactFloat64(),
		EntryTime:        entryTime,
		ExitTime:         exitTime,
		PnlPoints:        pnlPoints.InexactFloat64(),
		PnlDollars:       pnlPoints.Mul(pv).Round(2).InexactFloat64(),
		OpenExecutionID:  closes[0].openExecID,
		CloseExecutionID: closes[len(closes)-1].closeExecID,
		Currency:         exec.Currency,
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
