// Package engine orchestrates the full analysis pipeline: executions in,
// matched trades and every derived view model out.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/novalabs/novacore/internal/core"
	"github.com/novalabs/novacore/internal/matcher"
	"github.com/novalabs/novacore/internal/metrics"
	"github.com/novalabs/novacore/internal/novascore"
	"github.com/novalabs/novacore/internal/stats"
	"github.com/novalabs/novacore/internal/storage/trade"
)

// Result is the complete analysis output for one execution set.
type Result struct {
	Trades        []core.DerivedTrade
	OpenPositions []core.OpenPosition
	Stats         core.TradeStats
	Daily         []core.DayStats
	Equity        []core.EquityPoint
	Symbols       []core.SymbolStats
	Nova          novascore.NovaScore
	GeneratedAt   time.Time
}

// Engine runs the derivation and analytics pipeline. It is stateless
// between calls; Analyze is safe for concurrent use.
type Engine struct {
	matcher  *matcher.Matcher
	log      *zap.Logger
	registry *metrics.Registry
	store    trade.Store
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the engine is silent without one.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithMetrics attaches a metrics registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithStore persists derivation output after each analysis: trades are
// upserted by dedup key and the open position snapshot is replaced.
func WithStore(s trade.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithResolver overrides the point value table.
func WithResolver(r matcher.Resolver) Option {
	return func(e *Engine) { e.matcher = matcher.NewWithResolver(r) }
}

// WithParallelMatching fans the per-symbol matching passes out across
// goroutines. Results are identical to the sequential path.
func WithParallelMatching() Option {
	return func(e *Engine) { e.parallel = true }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		matcher: matcher.New(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze matches the executions into round-trip trades and computes all
// downstream analytics in one pass.
func (e *Engine) Analyze(executions []core.Execution) *Result {
	start := time.Now()

	var trades []core.DerivedTrade
	var open []core.OpenPosition
	if e.parallel {
		trades, open = e.matcher.MatchParallel(executions)
	} else {
		trades, open = e.matcher.Match(executions)
	}

	daily := stats.AggregateDaily(trades)

	points := make([]novascore.TradePoint, 0, len(trades))
	for _, t := range trades {
		points = append(points, novascore.TradePoint{Pnl: t.PnlDollars, Date: t.ExitTime})
	}

	result := &Result{
		Trades:        trades,
		OpenPositions: open,
		Stats:         stats.Compute(trades),
		Daily:         daily,
		Equity:        stats.BuildEquityCurve(daily),
		Symbols:       stats.BySymbol(trades),
		Nova:          novascore.Score(points),
		GeneratedAt:   time.Now().UTC(),
	}

	if e.store != nil {
		e.persist(trades, open)
	}

	elapsed := time.Since(start)
	if e.registry != nil {
		e.registry.ObserveAnalysis(len(executions), len(trades), len(open), elapsed)
	}
	e.log.Debug("analysis complete",
		zap.Int("executions", len(executions)),
		zap.Int("trades", len(trades)),
		zap.Int("open_positions", len(open)),
		zap.Int("nova_score", result.Nova.Score),
		zap.Duration("elapsed", elapsed),
	)

	return result
}

// persist upserts the derived trades and replaces the open position
// snapshot. Persistence failures are logged, never fatal: the analysis
// result is already complete.
func (e *Engine) persist(trades []core.DerivedTrade, open []core.OpenPosition) {
	ctx := context.Background()
	if _, err := e.store.UpsertTrades(ctx, trades); err != nil {
		e.log.Warn("persisting trades", zap.Error(err))
	}
	if _, err := e.store.ReplacePositions(ctx, open); err != nil {
		e.log.Warn("persisting positions", zap.Error(err))
	}
}
