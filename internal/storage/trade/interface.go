// Package trade persists derived trades and open positions. The engine
// carries through originating execution ids only; this layer owns record
// identity and deduplication.
package trade

import (
	"context"
	"time"

	"github.com/novalabs/novacore/internal/core"
)

// StoredTrade is a derived trade with its storage identity attached.
type StoredTrade struct {
	ID string
	core.DerivedTrade
}

// StoredPosition is an open position with its storage identity attached.
type StoredPosition struct {
	ID string
	core.OpenPosition
}

// ListFilter defines criteria for listing stored trades.
type ListFilter struct {
	Symbol string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// Store defines the persistence boundary for derivation output.
// Upserts are idempotent: re-importing the same executions must not
// duplicate trades.
type Store interface {
	// UpsertTrades inserts or replaces trades, keyed on
	// (symbol, open execution id, close execution id). New records are
	// assigned ids; re-upserts keep their original id.
	UpsertTrades(ctx context.Context, trades []core.DerivedTrade) ([]StoredTrade, error)

	// ReplacePositions replaces the open position snapshot, which is
	// recomputed wholesale on every import.
	ReplacePositions(ctx context.Context, positions []core.OpenPosition) ([]StoredPosition, error)

	// GetTrade retrieves a trade by its storage id.
	GetTrade(ctx context.Context, id string) (*StoredTrade, error)

	// ListTrades retrieves trades matching the filter, ordered by exit time.
	ListTrades(ctx context.Context, filter ListFilter) ([]StoredTrade, error)

	// ListPositions retrieves the current open position snapshot.
	ListPositions(ctx context.Context) ([]StoredPosition, error)
}
