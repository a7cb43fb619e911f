package trade

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/novalabs/novacore/internal/core"
)

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu        sync.RWMutex
	trades    map[string]StoredTrade // dedup key -> record
	positions []StoredPosition
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trades: make(map[string]StoredTrade),
	}
}

// dedupKey identifies a round-trip independently of storage identity.
func dedupKey(t core.DerivedTrade) string {
	return t.Symbol + "|" + t.OpenExecutionID + "|" + t.CloseExecutionID
}

// UpsertTrades inserts or replaces trades by dedup key.
func (m *MemoryStore) UpsertTrades(ctx context.Context, trades []core.DerivedTrade) ([]StoredTrade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]StoredTrade, 0, len(trades))
	for _, t := range trades {
		key := dedupKey(t)
		stored, ok := m.trades[key]
		if !ok {
			stored = StoredTrade{ID: uuid.NewString()}
		}
		stored.DerivedTrade = t
		m.trades[key] = stored
		out = append(out, stored)
	}
	return out, nil
}

// ReplacePositions swaps the open position snapshot.
func (m *MemoryStore) ReplacePositions(ctx context.Context, positions []core.OpenPosition) ([]StoredPosition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.positions = make([]StoredPosition, 0, len(positions))
	for _, p := range positions {
		m.positions = append(m.positions, StoredPosition{
			ID:           uuid.NewString(),
			OpenPosition: p,
		})
	}
	return append([]StoredPosition(nil), m.positions...), nil
}

// GetTrade retrieves a trade by storage id.
func (m *MemoryStore) GetTrade(ctx context.Context, id string) (*StoredTrade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.trades {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, core.ErrTradeNotFound
}

// ListTrades returns trades matching the filter, ordered by exit time.
func (m *MemoryStore) ListTrades(ctx context.Context, filter ListFilter) ([]StoredTrade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []StoredTrade
	for _, t := range m.trades {
		if m.matches(t, filter) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExitTime.Before(result[j].ExitTime)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []StoredTrade{}, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

// ListPositions returns the current open position snapshot.
func (m *MemoryStore) ListPositions(ctx context.Context) ([]StoredPosition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]StoredPosition(nil), m.positions...), nil
}

func (m *MemoryStore) matches(t StoredTrade, filter ListFilter) bool {
	if filter.Symbol != "" && t.Symbol != filter.Symbol {
		return false
	}
	if !filter.From.IsZero() && t.ExitTime.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && t.ExitTime.After(filter.To) {
		return false
	}
	return true
}
