package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/novalabs/novacore/internal/core"
	"github.com/novalabs/novacore/internal/novascore"
)

// Document is one archived analysis snapshot.
type Document struct {
	Account       string              `json:"account,omitempty"`
	GeneratedAt   time.Time           `json:"generated_at"`
	Trades        []core.DerivedTrade `json:"trades"`
	OpenPositions []core.OpenPosition `json:"open_positions"`
	Stats         core.TradeStats     `json:"stats"`
	Daily         []core.DayStats     `json:"daily"`
	Equity        []core.EquityPoint  `json:"equity"`
	Symbols       []core.SymbolStats  `json:"symbols"`
	Nova          novascore.NovaScore `json:"nova"`
}

// Archiver writes and reads analysis documents against a Backend.
type Archiver struct {
	backend Backend
}

// NewArchiver creates an Archiver on the given backend.
func NewArchiver(backend Backend) *Archiver {
	return &Archiver{backend: backend}
}

// pathFor lays documents out by generation date so prefix listing by
// year or month works on every backend.
func pathFor(doc Document) string {
	return fmt.Sprintf("%s/analysis-%s.json",
		doc.GeneratedAt.UTC().Format("2006/01"),
		doc.GeneratedAt.UTC().Format("20060102T150405Z"))
}

// Save serializes the document and writes it, returning the path.
func (a *Archiver) Save(ctx context.Context, doc Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	path := pathFor(doc)
	if err := a.backend.Write(ctx, path, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Load reads and decodes the document at path.
func (a *Archiver) Load(ctx context.Context, path string) (*Document, error) {
	data, err := a.backend.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &doc, nil
}

// List returns archived document paths under the prefix (e.g. "2025/06").
func (a *Archiver) List(ctx context.Context, prefix string) ([]string, error) {
	return a.backend.List(ctx, prefix)
}
