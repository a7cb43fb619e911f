package stats

import (
	"testing"

	"github.com/novalabs/novacore/internal/core"
)

func TestTradePnl(t *testing.T) {
	tests := []struct {
		name      string
		side      core.TradeSide
		entry     float64
		exit      float64
		qty       int64
		fees      float64
		wantGross float64
		wantNet   float64
	}{
		{"winning long", core.TradeLong, 100, 110, 10, 5, 100, 95},
		{"winning short", core.TradeShort, 100, 90, 10, 5, 100, 95},
		{"losing long", core.TradeLong, 100, 95, 10, 5, -50, -55},
		{"losing short", core.TradeShort, 100, 103, 2, 1, -6, -7},
		{"flat with fees", core.TradeLong, 100, 100, 1, 2.5, 0, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross, net := TradePnl(tt.side, tt.entry, tt.exit, tt.qty, tt.fees)
			approx(t, "gross", gross, tt.wantGross)
			approx(t, "net", net, tt.wantNet)
		})
	}
}
