package engine

import (
	"strings"
	"testing"

	"github.com/novalabs/novacore/internal/core"
)

func TestFormatProfitFactor(t *testing.T) {
	if got := FormatProfitFactor(3.0, true); got != "3.00" {
		t.Errorf("got %q, want 3.00", got)
	}
	if got := FormatProfitFactor(0, false); got != "∞" {
		t.Errorf("got %q, want ∞", got)
	}
}

func TestRenderReport(t *testing.T) {
	r := New().Analyze(sampleExecutions())
	out := RenderReport(r)

	for _, want := range []string{
		"Trading Report",
		"Total Trades:       2",
		"Open Positions:     1",
		"NQU5",
		"ESU5",
		"Nova Score",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

// An empty journal has zero profit and zero loss: the report shows a
// plain zero profit factor, not the infinity sentinel.
func TestRenderReport_EmptyJournal(t *testing.T) {
	out := RenderReport(New().Analyze(nil))
	if !strings.Contains(out, "Profit Factor:      0.00") {
		t.Errorf("empty report should render a zero profit factor:\n%s", out)
	}
}

// Profits with no losses must render the infinity sentinel, never a
// number that could leak into arithmetic.
func TestRenderReport_InfiniteProfitFactor(t *testing.T) {
	r := New().Analyze([]core.Execution{
		exec("e1", "X", core.SideBuy, 1, 10, 0),
		exec("e2", "X", core.SideSell, 1, 15, 1),
	})
	out := RenderReport(r)
	if !strings.Contains(out, "Profit Factor:      ∞") {
		t.Errorf("report should render ∞ for unbounded profit factor:\n%s", out)
	}
}
