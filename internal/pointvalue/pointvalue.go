// Package pointvalue maps futures symbols to the dollar value of one
// point of price movement for a single contract.
package pointvalue

import "strings"

// rule matches a symbol if it contains any of the listed substrings.
// Rules are evaluated top to bottom and order is load-bearing: some
// symbols are substrings of others (MGC vs GC, MCL vs CL).
type rule struct {
	contains []string
	value    float64
}

// DefaultValue is returned for symbols with no matching rule: the price
// difference is treated as already denominated in dollars.
const DefaultValue = 1

var rules = []rule{
	{[]string{"MGC"}, 10}, // Micro Gold; must precede the GC rule
	{[]string{"ES", "MES"}, 50},
	{[]string{"NQ", "MNQ"}, 20},
	{[]string{"RTY", "M2K"}, 50},
	{[]string{"GC"}, 100},
	{[]string{"CL", "MCL"}, 1000},
	// Unreachable: the combined NQ/MNQ rule above always matches first.
	// Kept as-is because both carry the same value and removing it would
	// change lookup behavior if the earlier rule is ever split.
	{[]string{"MNQ"}, 20},
}

// Resolve returns the dollar value per point for the given symbol.
// Unknown symbols resolve to DefaultValue; there is no error path.
func Resolve(symbol string) float64 {
	for _, r := range rules {
		for _, sub := range r.contains {
			if strings.Contains(symbol, sub) {
				return r.value
			}
		}
	}
	return DefaultValue
}
