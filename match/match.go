// Package match implements the DFA stepper: a pure function that advances
// one compiled state by one input rune, per spec.md §4.6.
package match

import (
	"github.com/coregx/namedregex/dfa"
	"github.com/coregx/namedregex/region"
)

// Step tests r against every transition of table.Entries[state], in order,
// and returns the first match. It never panics and never mutates table: on
// no match it reports matched=false and returns state unchanged, leaving the
// caller (the Run driver, or any other stateful wrapper) to decide whether
// that is fatal.
func Step(table *dfa.Table, state int, r rune) (next int, regionName region.Name, matched bool) {
	for _, tr := range table.Entries[state].Transitions {
		if tr.Value.Matches(r) {
			return tr.Jump, tr.RegionName, true
		}
	}
	return state, region.Zero, false
}
