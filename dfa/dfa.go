// Package dfa implements the followpos symbolic evaluator and table builder
// that turn a parsed RPN node sequence directly into a position-indexed DFA,
// per spec.md §4.4-4.6 — no intermediate NFA, no backtracking.
package dfa

import (
	"github.com/coregx/namedregex/region"
	"github.com/coregx/namedregex/token"
)

// Transition is one edge out of a Table state: consume a rune matching
// Value, move to Jump, and tag the move with RegionName.
type Transition struct {
	Value      token.Value
	Jump       int
	RegionName region.Name
}

// Entry holds every outgoing Transition for one DFA state, tested in order.
type Entry struct {
	Transitions []Transition
}

// Table is the fully compiled, immutable DFA: entry i is the state reached
// after matching operand i, so operand insertion order from Eval doubles as
// the state index (spec.md §4.5's "state numbering" design choice). Every
// Transition.Jump is an index into Entries.
type Table struct {
	Entries []Entry
}
