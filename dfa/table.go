package dfa

import (
	"github.com/coregx/namedregex/internal/conv"
	"github.com/coregx/namedregex/parser"
	"github.com/coregx/namedregex/token"
)

// Build turns the operand leaves Eval produced into a fully compiled Table,
// per spec.md §4.5. operands must be ordered by Position (0, 1, 2, ...),
// which is exactly what Eval returns.
//
// Sizes are computed in a prepass, then three backing slices — entries,
// transitions, characters — are each allocated exactly once, sized from
// that prepass, and carved into contiguous per-entry / per-class
// sub-slices. There is no incremental append-growth during the fill pass:
// every slice is written into its pre-sized backing array at a known
// offset, mirroring the single-block-allocation shape spec.md calls for.
//
// Every Jump on every Transition is a Position from this same operand set,
// so bounding the operand count bounds every jump target Build can ever
// emit; IntToUint32 panics here rather than silently truncating an index
// a caller would otherwise chase into the wrong state.
func Build(operands []*parser.Node) *Table {
	_ = conv.IntToUint32(len(operands))

	transitionCount := 0
	characterCount := 0
	for _, op := range operands {
		transitionCount += len(op.FollowPos)
		for _, dst := range op.FollowPos {
			if cc, ok := dst.Token.Value.(token.CharacterClass); ok {
				characterCount += len(cc.Elements)
			}
		}
	}

	entries := make([]Entry, len(operands))
	transitions := make([]Transition, transitionCount)
	characters := make([]token.Character, characterCount)

	tPos, cPos := 0, 0
	for i, op := range operands {
		start := tPos
		for _, dst := range op.FollowPos {
			tr := Transition{
				Value:      dst.Token.Value,
				Jump:       dst.Position,
				RegionName: dst.Token.RegionName,
			}
			if cc, ok := dst.Token.Value.(token.CharacterClass); ok {
				elemStart := cPos
				cPos += copy(characters[cPos:], cc.Elements)
				tr.Value = token.CharacterClass{
					Elements: characters[elemStart:cPos],
					Negated:  cc.Negated,
				}
			}
			transitions[tPos] = tr
			tPos++
		}
		entries[i] = Entry{Transitions: transitions[start:tPos]}
	}

	return &Table{Entries: entries}
}
