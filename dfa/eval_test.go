package dfa

import (
	"errors"
	"testing"

	"github.com/coregx/namedregex/lexer"
	"github.com/coregx/namedregex/parser"
)

// positionsOf renders a position slice as the operand's assigned state
// indices, for compact assertions.
func positionsOf(nodes []*parser.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Position
	}
	return out
}

func evalPattern(t *testing.T, pattern string) []*parser.Node {
	t.Helper()
	toks, err := lexer.Lex(pattern)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", pattern, err)
	}
	rpn, _, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	operands, err := Eval(rpn)
	if err != nil {
		t.Fatalf("Eval(%q) error: %v", pattern, err)
	}
	return operands
}

func TestEvalAssignsPositionsInOperandOrder(t *testing.T) {
	// "a" framed is S ( a ) # -> three operands: S, a, #.
	operands := evalPattern(t, "a")
	if len(operands) != 3 {
		t.Fatalf("got %d operands, want 3: %v", len(operands), operands)
	}
	if got := positionsOf(operands); got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("positions = %v, want [0 1 2]", got)
	}
}

func TestEvalConcatFollowPos(t *testing.T) {
	operands := evalPattern(t, "a")
	s, a, hash := operands[0], operands[1], operands[2]

	if got := positionsOf(s.FollowPos); len(got) != 1 || got[0] != a.Position {
		t.Errorf("S.FollowPos positions = %v, want [%d]", got, a.Position)
	}
	if got := positionsOf(a.FollowPos); len(got) != 1 || got[0] != hash.Position {
		t.Errorf("a.FollowPos positions = %v, want [%d]", got, hash.Position)
	}
	if len(hash.FollowPos) != 0 {
		t.Errorf("#.FollowPos = %v, want empty", hash.FollowPos)
	}
}

func TestEvalKleeneIsSelfLoopingAndNullable(t *testing.T) {
	// "a*": the * node is nullable, so S's followpos reaches past it
	// straight to '#', and 'a' loops back to itself as well as onward.
	operands := evalPattern(t, "a*")
	s, a, hash := operands[0], operands[1], operands[2]

	wantS := map[int]bool{a.Position: true, hash.Position: true}
	if got := positionsOf(s.FollowPos); len(got) != 2 || !wantS[got[0]] || !wantS[got[1]] {
		t.Errorf("S.FollowPos positions = %v, want %v (order not significant)", got, wantS)
	}
	wantA := map[int]bool{a.Position: true, hash.Position: true}
	if got := positionsOf(a.FollowPos); len(got) != 2 || !wantA[got[0]] || !wantA[got[1]] {
		t.Errorf("a.FollowPos positions = %v, want %v", got, wantA)
	}
}

func TestEvalAlternationUnionsFirstAndLastPos(t *testing.T) {
	// "a|b": framed S ( a | b ) #. Both a and b must be reachable directly
	// from S, and both must reach '#'.
	operands := evalPattern(t, "a|b")
	if len(operands) != 4 {
		t.Fatalf("got %d operands, want 4 (S a b #): %v", len(operands), operands)
	}
	s, a, b, hash := operands[0], operands[1], operands[2], operands[3]

	sFollow := positionsOf(s.FollowPos)
	if len(sFollow) != 2 {
		t.Fatalf("S.FollowPos = %v, want 2 entries", sFollow)
	}
	seen := map[int]bool{}
	for _, p := range sFollow {
		seen[p] = true
	}
	if !seen[a.Position] || !seen[b.Position] {
		t.Errorf("S.FollowPos positions = %v, want {a=%d, b=%d}", sFollow, a.Position, b.Position)
	}

	for _, leaf := range []*parser.Node{a, b} {
		got := positionsOf(leaf.FollowPos)
		if len(got) != 1 || got[0] != hash.Position {
			t.Errorf("leaf.FollowPos = %v, want [%d] (accept)", got, hash.Position)
		}
	}
}

func TestEvalRejectsImbalancedExpression(t *testing.T) {
	// A bare operator node with nothing on the eval stack under it: this
	// can't arise from a well-formed token stream through Parse, so it's
	// constructed directly to exercise Eval's own arity check.
	concatOnly := []*parser.Node{{Op: parser.OpConcat, Precedence: parser.PrecConcat}}
	if _, err := Eval(concatOnly); err == nil {
		t.Fatal("Eval: expected error for operator with no operands, got nil")
	} else if !errors.Is(err, ErrImbalancedExpression) {
		t.Errorf("Eval error = %v, want wrapping ErrImbalancedExpression", err)
	}
}
