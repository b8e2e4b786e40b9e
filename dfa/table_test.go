package dfa

import (
	"testing"

	"github.com/coregx/namedregex/lexer"
	"github.com/coregx/namedregex/parser"
	"github.com/coregx/namedregex/token"
)

func buildPattern(t *testing.T, pattern string) *Table {
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
	return Build(operands)
}

func TestBuildLinearChain(t *testing.T) {
	// "a" framed as S(a)# yields three states chained in sequence, each
	// with exactly one outgoing transition.
	table := buildPattern(t, "a")
	if len(table.Entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(table.Entries), table.Entries)
	}

	tr0 := table.Entries[0].Transitions
	if len(tr0) != 1 || tr0[0].Jump != 1 {
		t.Fatalf("entry 0 transitions = %+v, want one transition to state 1", tr0)
	}
	c0, ok := tr0[0].Value.(token.Character)
	if !ok || c0.MinRune != 'a' {
		t.Errorf("entry 0 transition value = %+v, want literal 'a'", tr0[0].Value)
	}

	tr1 := table.Entries[1].Transitions
	if len(tr1) != 1 || tr1[0].Jump != 2 {
		t.Fatalf("entry 1 transitions = %+v, want one transition to state 2", tr1)
	}
	c1, ok := tr1[0].Value.(token.Character)
	if !ok || c1.MinRune != '#' {
		t.Errorf("entry 1 transition value = %+v, want '#'", tr1[0].Value)
	}

	if len(table.Entries[2].Transitions) != 0 {
		t.Errorf("entry 2 (accept) transitions = %+v, want none", table.Entries[2].Transitions)
	}
}

func TestBuildKleeneSelfLoop(t *testing.T) {
	// "a*" gives state 1 ('a' consumed) two transitions: looping back to
	// itself on another 'a', or falling through to accept on '#'. State 0
	// carries the same two options, since '*' is nullable.
	table := buildPattern(t, "a*")
	if len(table.Entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(table.Entries), table.Entries)
	}

	for _, idx := range []int{0, 1} {
		trs := table.Entries[idx].Transitions
		if len(trs) != 2 {
			t.Fatalf("entry %d transitions = %+v, want 2", idx, trs)
		}
		sawLoop, sawAccept := false, false
		for _, tr := range trs {
			c := tr.Value.(token.Character)
			switch {
			case c.MinRune == 'a' && tr.Jump == 1:
				sawLoop = true
			case c.MinRune == '#' && tr.Jump == 2:
				sawAccept = true
			}
		}
		if !sawLoop || !sawAccept {
			t.Errorf("entry %d transitions = %+v, want one 'a'->1 and one '#'->2", idx, trs)
		}
	}
}

func TestBuildCharacterClassElementsAreOwnedCopies(t *testing.T) {
	table := buildPattern(t, "[a-z0-9_]")
	// state 0 transitions into the class operand.
	trs := table.Entries[0].Transitions
	if len(trs) != 1 {
		t.Fatalf("entry 0 transitions = %+v, want 1", trs)
	}
	cc, ok := trs[0].Value.(token.CharacterClass)
	if !ok {
		t.Fatalf("entry 0 transition value = %+v, want CharacterClass", trs[0].Value)
	}
	if len(cc.Elements) != 3 {
		t.Fatalf("class elements = %+v, want 3", cc.Elements)
	}
	if cc.Elements[0].MinRune != 'a' || cc.Elements[0].MaxRune != 'z' {
		t.Errorf("element 0 = %+v, want range a-z", cc.Elements[0])
	}
}

func TestBuildRegionNamesSurviveOnTransitions(t *testing.T) {
	table := buildPattern(t, "{outer:a}")
	trs := table.Entries[0].Transitions
	if len(trs) != 1 {
		t.Fatalf("entry 0 transitions = %+v, want 1", trs)
	}
	if trs[0].RegionName.String() != "outer" {
		t.Errorf("transition region = %q, want %q", trs[0].RegionName.String(), "outer")
	}
}
