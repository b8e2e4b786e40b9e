// Package lexer implements the pattern tokenizer: spec.md §4.2's multi-state
// classifier that turns a pattern string into a flat array of token.Token,
// framed by synthetic "S" (start) and "#" (accept) operands so every
// compiled table has a canonical, uniquely-named start and accept state.
package lexer

import (
	"fmt"

	"github.com/coregx/namedregex/region"
	"github.com/coregx/namedregex/token"
)

// state identifies one of the lexer's classifier states.
type state int

const (
	stateNormal state = iota
	stateNaming
	stateEscape
	stateClassStart
	stateClass
	stateClassRange
	stateClassRangeEscape
	stateClassEscape
)

var startName = region.MustEncode("start")
var acceptName = region.MustEncode("accept")

// lexer holds the state-machine's mutable working set: the region-name
// stack (seeded with region.Zero for "no region"), the name/class
// accumulators being built, and the paren-balance counter.
type lexer struct {
	runes []rune
	pos   int

	state state

	tokens []token.Token
	next   int

	regionStack []region.Name
	regionAccum []rune

	classElems   []token.Character
	classNegated bool

	fenceBalance int
}

// Lex tokenizes pattern, returning the framed token array S ( ... ) # or an
// error describing the first structural problem encountered.
func Lex(pattern string) ([]token.Token, error) {
	l := &lexer{
		runes:       []rune(pattern),
		regionStack: []region.Name{region.Zero},
	}

	l.emit(token.Character{MinRune: 'S', Kind: token.Exact}, startName)
	l.emit(token.Character{MinRune: '(', Kind: token.NonMatching}, region.Zero)
	l.fenceBalance++

	for l.pos < len(l.runes) {
		r := l.runes[l.pos]
		l.pos++
		if err := l.step(r); err != nil {
			return nil, err
		}
	}

	if err := l.checkTerminal(); err != nil {
		return nil, err
	}

	l.emit(token.Character{MinRune: ')', Kind: token.NonMatching}, region.Zero)
	l.fenceBalance--
	if l.fenceBalance != 0 {
		return nil, fmt.Errorf("%w: %d unclosed '('", ErrUnbalancedParens, l.fenceBalance)
	}

	l.emit(token.Character{MinRune: '#', Kind: token.Exact}, acceptName)

	return l.tokens, nil
}

func (l *lexer) currentRegion() region.Name {
	return l.regionStack[len(l.regionStack)-1]
}

func (l *lexer) emit(v token.Value, rn region.Name) {
	l.tokens = append(l.tokens, token.Token{Value: v, SourceIndex: l.next, RegionName: rn})
	l.next++
}

// step feeds one input rune through the current classifier state.
func (l *lexer) step(r rune) error {
	switch l.state {
	case stateNormal:
		return l.stepNormal(r)
	case stateNaming:
		return l.stepNaming(r)
	case stateEscape:
		return l.stepEscape(r)
	case stateClassStart:
		return l.stepClassStart(r)
	case stateClass:
		return l.stepClass(r)
	case stateClassRange:
		return l.stepClassRange(r)
	case stateClassRangeEscape:
		return l.stepClassRangeEscape(r)
	case stateClassEscape:
		return l.stepClassEscape(r)
	default:
		panic(fmt.Sprintf("lexer: unreachable state %d", l.state))
	}
}

func (l *lexer) stepNormal(r rune) error {
	switch r {
	case '{':
		l.regionAccum = l.regionAccum[:0]
		l.state = stateNaming
	case '}':
		if len(l.regionStack) == 1 {
			return fmt.Errorf("%w: '}' without matching '{'", ErrRegionBraces)
		}
		l.regionStack = l.regionStack[:len(l.regionStack)-1]
	case '\\':
		l.state = stateEscape
	case '[':
		l.classElems = nil
		l.classNegated = false
		l.state = stateClassStart
	case ']':
		return fmt.Errorf("%w: ']' without matching '['", ErrClassFraming)
	case '(':
		l.emit(token.Character{MinRune: '(', Kind: token.NonMatching}, l.currentRegion())
		l.fenceBalance++
	case ')':
		l.emit(token.Character{MinRune: ')', Kind: token.NonMatching}, l.currentRegion())
		l.fenceBalance--
	case '|', '*', '?', '+':
		l.emit(token.Character{MinRune: r, Kind: token.NonMatching}, l.currentRegion())
	case '.':
		l.emit(token.Character{MinRune: '.', Kind: token.NotVerticalWhitespace}, l.currentRegion())
	default:
		l.emit(token.Character{MinRune: r, Kind: token.Exact}, l.currentRegion())
	}
	return nil
}

func (l *lexer) stepNaming(r rune) error {
	if r != ':' {
		l.regionAccum = append(l.regionAccum, r)
		return nil
	}
	name, err := region.Encode(string(l.regionAccum))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegionBraces, err)
	}
	l.regionStack = append(l.regionStack, name)
	l.state = stateNormal
	return nil
}

func (l *lexer) stepEscape(r rune) error {
	l.emit(classifyEscape(r), l.currentRegion())
	l.state = stateNormal
	return nil
}

func (l *lexer) stepClassStart(r rune) error {
	switch r {
	case '^':
		l.classNegated = true
		l.state = stateClass
	case '-':
		return fmt.Errorf("%w: '-' with no left endpoint", ErrRangeFraming)
	case ']':
		l.closeClass()
	case '\\':
		l.state = stateClassEscape
	case '[':
		return fmt.Errorf("%w: nested '[' inside character class", ErrClassFraming)
	case '.':
		l.classElems = append(l.classElems, token.Character{MinRune: '.', Kind: token.NotVerticalWhitespace})
		l.state = stateClass
	default:
		l.classElems = append(l.classElems, token.Character{MinRune: r, Kind: token.Exact})
		l.state = stateClass
	}
	return nil
}

func (l *lexer) stepClass(r rune) error {
	switch r {
	case '-':
		if len(l.classElems) == 0 {
			return fmt.Errorf("%w: '-' with no left endpoint", ErrRangeFraming)
		}
		l.state = stateClassRange
	case '\\':
		l.state = stateClassEscape
	case '[':
		return fmt.Errorf("%w: nested '[' inside character class", ErrClassFraming)
	case ']':
		l.closeClass()
	case '.':
		l.classElems = append(l.classElems, token.Character{MinRune: '.', Kind: token.NotVerticalWhitespace})
	default:
		l.classElems = append(l.classElems, token.Character{MinRune: r, Kind: token.Exact})
	}
	return nil
}

func (l *lexer) stepClassEscape(r rune) error {
	l.classElems = append(l.classElems, classifyEscape(r))
	l.state = stateClass
	return nil
}

func (l *lexer) stepClassRange(r rune) error {
	top := &l.classElems[len(l.classElems)-1]
	if top.Kind != token.Exact {
		return fmt.Errorf("%w: shorthand class cannot be a range endpoint", ErrRangeFraming)
	}
	switch r {
	case '.':
		return fmt.Errorf("%w: '.' cannot be a range endpoint", ErrRangeFraming)
	case '\\':
		l.state = stateClassRangeEscape
	default:
		top.MaxRune = r
		top.Kind = token.Range
		l.state = stateClass
	}
	return nil
}

func (l *lexer) stepClassRangeEscape(r rune) error {
	esc := classifyEscape(r)
	if esc.Kind != token.Exact {
		return fmt.Errorf("%w: shorthand escape cannot be a range endpoint", ErrRangeFraming)
	}
	top := &l.classElems[len(l.classElems)-1]
	top.MaxRune = esc.MinRune
	top.Kind = token.Range
	l.state = stateClass
	return nil
}

func (l *lexer) closeClass() {
	elems := make([]token.Character, len(l.classElems))
	copy(elems, l.classElems)
	l.emit(token.CharacterClass{Elements: elems, Negated: l.classNegated}, l.currentRegion())
	l.state = stateNormal
}

// checkTerminal validates that the pattern didn't end mid-construct.
func (l *lexer) checkTerminal() error {
	switch l.state {
	case stateNormal:
		return nil
	case stateNaming:
		return fmt.Errorf("%w: pattern ends mid-name", ErrRegionBraces)
	case stateEscape:
		return fmt.Errorf("%w: pattern ends right after '\\'", ErrIncompleteEscape)
	case stateClassStart, stateClass, stateClassEscape:
		return fmt.Errorf("%w: unterminated '['", ErrClassFraming)
	case stateClassRange, stateClassRangeEscape:
		return fmt.Errorf("%w: range missing right endpoint", ErrRangeFraming)
	default:
		panic(fmt.Sprintf("lexer: unreachable terminal state %d", l.state))
	}
}

// classifyEscape implements spec.md §4.2's ESCAPE/CLASS_ESCAPE shorthand
// table. MinRune on a shorthand-kind Character stores the escape letter
// itself for diagnostics, per spec.md §3's "for EXACT and shorthand kinds
// only min_rune is meaningful".
func classifyEscape(r rune) token.Character {
	switch r {
	case 'd':
		return token.Character{MinRune: r, Kind: token.Num}
	case 'D':
		return token.Character{MinRune: r, Kind: token.NotNum}
	case 'l':
		return token.Character{MinRune: r, Kind: token.Lower}
	case 'L':
		return token.Character{MinRune: r, Kind: token.NotLower}
	case 'u':
		return token.Character{MinRune: r, Kind: token.Upper}
	case 'U':
		return token.Character{MinRune: r, Kind: token.NotUpper}
	case 'w':
		return token.Character{MinRune: r, Kind: token.Word}
	case 'W':
		return token.Character{MinRune: r, Kind: token.NotWord}
	case 's':
		return token.Character{MinRune: r, Kind: token.Whitespace}
	case 'S':
		return token.Character{MinRune: r, Kind: token.NotWhitespace}
	case 'v':
		return token.Character{MinRune: r, Kind: token.VerticalWhitespace}
	case 'V':
		return token.Character{MinRune: r, Kind: token.NotVerticalWhitespace}
	case 'h':
		return token.Character{MinRune: r, Kind: token.HorizontalWhitespace}
	case 'H':
		return token.Character{MinRune: r, Kind: token.NotHorizontalWhitespace}
	case 'a':
		return token.Character{MinRune: '\a', Kind: token.Exact}
	case 'b':
		return token.Character{MinRune: '\b', Kind: token.Exact}
	case 't':
		return token.Character{MinRune: '\t', Kind: token.Exact}
	case 'r':
		return token.Character{MinRune: '\r', Kind: token.Exact}
	case 'f':
		return token.Character{MinRune: '\f', Kind: token.Exact}
	case 'n':
		return token.Character{MinRune: '\n', Kind: token.Exact}
	case 'e':
		return token.Character{MinRune: '\x1b', Kind: token.Exact}
	default:
		return token.Character{MinRune: r, Kind: token.Exact}
	}
}
