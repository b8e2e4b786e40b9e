// Package token defines the character-test vocabulary and the lexical
// Token type shared by the lexer, parser, and followpos evaluator.
//
// A Token either consumes exactly one input rune (an operand, carrying a
// Value) or is a structural marker (paren, alternation, unary operator)
// that the parser consumes but the matcher never tests against input.
package token

import (
	"fmt"
	"unicode"

	"github.com/coregx/namedregex/region"
)

// CharacterKind tags what predicate a Character tests, mirroring spec.md's
// CharacterKind sum type. NonMatching is reserved for structural tokens
// (parens, alternation, unary operators) that are never evaluated against
// an input rune.
type CharacterKind uint8

const (
	NonMatching CharacterKind = iota
	Exact
	Range
	Num
	NotNum
	Lower
	NotLower
	Upper
	NotUpper
	Word
	NotWord
	Whitespace
	NotWhitespace
	VerticalWhitespace
	NotVerticalWhitespace
	HorizontalWhitespace
	NotHorizontalWhitespace
)

// String returns a human-readable name, used in error messages.
func (k CharacterKind) String() string {
	switch k {
	case NonMatching:
		return "NonMatching"
	case Exact:
		return "Exact"
	case Range:
		return "Range"
	case Num:
		return "Num"
	case NotNum:
		return "NotNum"
	case Lower:
		return "Lower"
	case NotLower:
		return "NotLower"
	case Upper:
		return "Upper"
	case NotUpper:
		return "NotUpper"
	case Word:
		return "Word"
	case NotWord:
		return "NotWord"
	case Whitespace:
		return "Whitespace"
	case NotWhitespace:
		return "NotWhitespace"
	case VerticalWhitespace:
		return "VerticalWhitespace"
	case NotVerticalWhitespace:
		return "NotVerticalWhitespace"
	case HorizontalWhitespace:
		return "HorizontalWhitespace"
	case NotHorizontalWhitespace:
		return "NotHorizontalWhitespace"
	default:
		return fmt.Sprintf("CharacterKind(%d)", uint8(k))
	}
}

// Value is the CharacterValue sum type: either a Character or a
// CharacterClass. Both implement Matches, so the matcher and table builder
// can treat a Transition's value uniformly without a type switch.
type Value interface {
	isValue()
	// Matches reports whether r satisfies this value's predicate.
	Matches(r rune) bool
}

// Character is a single-rune test: a literal, a range, or a shorthand
// predicate. For Exact and every shorthand kind only MinRune is meaningful
// (it holds the source rune, kept for diagnostics); for Range both bounds
// are inclusive.
type Character struct {
	MinRune rune
	MaxRune rune
	Kind    CharacterKind
}

func (Character) isValue() {}

// isNumber implements spec.md's is_number: ASCII '0'..'9'.
func isNumber(r rune) bool {
	return r >= '0' && r <= '9'
}

// isVerticalWhitespace implements spec.md's is_vertical_ws.
func isVerticalWhitespace(r rune) bool {
	switch r {
	case '\u000A', '\u000B', '\u000C', '\u000D', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

func isWord(r rune) bool {
	return isNumber(r) || unicode.IsLetter(r) || r == '_'
}

// Matches reports whether r satisfies c's predicate, per spec.md §4.7.
//
// NotHorizontalWhitespace is deliberately implemented as
// "is_vertical_ws ∧ ¬is_whitespace" exactly as spec.md §4.7 defines it. That
// predicate is always false (every vertical-whitespace rune is also
// whitespace), which contradicts the shorthand's name. This is a pinned,
// known-odd behavior inherited from the spec, not a bug in this port — see
// spec.md §9 "Open questions" and DESIGN.md.
func (c Character) Matches(r rune) bool {
	switch c.Kind {
	case Exact:
		return r == c.MinRune
	case Range:
		return r >= c.MinRune && r <= c.MaxRune
	case Num:
		return isNumber(r)
	case NotNum:
		return !isNumber(r)
	case Lower:
		return unicode.IsLower(r)
	case NotLower:
		return !unicode.IsLower(r)
	case Upper:
		return unicode.IsUpper(r)
	case NotUpper:
		return !unicode.IsUpper(r)
	case Word:
		return isWord(r)
	case NotWord:
		return !isWord(r)
	case Whitespace:
		return unicode.IsSpace(r)
	case NotWhitespace:
		return !unicode.IsSpace(r)
	case VerticalWhitespace:
		return isVerticalWhitespace(r)
	case NotVerticalWhitespace:
		return !isVerticalWhitespace(r)
	case HorizontalWhitespace:
		return unicode.IsSpace(r) && !isVerticalWhitespace(r)
	case NotHorizontalWhitespace:
		return isVerticalWhitespace(r) && !unicode.IsSpace(r)
	case NonMatching:
		return false
	default:
		return false
	}
}

// CharacterClass is a bracketed `[...]` set of Characters. Negated inverts
// the combined predicate of the whole set (via XOR, per spec.md §4.6), so an
// empty negated class (`[^]`) matches every rune rather than none.
type CharacterClass struct {
	Elements []Character
	Negated  bool
}

func (CharacterClass) isValue() {}

// Matches reports whether r is matched by any element, negated as a whole.
func (cc CharacterClass) Matches(r rune) bool {
	any := false
	for _, e := range cc.Elements {
		if e.Matches(r) {
			any = true
			break
		}
	}
	return cc.Negated != any
}

// Token is a single lexed unit: either an operand that consumes one input
// rune, or a structural marker whose Value is a Character of Kind
// NonMatching (see the NonMatching method). SourceIndex
// records insertion order, used as a stable identity during parsing;
// RegionName is the innermost `{name:...}` scope active when the token was
// produced, or region.Zero if none.
type Token struct {
	Value       Value
	SourceIndex int
	RegionName  region.Name
}

// NonMatching reports whether t is a structural marker never tested
// against input (paren, alternation, unary operator).
func (t Token) NonMatching() bool {
	c, ok := t.Value.(Character)
	return ok && c.Kind == NonMatching
}
