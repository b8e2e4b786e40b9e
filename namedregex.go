// Package namedregex compiles a small, region-tagging pattern language
// directly into a position-indexed DFA via the classical followpos
// construction — no NFA stage, no backtracking, no submatch extraction.
// Named `{name:...}` scopes in the pattern tag every matched character with
// the innermost enclosing region, which a caller reads back off each
// transition instead of extracting numbered capture groups.
package namedregex

import (
	"github.com/coregx/namedregex/dfa"
	"github.com/coregx/namedregex/lexer"
	"github.com/coregx/namedregex/match"
	"github.com/coregx/namedregex/parser"
	"github.com/coregx/namedregex/region"
)

// CompileRegex lexes, parses, and evaluates pattern into a compiled Table,
// using DefaultConfig's resource bounds. It is the Go-idiomatic rendition
// of spec.md §6's `compile_regex(pattern) -> (table, error, ok)`: Go folds
// `ok` into `err == nil`, the same way the teacher's own
// `Compile(pattern) (*Regex, error)` does (see DESIGN.md's Open Question
// decision).
func CompileRegex(pattern string) (*dfa.Table, error) {
	return CompileRegexWithConfig(pattern, DefaultConfig())
}

// MustCompileRegex is CompileRegex but panics on error, for call sites
// compiling a pattern known to be valid (e.g. a package-level var
// initializer), mirroring the teacher's MustCompile-style helpers.
func MustCompileRegex(pattern string) *dfa.Table {
	t, err := CompileRegex(pattern)
	if err != nil {
		panic("namedregex: MustCompileRegex(" + pattern + "): " + err.Error())
	}
	return t
}

// CompileRegexWithConfig is CompileRegex with explicit resource bounds.
// Pattern length and region nesting depth are checked before lexing even
// starts, so a pathological input is rejected in O(len(pattern)) time
// without ever running the full pipeline on it.
func CompileRegexWithConfig(pattern string, cfg Config) (*dfa.Table, error) {
	if len(pattern) > cfg.MaxPatternLength {
		return nil, newCompileError(pattern, ErrPatternTooLong)
	}
	if depth := maxRegionDepth(pattern); depth > cfg.MaxRegionDepth {
		return nil, newCompileError(pattern, ErrRegionTooDeep)
	}

	toks, err := lexer.Lex(pattern)
	if err != nil {
		return nil, newCompileError(pattern, err)
	}

	rpn, _, err := parser.Parse(toks)
	if err != nil {
		return nil, newCompileError(pattern, err)
	}

	operands, err := dfa.Eval(rpn)
	if err != nil {
		return nil, newCompileError(pattern, err)
	}

	return dfa.Build(operands), nil
}

// maxRegionDepth is a best-effort prepass over raw braces, run before the
// lexer's own state machine exists yet. It doesn't track escape or
// character-class context: a literal '{' or '}' inside `[...]` or after '\'
// still moves the count, so the result can be higher or lower than the
// lexer's real region-stack depth.
func maxRegionDepth(pattern string) int {
	depth, maxDepth := 0, 0
	for _, r := range pattern {
		switch r {
		case '{':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return maxDepth
}

// RegionTag pairs one consumed input rune with the region Step tagged it
// with while matching.
type RegionTag struct {
	Rune   rune
	Region region.Name
}

// Run feeds input, followed by the synthetic '#' sentinel every compiled
// Table ends on, through match.Step one rune at a time starting from state
// 0. It is the minimal driver spec.md §1 calls for ("a stepper that
// consumes one input code point at a time against a compiled table"),
// grounded on the teacher's Regex.Match/Regex.Find convenience wrappers
// over the lower-level matching primitive.
//
// matched is true only if every rune of input, plus the trailing '#', was
// consumed without Step ever reporting a failed transition. tags holds one
// entry per successfully consumed rune of input (the trailing '#' itself is
// not included), in order.
func Run(t *dfa.Table, input string) (matched bool, tags []RegionTag, err error) {
	state := 0
	for _, r := range input {
		next, rn, ok := match.Step(t, state, r)
		if !ok {
			return false, tags, nil
		}
		state = next
		tags = append(tags, RegionTag{Rune: r, Region: rn})
	}

	if _, _, ok := match.Step(t, state, '#'); !ok {
		return false, tags, nil
	}

	return true, tags, nil
}
