package namedregex

import (
	"errors"
	"fmt"

	"github.com/coregx/namedregex/dfa"
	"github.com/coregx/namedregex/lexer"
	"github.com/coregx/namedregex/parser"
)

// Stage names the compile_regex pipeline phase a CompileError originated
// from, so callers and tests can branch on where a pattern failed without
// string-matching the full message.
type Stage string

const (
	StageLexer Stage = "lexer"
	StageParse Stage = "parser"
	StageEval  Stage = "evaluator"
)

// Sentinel errors, one per spec.md §7 error kind. Each is a fresh value at
// this package's level rather than a re-export of a lexer/parser/dfa
// sentinel, because ErrUnbalancedParens alone has two possible origins (the
// lexer's fence_balance count check and the parser's paren-order check);
// CompileRegex wraps whichever underlying sentinel actually fired together
// with the matching one of these, so errors.Is(err, namedregex.ErrX) works
// regardless of which stage detected it.
var (
	ErrUnbalancedRegion     = errors.New("namedregex: unbalanced region braces")
	ErrUnterminatedClass    = errors.New("namedregex: unterminated character class")
	ErrRangeFraming         = errors.New("namedregex: malformed character range")
	ErrUnterminatedEscape   = errors.New("namedregex: pattern ends mid-escape")
	ErrUnbalancedParens     = errors.New("namedregex: unbalanced parentheses")
	ErrImbalancedExpression = errors.New("namedregex: imbalanced expression")

	// ErrPatternTooLong and ErrRegionTooDeep guard the resource bounds
	// CompileRegexWithConfig adds on top of spec.md (see Config).
	ErrPatternTooLong = errors.New("namedregex: pattern exceeds configured MaxPatternLength")
	ErrRegionTooDeep  = errors.New("namedregex: region nesting exceeds configured MaxRegionDepth")
)

// stageSentinel maps the underlying pipeline error (if any) to the Stage
// that raised it and the public sentinel it corresponds to, so CompileError
// can be built uniformly regardless of which package detected the failure.
func stageSentinel(err error) (Stage, error) {
	switch {
	case errors.Is(err, lexer.ErrRegionBraces):
		return StageLexer, ErrUnbalancedRegion
	case errors.Is(err, lexer.ErrClassFraming):
		return StageLexer, ErrUnterminatedClass
	case errors.Is(err, lexer.ErrRangeFraming):
		return StageLexer, ErrRangeFraming
	case errors.Is(err, lexer.ErrIncompleteEscape):
		return StageLexer, ErrUnterminatedEscape
	case errors.Is(err, lexer.ErrUnbalancedParens):
		return StageLexer, ErrUnbalancedParens
	case errors.Is(err, parser.ErrUnbalancedParens):
		return StageParse, ErrUnbalancedParens
	case errors.Is(err, dfa.ErrImbalancedExpression):
		return StageEval, ErrImbalancedExpression
	default:
		return "", nil
	}
}

// CompileError wraps a pipeline failure with the pattern that caused it and
// the Stage that detected it, mirroring the teacher's nfa.CompileError
// shape (Pattern + wrapped Err), extended with Stage for this multi-phase
// pipeline.
type CompileError struct {
	Pattern string
	Stage   Stage
	Err     error
}

// newCompileError builds a CompileError for err, tagging it with the Stage
// and public sentinel stageSentinel derives from it. err is kept as-is (not
// replaced) so the original lexer/parser/dfa message and position detail
// survive inside Unwrap's chain.
func newCompileError(pattern string, err error) *CompileError {
	stage, sentinel := stageSentinel(err)
	wrapped := err
	if sentinel != nil {
		wrapped = fmt.Errorf("%w: %w", sentinel, err)
	}
	return &CompileError{Pattern: pattern, Stage: stage, Err: wrapped}
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("namedregex: %s stage failed for pattern %q: %v", e.Stage, e.Pattern, e.Err)
}

// Unwrap returns the underlying stage error, so errors.Is/errors.As see
// through to the specific sentinel (ErrUnbalancedParens, etc.) and to the
// original lexer/parser/dfa error beneath it.
func (e *CompileError) Unwrap() error {
	return e.Err
}
