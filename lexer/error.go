package lexer

import "errors"

// Sentinel errors, one per error kind spec.md §7 assigns to the lexer.
// CompileRegex wraps whichever of these escapes Lex in a *CompileError so
// callers can still use errors.Is against the stable sentinel.
var (
	// ErrRegionBraces covers '}' without a matching '{' and a pattern
	// ending mid-name (NAMING state never reaching ':').
	ErrRegionBraces = errors.New("lexer: unbalanced region braces")

	// ErrClassFraming covers ']' without '[', a nested '[' inside a class,
	// and an unterminated '[' (class never closed before end of input).
	ErrClassFraming = errors.New("lexer: malformed character class")

	// ErrRangeFraming covers '-' with no left endpoint, a range missing
	// its right endpoint at end of input, a shorthand used as a range
	// endpoint, and '.' used as a range endpoint.
	ErrRangeFraming = errors.New("lexer: malformed character range")

	// ErrIncompleteEscape covers a pattern ending right after '\'.
	ErrIncompleteEscape = errors.New("lexer: incomplete escape sequence")

	// ErrUnbalancedParens covers too many '(' or too many ')'.
	ErrUnbalancedParens = errors.New("lexer: unbalanced parentheses")
)
