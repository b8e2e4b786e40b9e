package parser

import "errors"

// ErrUnbalancedParens is returned when a ')' closes with no matching '('
// on the operator stack, or an '(' is left unmatched once the token stream
// is exhausted. The lexer's fence_balance check only catches a paren
// *count* mismatch; an *ordering* mismatch like "))((" passes that check
// (two open, two close) and is only caught here, during shunting-yard. A
// single premature ')' is absorbed by the lexer's synthetic outer '(', so
// ")(" is not rejected here.
var ErrUnbalancedParens = errors.New("parser: unbalanced parentheses")
