package dfa

import "errors"

// ErrImbalancedExpression is returned when the RPN sequence handed to Eval
// calls for more operands than the eval stack holds — an operator token
// with nothing (or only one operand) beneath it. The parser's shunting-yard
// pass only checks paren balance; arity mismatches like a stray leading
// operator are a property of the expression tree, not the token stream, so
// they can only be caught here.
var ErrImbalancedExpression = errors.New("dfa: imbalanced expression")
