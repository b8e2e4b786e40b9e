package parser

import (
	"fmt"

	"github.com/coregx/namedregex/token"
)

// Parse runs the shunting-yard algorithm over tokens (spec.md §4.3),
// inserting implicit CONCAT nodes where the grammar requires them, and
// returns the resulting postfix (RPN) node sequence plus the arena that
// owns every node it references.
func Parse(tokens []token.Token) ([]*Node, *Arena, error) {
	arena := NewArena()
	var opStack []*Node
	var rpn []*Node
	prevPrec := PrecInvalid

	push := func(n *Node) error {
		switch n.Precedence {
		case PrecOperand:
			rpn = append(rpn, n)
		case PrecOparen:
			opStack = append(opStack, n)
		case PrecCloparen:
			matched := false
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if top.Precedence == PrecOparen {
					matched = true
					break
				}
				rpn = append(rpn, top)
			}
			if !matched {
				return fmt.Errorf("%w: ')' with no matching '('", ErrUnbalancedParens)
			}
		default: // ALTERN, CONCAT, UNARY
			for len(opStack) > 0 && n.Precedence <= opStack[len(opStack)-1].Precedence {
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				rpn = append(rpn, top)
			}
			opStack = append(opStack, n)
		}
		return nil
	}

	for i := range tokens {
		n, err := nodeFor(arena, &tokens[i])
		if err != nil {
			return nil, nil, err
		}

		leftConcatable := prevPrec == PrecOperand || prevPrec == PrecUnary || prevPrec == PrecCloparen
		rightConcatable := n.Precedence == PrecOperand || n.Precedence == PrecOparen
		if leftConcatable && rightConcatable {
			if err := push(arena.newOperator(OpConcat, PrecConcat)); err != nil {
				return nil, nil, err
			}
		}

		if err := push(n); err != nil {
			return nil, nil, err
		}
		prevPrec = n.Precedence
	}

	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		if top.Precedence == PrecOparen {
			return nil, nil, fmt.Errorf("%w: '(' never closed", ErrUnbalancedParens)
		}
		rpn = append(rpn, top)
	}

	return rpn, arena, nil
}

// nodeFor builds the Node a single token contributes to the parse: an
// operand leaf, a paren marker, or an operator.
func nodeFor(arena *Arena, tok *token.Token) (*Node, error) {
	if !tok.NonMatching() {
		return arena.newOperand(tok), nil
	}

	c := tok.Value.(token.Character)
	switch c.MinRune {
	case '(':
		return arena.newParen(PrecOparen), nil
	case ')':
		return arena.newParen(PrecCloparen), nil
	case '|':
		return arena.newOperator(OpAltern, PrecAltern), nil
	case '*':
		return arena.newOperator(OpKleene, PrecUnary), nil
	case '?':
		return arena.newOperator(OpExist, PrecUnary), nil
	case '+':
		return arena.newOperator(OpRepeat, PrecUnary), nil
	default:
		return nil, fmt.Errorf("parser: unexpected structural token %q", c.MinRune)
	}
}
