package dfa

import (
	"fmt"

	"github.com/coregx/namedregex/parser"
)

// Eval walks an RPN node sequence once with an auxiliary eval stack,
// computing Nullable/FirstPos/LastPos on every node and mutating FollowPos
// on operand leaves, per spec.md §4.4's followpos construction. It returns
// the operand leaves in position order (the order Eval assigned Position),
// which is exactly the state order the table builder needs.
func Eval(rpn []*parser.Node) ([]*parser.Node, error) {
	var stack []*parser.Node
	var operands []*parser.Node
	pos := 0

	pop := func(op parser.Op) (*parser.Node, error) {
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: %v operator has no operand on the eval stack", ErrImbalancedExpression, op)
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}

	for _, n := range rpn {
		switch {
		case n.IsOperand():
			n.Nullable = false
			n.FirstPos = []*parser.Node{n}
			n.LastPos = []*parser.Node{n}
			n.Position = pos
			pos++
			operands = append(operands, n)

		case n.Op == parser.OpKleene || n.Op == parser.OpRepeat:
			x, err := pop(n.Op)
			if err != nil {
				return nil, err
			}
			if n.Op == parser.OpKleene {
				n.Nullable = true
			} else {
				n.Nullable = x.Nullable
			}
			n.FirstPos = x.FirstPos
			n.LastPos = x.LastPos
			for _, l := range x.LastPos {
				l.FollowPos = append(l.FollowPos, x.FirstPos...)
			}

		case n.Op == parser.OpExist:
			x, err := pop(n.Op)
			if err != nil {
				return nil, err
			}
			n.Nullable = true
			n.FirstPos = x.FirstPos
			n.LastPos = x.LastPos

		case n.Op == parser.OpAltern:
			r, err := pop(n.Op)
			if err != nil {
				return nil, err
			}
			l, err := pop(n.Op)
			if err != nil {
				return nil, err
			}
			n.Nullable = l.Nullable || r.Nullable
			n.FirstPos = union(l.FirstPos, r.FirstPos)
			n.LastPos = union(l.LastPos, r.LastPos)

		case n.Op == parser.OpConcat:
			r, err := pop(n.Op)
			if err != nil {
				return nil, err
			}
			l, err := pop(n.Op)
			if err != nil {
				return nil, err
			}
			n.Nullable = l.Nullable && r.Nullable
			if l.Nullable {
				n.FirstPos = union(l.FirstPos, r.FirstPos)
			} else {
				n.FirstPos = l.FirstPos
			}
			if r.Nullable {
				n.LastPos = union(l.LastPos, r.LastPos)
			} else {
				n.LastPos = r.LastPos
			}
			for _, ll := range l.LastPos {
				ll.FollowPos = append(ll.FollowPos, r.FirstPos...)
			}

		default:
			return nil, fmt.Errorf("dfa: node with precedence %v is not valid in an RPN sequence", n.Precedence)
		}

		stack = append(stack, n)
	}

	return operands, nil
}

// union concatenates two position sets into a fresh slice. Spec.md §9 notes
// these sets are append-ordered and never deduplicated: duplicates only
// enlarge the compiled table, they never change matcher semantics, since the
// matcher always takes the first matching transition.
func union(a, b []*parser.Node) []*parser.Node {
	out := make([]*parser.Node, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
