// Package parser turns a lexed token array into a postfix (RPN) sequence of
// parse-tree nodes, via the classic shunting-yard algorithm with implicit
// concatenation insertion (spec.md §4.3).
package parser

import "github.com/coregx/namedregex/token"

// Op identifies an operator node. The zero value, OpNone, marks operand and
// paren-marker nodes, neither of which carries an operator.
type Op int

const (
	OpNone Op = iota
	OpAltern
	OpConcat
	OpKleene
	OpExist
	OpRepeat
)

func (op Op) String() string {
	switch op {
	case OpAltern:
		return "|"
	case OpConcat:
		return "."
	case OpKleene:
		return "*"
	case OpExist:
		return "?"
	case OpRepeat:
		return "+"
	default:
		return "none"
	}
}

// Precedence orders nodes for the shunting-yard algorithm. Values match
// spec.md §3 exactly: OPAREN(0) < ALTERN(1) < CONCAT(2) < UNARY(3), with
// OPERAND and CLOPAREN handled as special cases rather than by magnitude.
type Precedence int

const (
	PrecInvalid  Precedence = -2
	PrecOperand  Precedence = -1
	PrecOparen   Precedence = 0
	PrecAltern   Precedence = 1
	PrecConcat   Precedence = 2
	PrecUnary    Precedence = 3
	PrecCloparen Precedence = 4
)

// Node is a parse-tree entry, arena-allocated by Arena so that FirstPos,
// LastPos, and FollowPos can hold plain *Node references instead of
// separately-owned copies. Token is populated only on operand nodes; Op
// only on operator nodes (ALTERN/CONCAT/KLEENE/EXIST/REPEAT). Nullable,
// FirstPos, LastPos, FollowPos, and Position start zero-valued and are
// filled in by the followpos evaluator (package dfa) as it walks the RPN
// sequence — Position stays -1 until assigned, since 0 is a valid state
// index.
type Node struct {
	Token      *token.Token
	Op         Op
	Precedence Precedence

	Nullable  bool
	FirstPos  []*Node
	LastPos   []*Node
	FollowPos []*Node
	Position  int
}

// IsOperand reports whether n is a leaf that consumes one input rune.
func (n *Node) IsOperand() bool {
	return n.Precedence == PrecOperand
}

// Arena owns every Node created while parsing one pattern. Go's garbage
// collector reclaims it when the caller drops the last reference; there is
// no manual free step the way a systems-language arena would need, but the
// type still gives compile_regex a single named owner for "everything built
// during this compile", matching spec.md §9's "parse-tree ownership" note.
type Arena struct {
	nodes []*Node
}

// NewArena creates an empty node arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) newOperand(tok *token.Token) *Node {
	n := &Node{Token: tok, Precedence: PrecOperand, Position: -1}
	a.nodes = append(a.nodes, n)
	return n
}

func (a *Arena) newOperator(op Op, prec Precedence) *Node {
	n := &Node{Op: op, Precedence: prec, Position: -1}
	a.nodes = append(a.nodes, n)
	return n
}

func (a *Arena) newParen(prec Precedence) *Node {
	n := &Node{Precedence: prec, Position: -1}
	a.nodes = append(a.nodes, n)
	return n
}

// Nodes returns every node allocated in this arena, in creation order.
// Mainly useful for tests.
func (a *Arena) Nodes() []*Node {
	return a.nodes
}
