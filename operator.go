// operator.go: the static operator table and the two token scans over it.
//
// The table is ordered so that multi-character identifiers are tried before
// anything they could collide with, and it is scanned front to back. The
// prefix scan and the binary scan look at disjoint arity classes, which is
// how the two meanings of "-" are disambiguated: syntactic position picks
// the scan, the scan picks the entry.

package bincalc

import "strings"

// Operator indexes operatorTable.
type Operator int

const (
	OpenParen Operator = iota
	Not
	Negate
	Multiply
	Divide
	Modulus
	Add
	Subtract
	LeftShift
	RightShift
	And
	Xor
	Or
	CloseParen
	EndExpression

	numOperators
	InvalidOp Operator = -1
)

type arity int

const (
	arityUnary arity = iota
	arityBinary
	arityGrouping
	aritySentinel
)

// Sentinels carry precedence 0, below every real operator, so the
// climbing loop always stops on them.
var operatorTable = [numOperators]struct {
	precedence int
	arity      arity
	identifier string
}{
	OpenParen:     {8, arityGrouping, "("},
	Not:           {7, arityUnary, "~"},
	Negate:        {7, arityUnary, "-"},
	Multiply:      {6, arityBinary, "*"},
	Divide:        {6, arityBinary, "/"},
	Modulus:       {6, arityBinary, "%"},
	Add:           {5, arityBinary, "+"},
	Subtract:      {5, arityBinary, "-"},
	LeftShift:     {4, arityBinary, "<<"},
	RightShift:    {4, arityBinary, ">>"},
	And:           {3, arityBinary, "&"},
	Xor:           {2, arityBinary, "^"},
	Or:            {1, arityBinary, "|"},
	CloseParen:    {0, aritySentinel, ")"},
	EndExpression: {0, aritySentinel, ""},
}

func (op Operator) precedence() int { return operatorTable[op].precedence }

func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return "invalid"
	}
	if op == EndExpression {
		return "end of input"
	}
	return operatorTable[op].identifier
}

// scanPrefix recognizes a prefix-position token: a unary operator or the
// open parenthesis. Anything else is a parse error, because the caller has
// already ruled out a literal at this position.
func scanPrefix(c *cursor) (Operator, int, error) {
	c.skipSpace()
	pos := c.pos
	for op := Operator(0); op < numOperators; op++ {
		a := operatorTable[op].arity
		if a != arityUnary && a != arityGrouping {
			continue
		}
		if strings.HasPrefix(c.rest(), operatorTable[op].identifier) {
			c.pos += len(operatorTable[op].identifier)
			return op, pos, nil
		}
	}
	return InvalidOp, pos, &ParseError{Pos: pos, Msg: "expected a value, a unary operator, or '('"}
}

// scanBinary recognizes a binary operator or the one sentinel that may
// legally terminate the enclosing expression. EndExpression matches only
// the actual end of the input.
func scanBinary(c *cursor, sentinel Operator) (Operator, int, error) {
	c.skipSpace()
	pos := c.pos
	for op := Operator(0); op < numOperators; op++ {
		if operatorTable[op].arity != arityBinary && op != sentinel {
			continue
		}
		if op == EndExpression {
			if c.eof() {
				return op, pos, nil
			}
			continue
		}
		if strings.HasPrefix(c.rest(), operatorTable[op].identifier) {
			c.pos += len(operatorTable[op].identifier)
			return op, pos, nil
		}
	}
	msg := "expected an operator or end of input"
	if sentinel == CloseParen {
		msg = "expected an operator or ')'"
	}
	return InvalidOp, pos, &ParseError{Pos: pos, Msg: msg}
}
