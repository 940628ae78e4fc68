// eval.go: the precedence-climbing evaluator.
//
// Parsing and evaluation happen in one pass: computeExpression consumes
// tokens and folds results as it goes, so no syntax tree ever exists. The
// recursion carries three pieces of state — the cursor, the minimum
// precedence that an operator must exceed to be consumed here, and the
// sentinel that may legally end this (sub-)expression — and hands back
// both the folded value and the first operator it refused to consume, for
// the caller's own loop to re-examine.

// Package bincalc evaluates C-style arithmetic expressions under a single
// fixed-width numeric encoding: 8/16/32/64-bit signed and unsigned
// integers with exact wraparound semantics, or 32/64-bit IEEE floats.
// Results render in both decimal and hex; hex exposes the raw encoding.
package bincalc

import (
	"fmt"
	"io"
	"os"
)

// Version is reported by the CLI banner.
const Version = "1.1.0"

// maxDepth bounds parenthesis/unary nesting so malformed input produces
// a ParseError instead of exhausting the call stack.
const maxDepth = 64

// Config is the immutable per-session configuration.
type Config struct {
	Encoding Encoding
	Verbose  bool      // emit one trace line per operator application
	Trace    io.Writer // trace destination; defaults to os.Stdout
}

// Evaluator evaluates one expression at a time under a fixed encoding.
// It is not safe for concurrent use, and does not need to be: a session
// is a single synchronous read-evaluate-print loop.
type Evaluator struct {
	enc     Encoding
	verbose bool
	trace   io.Writer
}

// New builds an Evaluator from cfg. The encoding must be one of the ten
// valid modes.
func New(cfg Config) (*Evaluator, error) {
	if !cfg.Encoding.Valid() {
		return nil, fmt.Errorf("bincalc: invalid encoding %d", int(cfg.Encoding))
	}
	trace := cfg.Trace
	if trace == nil {
		trace = os.Stdout
	}
	return &Evaluator{enc: cfg.Encoding, verbose: cfg.Verbose, trace: trace}, nil
}

// Encoding is the session's fixed encoding.
func (ev *Evaluator) Encoding() Encoding { return ev.enc }

// Eval parses and evaluates one expression (a single line, already
// stripped of its terminator). On failure the returned error is one of
// ParseError, RangeError, TypeMismatchError, or DivisionByZeroError, each
// carrying the offset where evaluation stopped; WrapErrorWithSource turns
// it into a caret snippet.
func (ev *Evaluator) Eval(line string) (Value, error) {
	c := &cursor{src: line}
	v, _, _, err := ev.computeExpression(c, EndExpression, 0, 0)
	if err != nil {
		return Invalid, err
	}
	return v, nil
}

// computeExpression folds "value (op value)*" while each scanned operator
// binds tighter than minPrec. The recursive call for a right-hand side
// runs at the consuming operator's own precedence, so it swallows
// everything that binds tighter and hands back (with its position) the
// first operator that does not; the top-level call only ever terminates
// on its sentinel, since every real operator outranks precedence 0.
func (ev *Evaluator) computeExpression(c *cursor, sentinel Operator, minPrec, depth int) (Value, Operator, int, error) {
	value, err := ev.computeValue(c, sentinel, depth)
	if err != nil {
		return Invalid, InvalidOp, 0, err
	}
	op, opPos, err := scanBinary(c, sentinel)
	if err != nil {
		return Invalid, InvalidOp, 0, err
	}
	for op.precedence() > minPrec {
		right, next, nextPos, err := ev.computeExpression(c, sentinel, op.precedence(), depth)
		if err != nil {
			return Invalid, InvalidOp, 0, err
		}
		value, err = ev.applyBinary(op, value, right)
		if err != nil {
			return Invalid, InvalidOp, 0, withPos(err, opPos)
		}
		op, opPos = next, nextPos
	}
	return value, op, opPos, nil
}

// computeValue is the primary production: a literal, a parenthesized
// sub-expression (which resets the precedence threshold), or a unary
// operator applied to a recursively obtained primary.
func (ev *Evaluator) computeValue(c *cursor, sentinel Operator, depth int) (Value, error) {
	if depth > maxDepth {
		return Invalid, &ParseError{Pos: c.pos, Msg: "expression nested too deeply"}
	}
	value, err := parseValue(c, ev.enc)
	if err != nil {
		return Invalid, err
	}
	if value.Valid() {
		return value, nil
	}
	op, opPos, err := scanPrefix(c)
	if err != nil {
		return Invalid, err
	}
	if op == OpenParen {
		value, _, _, err := ev.computeExpression(c, CloseParen, 0, depth+1)
		return value, err
	}
	operand, err := ev.computeValue(c, sentinel, depth+1)
	if err != nil {
		return Invalid, err
	}
	value, err = ev.applyUnary(op, operand)
	if err != nil {
		return Invalid, withPos(err, opPos)
	}
	return value, nil
}
