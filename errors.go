// errors.go: the error taxonomy and caret-snippet rendering.
//
// Every error kind here is local to one expression and recoverable: the
// driver reports it and resumes the input loop. Each carries a 0-based
// byte offset into the expression so the REPL can point a caret at the
// exact column where scanning stopped.
//
// The primary entry point for drivers is `WrapErrorWithSource`, which
// recognizes the four local kinds, formats them, and returns a new error
// whose message is a plain-text snippet:
//
//	PARSE ERROR at column 5: expected an operator or end of input
//
//	  2 + )
//	      ^
//
// Errors of any other type pass through unchanged.

package bincalc

import (
	"fmt"
	"strings"
)

// ParseError covers malformed syntax: unknown tokens, unmatched
// parentheses, trailing garbage, and operator/encoding combinations that
// do not exist (such as "%" under a floating encoding).
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

// RangeError reports a literal whose magnitude does not fit the session
// encoding. Pos is the start of the offending literal.
type RangeError struct {
	Pos int
	Enc Encoding
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range for %s", e.Enc)
}

// TypeMismatchError is the defensive check in the arithmetic layer: a
// binary operator was handed operands of two different encodings. The
// evaluator never produces this in a fixed-encoding session.
type TypeMismatchError struct {
	Pos         int
	Left, Right Encoding
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("mixed encodings %s and %s are not supported", e.Left, e.Right)
}

// DivisionByZeroError reports an integer "/" or "%" with a zero right
// operand. Pos is the operator's position. (Floating division by zero is
// an IEEE value, not an error.)
type DivisionByZeroError struct {
	Pos int
	Op  Operator
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %q", e.Op.String())
}

// withPos stamps an arithmetic-layer error with the position the
// evaluator knows and the dispatch layer does not.
func withPos(err error, pos int) error {
	switch e := err.(type) {
	case *ParseError:
		e.Pos = pos
	case *RangeError:
		e.Pos = pos
	case *TypeMismatchError:
		e.Pos = pos
	case *DivisionByZeroError:
		e.Pos = pos
	}
	return err
}

// WrapErrorWithSource returns an error whose message is a caret-annotated
// snippet of the expression. It recognizes the package's own error kinds
// and leaves every other error untouched.
func WrapErrorWithSource(err error, src string) error {
	var header string
	var pos int
	switch e := err.(type) {
	case *ParseError:
		header, pos = "PARSE ERROR", e.Pos
	case *RangeError:
		header, pos = "RANGE ERROR", e.Pos
	case *TypeMismatchError:
		header, pos = "TYPE ERROR", e.Pos
	case *DivisionByZeroError:
		header, pos = "ARITHMETIC ERROR", e.Pos
	default:
		return err
	}
	return fmt.Errorf("%s", prettyErrorString(src, header, pos, err.Error()))
}

// prettyErrorString builds the snippet. The offset is clamped to the
// source bounds so the caret can always be rendered.
func prettyErrorString(src, header string, pos int, msg string) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(src) {
		pos = len(src)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at column %d: %s\n\n", header, pos+1, msg)
	fmt.Fprintf(&b, "  %s\n", src)
	fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", pos))
	return b.String()
}
