// scan.go: the input cursor and the literal scanner.
//
// Literals come in three shapes: decimal integers, decimal floats, and
// hex ("x"-prefixed, no "0x") for every encoding. The scanner either
// produces a Value, reports a RangeError with the cursor restored to the
// literal's start, or — when nothing literal-like starts here — restores
// the cursor and hands back the invalid sentinel so the caller can try an
// operator production instead.

package bincalc

import (
	"errors"
	"strconv"
)

type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool    { return c.pos >= len(c.src) }
func (c *cursor) rest() string { return c.src[c.pos:] }

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) skipSpace() {
	for !c.eof() {
		switch c.src[c.pos] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			c.pos++
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func hexDigit(b byte) uint64 {
	switch {
	case b >= 'a':
		return uint64(b-'a') + 10
	case b >= 'A':
		return uint64(b-'A') + 10
	default:
		return uint64(b - '0')
	}
}

// parseValue scans one leading literal under enc. A (Invalid, nil) return
// means "no literal here" with the cursor untouched; the caller decides
// whether that is an error.
func parseValue(c *cursor, enc Encoding) (Value, error) {
	c.skipSpace()
	start := c.pos
	if c.peek() == 'x' {
		return parseHex(c, enc, start)
	}
	if enc.Float() {
		return parseFloat(c, enc, start)
	}
	if enc.Signed() {
		return parseInt(c, enc, start)
	}
	return parseUint(c, enc, start)
}

// parseHex scans "x" plus hex digits. Leading zeros are free; after them
// at most Width()/4 significant digits fit, and one more is a RangeError.
// The bits land in the payload verbatim, so under a floating encoding a
// hex literal spells out the IEEE representation directly.
func parseHex(c *cursor, enc Encoding, start int) (Value, error) {
	rest := c.rest()
	if len(rest) < 2 || !isHexDigit(rest[1]) {
		return Invalid, nil
	}
	c.pos++
	for c.peek() == '0' {
		c.pos++
	}
	maxDigits := enc.Width() / 4
	var bits uint64
	for digits := 0; isHexDigit(c.peek()); digits++ {
		if digits == maxDigits {
			c.pos = start
			return Invalid, &RangeError{Pos: start, Enc: enc}
		}
		bits = bits<<4 | hexDigit(c.peek())
		c.pos++
	}
	return Value{Enc: enc, Bits: bits}, nil
}

func parseInt(c *cursor, enc Encoding, start int) (Value, error) {
	s := c.rest()
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	first := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == first {
		return Invalid, nil
	}
	n, err := strconv.ParseInt(s[:i], 10, enc.Width())
	if err != nil {
		return Invalid, &RangeError{Pos: start, Enc: enc}
	}
	c.pos += i
	return FromInt(enc, n), nil
}

func parseUint(c *cursor, enc Encoding, start int) (Value, error) {
	s := c.rest()
	// A negative literal under an unsigned encoding is rejected outright,
	// never reinterpreted as a large wrapped value.
	if len(s) >= 2 && s[0] == '-' && isDigit(s[1]) {
		return Invalid, &RangeError{Pos: start, Enc: enc}
	}
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return Invalid, nil
	}
	n, err := strconv.ParseUint(s[:i], 10, enc.Width())
	if err != nil {
		return Invalid, &RangeError{Pos: start, Enc: enc}
	}
	c.pos += i
	return FromUint(enc, n), nil
}

// parseFloat scans [-]digits[.digits][e[+-]digits] and converts at the
// encoding's width. Out-of-range magnitudes saturate to ±Inf per IEEE;
// strconv already hands back the saturated value alongside ErrRange.
func parseFloat(c *cursor, enc Encoding, start int) (Value, error) {
	s := c.rest()
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	first := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == first {
		return Invalid, nil
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(s[:i], enc.Width())
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Invalid, &ParseError{Pos: start, Msg: "malformed number"}
	}
	c.pos += i
	return FromFloat(enc, f), nil
}
