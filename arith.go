// arith.go: typed arithmetic dispatch.
//
// One generic body per payload family (integer, float) specialized at each
// of the ten encodings, so width and signedness stay exact without ten
// copies of the switch. Integer results wrap modulo the encoding's width;
// floating results follow IEEE-754 at the encoding's width.
//
// Operator/encoding combinations that do not exist surface as ParseError;
// integer division and modulus by zero as DivisionByZeroError. The
// evaluator stamps positions onto these afterwards (withPos).

package bincalc

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// errUnsupported marks an operator the current encoding has no meaning
// for; the dispatch entry points translate it into a ParseError.
var errUnsupported = errors.New("unsupported operator")

// applyUnary applies "~" or prefix "-". Complement and negation are
// computed modulo the bit width; floats support negation only.
func (ev *Evaluator) applyUnary(op Operator, v Value) (Value, error) {
	var (
		result Value
		err    error
	)
	switch v.Enc {
	case S8:
		result, err = unaryInt[int8](op, v)
	case S16:
		result, err = unaryInt[int16](op, v)
	case S32:
		result, err = unaryInt[int32](op, v)
	case S64:
		result, err = unaryInt[int64](op, v)
	case U8:
		result, err = unaryInt[uint8](op, v)
	case U16:
		result, err = unaryInt[uint16](op, v)
	case U32:
		result, err = unaryInt[uint32](op, v)
	case U64:
		result, err = unaryInt[uint64](op, v)
	case F32, F64:
		result, err = unaryFloat(op, v)
	default:
		err = errUnsupported
	}
	if errors.Is(err, errUnsupported) {
		return Invalid, &ParseError{Msg: fmt.Sprintf("operator %q is not defined for %s", op.String(), v.Enc)}
	}
	if err != nil {
		return Invalid, err
	}
	if ev.verbose {
		fmt.Fprintf(ev.trace, "%s(%s) = %s (%s%s = %s)\n",
			op, v.Dec(), result.Dec(), op, v.Hex(), result.Hex())
	}
	return result, nil
}

// applyBinary applies a binary operator to two same-encoding operands.
// Handing it mixed encodings is a caller bug in a fixed-encoding session,
// reported as TypeMismatchError rather than coerced.
func (ev *Evaluator) applyBinary(op Operator, left, right Value) (Value, error) {
	if left.Enc != right.Enc {
		return Invalid, &TypeMismatchError{Left: left.Enc, Right: right.Enc}
	}
	var (
		result Value
		err    error
	)
	switch left.Enc {
	case S8:
		result, err = binaryInt[int8](op, left, right)
	case S16:
		result, err = binaryInt[int16](op, left, right)
	case S32:
		result, err = binaryInt[int32](op, left, right)
	case S64:
		result, err = binaryInt[int64](op, left, right)
	case U8:
		result, err = binaryInt[uint8](op, left, right)
	case U16:
		result, err = binaryInt[uint16](op, left, right)
	case U32:
		result, err = binaryInt[uint32](op, left, right)
	case U64:
		result, err = binaryInt[uint64](op, left, right)
	case F32, F64:
		result, err = binaryFloat(op, left, right)
	default:
		err = errUnsupported
	}
	if errors.Is(err, errUnsupported) {
		return Invalid, &ParseError{Msg: fmt.Sprintf("operator %q is not defined for %s", op.String(), left.Enc)}
	}
	if err != nil {
		return Invalid, err
	}
	if ev.verbose {
		fmt.Fprintf(ev.trace, "%s %s %s = %s (%s %s %s = %s)\n",
			left.Dec(), op, right.Dec(), result.Dec(),
			left.Hex(), op, right.Hex(), result.Hex())
	}
	return result, nil
}

func unaryInt[T constraints.Integer](op Operator, v Value) (Value, error) {
	x := T(v.Bits)
	var r T
	switch op {
	case Not:
		r = ^x
	case Negate:
		r = -x
	default:
		return Invalid, errUnsupported
	}
	return Value{Enc: v.Enc, Bits: uint64(int64(r)) & v.Enc.Mask()}, nil
}

func binaryInt[T constraints.Integer](op Operator, l, r Value) (Value, error) {
	a, b := T(l.Bits), T(r.Bits)
	var x T
	switch op {
	case Add:
		x = a + b
	case Subtract:
		x = a - b
	case Multiply:
		x = a * b
	case Divide:
		if b == 0 {
			return Invalid, &DivisionByZeroError{Op: op}
		}
		x = a / b
	case Modulus:
		if b == 0 {
			return Invalid, &DivisionByZeroError{Op: op}
		}
		x = a % b
	case LeftShift:
		x = a << shiftCount(r)
	case RightShift:
		x = a >> shiftCount(r)
	case And:
		x = a & b
	case Or:
		x = a | b
	case Xor:
		x = a ^ b
	default:
		return Invalid, errUnsupported
	}
	return Value{Enc: l.Enc, Bits: uint64(int64(x)) & l.Enc.Mask()}, nil
}

// shiftCount reads the right operand's raw bits as an unsigned count and
// masks it to the operand width. Out-of-range and negative shift amounts
// therefore have a defined meaning instead of inheriting C's undefined
// behavior.
func shiftCount(v Value) uint64 {
	return v.Bits & uint64(v.Enc.Width()-1)
}

func unaryFloat(op Operator, v Value) (Value, error) {
	if op != Negate {
		return Invalid, errUnsupported
	}
	if v.Enc == F32 {
		f := math.Float32frombits(uint32(v.Bits))
		return Value{Enc: F32, Bits: uint64(math.Float32bits(-f))}, nil
	}
	f := math.Float64frombits(v.Bits)
	return Value{Enc: F64, Bits: math.Float64bits(-f)}, nil
}

func binaryFloat(op Operator, l, r Value) (Value, error) {
	if l.Enc == F32 {
		a := math.Float32frombits(uint32(l.Bits))
		b := math.Float32frombits(uint32(r.Bits))
		x, err := floatOp(op, a, b)
		if err != nil {
			return Invalid, err
		}
		return Value{Enc: F32, Bits: uint64(math.Float32bits(x))}, nil
	}
	a := math.Float64frombits(l.Bits)
	b := math.Float64frombits(r.Bits)
	x, err := floatOp(op, a, b)
	if err != nil {
		return Invalid, err
	}
	return Value{Enc: F64, Bits: math.Float64bits(x)}, nil
}

// floatOp is the shared floating body. Division by zero is not guarded:
// the IEEE result (±Inf or NaN) is the answer.
func floatOp[T constraints.Float](op Operator, a, b T) (T, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		return a / b, nil
	default:
		return 0, errUnsupported
	}
}
