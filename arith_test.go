package bincalc

import (
	"errors"
	"math"
	"testing"
)

// The evaluator can never produce mixed encodings in a fixed-encoding
// session, so the defensive check is exercised against the dispatch layer
// directly.
func TestTypeMismatch(t *testing.T) {
	ev := newTestEvaluator(t, S8)
	_, err := ev.applyBinary(Add, FromInt(S8, 1), FromUint(U8, 1))
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("want *TypeMismatchError, got %T: %v", err, err)
	}
	if tm.Left != S8 || tm.Right != U8 {
		t.Fatalf("mismatch reports %s/%s, want s8/u8", tm.Left, tm.Right)
	}
}

func TestIntegerEdgeWraparound(t *testing.T) {
	ev := newTestEvaluator(t, S64)

	// Negating the most negative value wraps back onto itself.
	v, err := ev.applyUnary(Negate, FromInt(S64, math.MinInt64))
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64() != math.MinInt64 {
		t.Fatalf("-(min s64) = %d, want %d", v.Int64(), int64(math.MinInt64))
	}

	v, err = ev.applyBinary(Multiply, FromInt(S64, math.MinInt64), FromInt(S64, -1))
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64() != math.MinInt64 {
		t.Fatalf("min s64 * -1 = %d, want %d", v.Int64(), int64(math.MinInt64))
	}
}

func TestComplementPerWidth(t *testing.T) {
	cases := []struct {
		enc  Encoding
		in   uint64
		want uint64
	}{
		{U8, 0, 0xff},
		{U16, 0, 0xffff},
		{U32, 0, 0xffffffff},
		{U64, 0, math.MaxUint64},
		{U32, 0x0f0f0f0f, 0xf0f0f0f0},
	}
	for _, c := range cases {
		ev := newTestEvaluator(t, c.enc)
		v, err := ev.applyUnary(Not, FromUint(c.enc, c.in))
		if err != nil {
			t.Fatal(err)
		}
		if v.Uint64() != c.want {
			t.Errorf("%s ~%#x = %#x, want %#x", c.enc, c.in, v.Uint64(), c.want)
		}
	}
}

func TestFloatSpecials(t *testing.T) {
	ev := newTestEvaluator(t, F64)

	v, err := ev.applyBinary(Divide, FromFloat(F64, 1), FromFloat(F64, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(v.Float64(), 1) {
		t.Fatalf("1/0 = %v, want +Inf", v.Float64())
	}

	v, err = ev.applyBinary(Divide, FromFloat(F64, 0), FromFloat(F64, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(v.Float64()) {
		t.Fatalf("0/0 = %v, want NaN", v.Float64())
	}

	v, err = ev.applyUnary(Negate, FromFloat(F64, 2.5))
	if err != nil {
		t.Fatal(err)
	}
	if v.Float64() != -2.5 {
		t.Fatalf("-(2.5) = %v", v.Float64())
	}
}

func TestDispatchRejectsUndefinedCombinations(t *testing.T) {
	ev := newTestEvaluator(t, F32)

	for _, op := range []Operator{Modulus, LeftShift, RightShift, And, Or, Xor} {
		_, err := ev.applyBinary(op, FromFloat(F32, 1), FromFloat(F32, 2))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s on f32: want *ParseError, got %T: %v", op, err, err)
		}
	}

	_, err := ev.applyUnary(Not, FromFloat(F32, 1))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("~ on f32: want *ParseError, got %T: %v", err, err)
	}
}

func TestModuloByZero(t *testing.T) {
	ev := newTestEvaluator(t, U32)
	_, err := ev.applyBinary(Modulus, FromUint(U32, 7), FromUint(U32, 0))
	var dz *DivisionByZeroError
	if !errors.As(err, &dz) {
		t.Fatalf("want *DivisionByZeroError, got %T: %v", err, err)
	}
	if dz.Op != Modulus {
		t.Fatalf("error reports %s, want %%", dz.Op)
	}
}
