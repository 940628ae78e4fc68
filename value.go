// value.go: tagged values and their decimal/hex renderings.
//
// A Value pairs an Encoding tag with a raw bit payload. The payload always
// holds exactly the tag's width: Bits keeps only the low Width() bits, and
// floating encodings store their IEEE-754 bit pattern. That makes the hex
// rendering (which exposes the encoding, not the numeric value) a plain
// zero-padded dump of Bits, and makes hex literals the exact inverse.

package bincalc

import (
	"fmt"
	"math"
	"strconv"
)

// Value is an immutable number tagged with its encoding. The zero-width
// invalid sentinel (Invalid) means "no value parsed here" and must never
// reach arithmetic.
type Value struct {
	Enc  Encoding
	Bits uint64
}

// Invalid is the no-value sentinel returned by a failed literal scan.
var Invalid = Value{Enc: EncInvalid}

func (v Value) Valid() bool { return v.Enc.Valid() }

// FromInt builds a Value from a signed integer, truncated to enc's width.
func FromInt(enc Encoding, x int64) Value {
	return Value{Enc: enc, Bits: uint64(x) & enc.Mask()}
}

// FromUint builds a Value from an unsigned integer, truncated to enc's width.
func FromUint(enc Encoding, x uint64) Value {
	return Value{Enc: enc, Bits: x & enc.Mask()}
}

// FromFloat builds a floating Value; enc must be F32 or F64.
func FromFloat(enc Encoding, x float64) Value {
	if enc == F32 {
		return Value{Enc: F32, Bits: uint64(math.Float32bits(float32(x)))}
	}
	return Value{Enc: F64, Bits: math.Float64bits(x)}
}

// Int64 is the payload sign-extended to 64 bits.
func (v Value) Int64() int64 {
	shift := uint(64 - v.Enc.Width())
	return int64(v.Bits<<shift) >> shift
}

// Uint64 is the raw payload, zero-extended.
func (v Value) Uint64() uint64 { return v.Bits }

// Float64 is the numeric value of a floating payload.
func (v Value) Float64() float64 {
	if v.Enc == F32 {
		return float64(math.Float32frombits(uint32(v.Bits)))
	}
	return math.Float64frombits(v.Bits)
}

// Dec renders the natural numeric value: signed or unsigned decimal for the
// integer encodings, fixed-point decimal for the floating ones.
func (v Value) Dec() string {
	switch {
	case v.Enc.Float():
		if v.Enc == F32 {
			return fmt.Sprintf("%f", math.Float32frombits(uint32(v.Bits)))
		}
		return fmt.Sprintf("%f", math.Float64frombits(v.Bits))
	case v.Enc.Signed():
		return strconv.FormatInt(v.Int64(), 10)
	default:
		return strconv.FormatUint(v.Bits, 10)
	}
}

// Hex renders the raw bit pattern as "x" plus the payload zero-padded to its
// exact width (2/4/8/16 digits). Floating values expose their IEEE encoding.
func (v Value) Hex() string {
	return fmt.Sprintf("x%0*x", v.Enc.Width()/4, v.Bits)
}

// String is the REPL's result form, "<dec> (<hex>)".
func (v Value) String() string {
	return fmt.Sprintf("%s (%s)", v.Dec(), v.Hex())
}
