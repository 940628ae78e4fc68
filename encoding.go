// encoding.go: the ten fixed-width numeric encodings a session can run in.

package bincalc

// Encoding identifies one of the fixed-width numeric representations.
// It is selected once per session and never changes afterwards.
type Encoding int

const (
	S8 Encoding = iota
	S16
	S32
	S64
	U8
	U16
	U32
	U64
	F32
	F64

	numEncodings
	EncInvalid Encoding = -1
)

var encodingNames = [numEncodings]string{
	"s8", "s16", "s32", "s64",
	"u8", "u16", "u32", "u64",
	"f32", "f64",
}

// ParseEncoding maps a mode name ("s8" .. "f64") to its Encoding.
func ParseEncoding(name string) (Encoding, bool) {
	for enc, n := range encodingNames {
		if n == name {
			return Encoding(enc), true
		}
	}
	return EncInvalid, false
}

func (e Encoding) Valid() bool {
	return e >= 0 && e < numEncodings
}

func (e Encoding) String() string {
	if !e.Valid() {
		return "invalid"
	}
	return encodingNames[e]
}

// Width is the payload width in bits (8, 16, 32, or 64).
func (e Encoding) Width() int {
	switch e {
	case S8, U8:
		return 8
	case S16, U16:
		return 16
	case S32, U32, F32:
		return 32
	default:
		return 64
	}
}

// Mask has the low Width() bits set.
func (e Encoding) Mask() uint64 {
	if e.Width() == 64 {
		return ^uint64(0)
	}
	return 1<<uint(e.Width()) - 1
}

func (e Encoding) Signed() bool {
	return e >= S8 && e <= S64
}

func (e Encoding) Float() bool {
	return e == F32 || e == F64
}
