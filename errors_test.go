package bincalc

import (
	"errors"
	"strings"
	"testing"
)

func TestCaretSnippet(t *testing.T) {
	src := "2 + )"
	err := evalErr(t, S32, src)
	wrapped := WrapErrorWithSource(err, src)

	lines := strings.Split(wrapped.Error(), "\n")
	if len(lines) < 4 {
		t.Fatalf("snippet too short:\n%s", wrapped)
	}
	if !strings.HasPrefix(lines[0], "PARSE ERROR at column 5:") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "  "+src {
		t.Errorf("source line = %q", lines[2])
	}
	if lines[3] != "      ^" {
		t.Errorf("caret line = %q, want %q", lines[3], "      ^")
	}
}

func TestCaretClampedToSource(t *testing.T) {
	src := "2 + "
	wrapped := WrapErrorWithSource(evalErr(t, S32, src), src)
	if !strings.Contains(wrapped.Error(), "at column 5") {
		t.Errorf("end-of-input error renders wrong column:\n%s", wrapped)
	}
}

func TestWrapPassthrough(t *testing.T) {
	plain := errors.New("not ours")
	if got := WrapErrorWithSource(plain, "1 + 1"); got != plain {
		t.Fatalf("foreign error was rewrapped: %v", got)
	}
}

func TestErrorHeaders(t *testing.T) {
	cases := []struct {
		enc    Encoding
		expr   string
		header string
	}{
		{U16, "-1", "RANGE ERROR"},
		{S32, "1 / 0", "ARITHMETIC ERROR"},
		{S32, "2 +", "PARSE ERROR"},
	}
	for _, c := range cases {
		wrapped := WrapErrorWithSource(evalErr(t, c.enc, c.expr), c.expr)
		if !strings.HasPrefix(wrapped.Error(), c.header) {
			t.Errorf("%q: got %q, want header %q", c.expr, wrapped.Error(), c.header)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	re := &RangeError{Enc: U16}
	if !strings.Contains(re.Error(), "u16") {
		t.Errorf("RangeError does not name the encoding: %q", re.Error())
	}
	tm := &TypeMismatchError{Left: S8, Right: U8}
	if !strings.Contains(tm.Error(), "s8") || !strings.Contains(tm.Error(), "u8") {
		t.Errorf("TypeMismatchError does not name both encodings: %q", tm.Error())
	}
	dz := &DivisionByZeroError{Op: Divide}
	if !strings.Contains(dz.Error(), "zero") {
		t.Errorf("DivisionByZeroError message: %q", dz.Error())
	}
}
