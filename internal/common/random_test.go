package common

import (
	"strings"
	"testing"
)

// ---------- RandBase36String ----------

func TestRandBase36String_LengthAndAlphabet(t *testing.T) {
	const n = 9
	s := RandBase36String(n)
	if len(s) != n {
		t.Fatalf("expected length %d, got %d", n, len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(base36Alphabet, r) {
			t.Fatalf("unexpected character %q in %q", r, s)
		}
	}
}

func TestRandBase36String_ZeroSize(t *testing.T) {
	if s := RandBase36String(0); s != "" {
		t.Fatalf("expected empty string for n=0, got %q", s)
	}
}

func TestRandBase36String_EntropyHint(t *testing.T) {
	a := RandBase36String(16)
	b := RandBase36String(16)
	if a == b {
		t.Logf("warning: two RandBase36String(16) results are identical; extremely unlikely")
	}
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_EmptyAndNil(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
