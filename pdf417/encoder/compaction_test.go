package encoder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompactNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"000123", []int{1, 211, 223}},
		{"123123123123123123123123123123", []int{3, 198, 879, 345, 585, 355, 21, 541, 782, 781, 223}},
	}
	for _, tt := range tests {
		got := ModeNumeric.Compact([]byte(tt.in))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestCompactNumericChunks(t *testing.T) {
	for _, tt := range []struct{ digits, codewords int }{
		{44, 15}, {45, 16}, {88, 30}, {89, 31},
	} {
		got := ModeNumeric.Compact([]byte(strings.Repeat("9", tt.digits)))
		if len(got) != tt.codewords {
			t.Errorf("%d digits: %d codewords, want %d", tt.digits, len(got), tt.codewords)
		}
	}
}

func TestCompactBytes(t *testing.T) {
	got := ModeByte.Compact([]byte("abcdefg"))
	want := []int{163, 179, 507, 603, 522, 103}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	if n := len(ModeByte.Compact(all)); n != 42*5+4 {
		t.Errorf("256 bytes: %d codewords", n)
	}
}

func TestCompactText(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"PDF417", []int{453, 178, 121, 239}},
		{"ab", []int{810, 59}},
		{"a;b", []int{810, 870, 59}},
		// punctuation followed by punctuation latches, otherwise shifts
		{"1;<", []int{841, 750, 59}},
		{"1;2", []int{841, 870, 89}},
	}
	for _, tt := range tests {
		got := ModeText.Compact([]byte(tt.in))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTextAcceptsPrintableASCII(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := b == '\t' || b == '\n' || b == '\r' || (b >= 32 && b <= 126)
		if got := ModeText.Accepts(byte(b)); got != want {
			t.Errorf("Accepts(%#x) = %v", b, got)
		}
		if !ModeByte.Accepts(byte(b)) {
			t.Errorf("byte mode rejects %#x", b)
		}
	}
}

func TestCompactionRoundTrip(t *testing.T) {
	inputs := []string{
		"PDF417",
		"Hello, World!",
		"The quick brown fox jumps over the lazy dog.",
		"mIxEd CaSe with 123 digits; and {punctuation} [x] @ ~`'\"|",
		"tab\there\r\nnew line",
		"1;<>2",
		"a.b.c",
		"ab;cd",
		"x",
	}
	for _, in := range inputs {
		cws := ModeText.Compact([]byte(in))
		for _, cw := range cws {
			if cw < 0 || cw >= LatchToText {
				t.Fatalf("%q: codeword %d out of range", in, cw)
			}
		}
		got := decodeText(cws)
		if string(got) != in {
			t.Errorf("text round trip: got %q, want %q", got, in)
		}
	}

	for _, n := range []int{1, 5, 6, 7, 12, 13, 100} {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i*37 + 11)
		}
		got, err := decodeBytes(nil, ModeByte.Compact(in), ModeByte.Latch(in))
		if err != nil {
			t.Fatalf("%d bytes: %v", n, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("%d bytes: got %v, want %v", n, got, in)
		}
	}

	for _, in := range []string{"0", "007", strings.Repeat("1234567890", 10)} {
		got, err := decodeNumeric(nil, ModeNumeric.Compact([]byte(in)))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if string(got) != in {
			t.Errorf("numeric round trip: got %q, want %q", got, in)
		}
	}
}

func TestModeLatch(t *testing.T) {
	if l := ModeByte.Latch([]byte("abcdef")); l != LatchToByte {
		t.Errorf("6 bytes: latch %d, want %d", l, LatchToByte)
	}
	if l := ModeByte.Latch([]byte("abcdefg")); l != LatchToBytePadded {
		t.Errorf("7 bytes: latch %d, want %d", l, LatchToBytePadded)
	}
	if ModeNumeric.Latch(nil) != LatchToNumeric || ModeText.Latch(nil) != LatchToText {
		t.Error("wrong numeric or text latch")
	}
	if ModeNumeric.String() != "numeric" || Mode(7).String() != "unknown" {
		t.Error("wrong mode names")
	}
}
