package encoder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf417go "github.com/ericlevine/pdf417go"
)

func TestSplitChains(t *testing.T) {
	tests := []struct {
		in   string
		want []Chain
	}{
		{"123ABC", []Chain{{[]byte("123"), ModeNumeric}, {[]byte("ABC"), ModeText}}},
		{"ABC123", []Chain{{[]byte("ABC123"), ModeText}}},
		{"AB\xe9CD", []Chain{{[]byte("AB"), ModeText}, {[]byte("\xe9CD"), ModeByte}}},
		{"", nil},
	}
	for _, tt := range tests {
		got, err := SplitChains([]byte(tt.in), DefaultModes)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestSplitChainsCoversInput(t *testing.T) {
	inputs := []string{
		"Hello 12345678901234 world\x00\x01\x02 and more text 42",
		"\xff\xfe123",
		"1",
		"a1b2c3\n\t",
	}
	for _, in := range inputs {
		chains, err := SplitChains([]byte(in), DefaultModes)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		var joined []byte
		for i, c := range chains {
			if len(c.Data) == 0 {
				t.Errorf("%q: chain %d is empty", in, i)
			}
			for _, b := range c.Data {
				if !c.Mode.Accepts(b) {
					t.Errorf("%q: chain %v holds %q", in, c, b)
				}
			}
			joined = append(joined, c.Data...)
		}
		if !bytes.Equal(joined, []byte(in)) {
			t.Errorf("chains of %q join to %q", in, joined)
		}
	}
}

func TestSplitChainsWithoutFallback(t *testing.T) {
	_, err := SplitChains([]byte("A\x01"), []Mode{ModeNumeric, ModeText})
	var encErr *pdf417go.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *EncodingError", err)
	}
	if encErr.Position != 2 || encErr.Unit != 1 {
		t.Errorf("position %d unit %q", encErr.Position, encErr.Unit)
	}
	if !errors.Is(err, pdf417go.ErrEncoding) {
		t.Error("error does not match ErrEncoding")
	}
}

func TestEncodeData(t *testing.T) {
	tests := []struct {
		in   string
		hint pdf417go.Hint
		want []int
	}{
		{"PDF417", pdf417go.HintNone, []int{453, 178, 121, 239}},
		{"123ABC", pdf417go.HintNone, []int{902, 1, 223, 900, 1, 89}},
		{"AB\xe9CD", pdf417go.HintNone, []int{1, 901, 233, 67, 68}},
		{"abcdef", pdf417go.HintBinary, []int{924, 163, 179, 507, 603, 522}},
		{"abcdefg", pdf417go.HintBinary, []int{901, 163, 179, 507, 603, 522, 103}},
		{"123", pdf417go.HintText, []int{841, 63}},
		{"000123", pdf417go.HintNumbers, []int{902, 1, 211, 223}},
		{"", pdf417go.HintNone, nil},
		{"", pdf417go.HintBinary, nil},
	}
	for _, tt := range tests {
		got, err := EncodeData([]byte(tt.in), tt.hint)
		if err != nil {
			t.Fatalf("%q/%s: %v", tt.in, tt.hint, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q/%s (-want +got):\n%s", tt.in, tt.hint, diff)
		}
	}
}

func TestEncodeDataRoundTrip(t *testing.T) {
	inputs := []string{
		"123123123123123123123123123123",
		"Invoice 2024-0001: total $1,234.56 (paid)\n",
		"\x00\x01\x02binary\xffdata 12345 and text",
		"98765432109876543210987654321098765432109876543210 digits then Text",
		"line1\r\nline2\ttabbed",
	}
	for _, in := range inputs {
		for _, hint := range []pdf417go.Hint{pdf417go.HintNone, pdf417go.HintBinary} {
			cws, err := EncodeData([]byte(in), hint)
			if err != nil {
				t.Fatalf("%q: %v", in, err)
			}
			got, err := decompact(cws)
			if err != nil {
				t.Fatalf("%q/%s: %v", in, hint, err)
			}
			if string(got) != in {
				t.Errorf("%s round trip: got %q, want %q", hint, got, in)
			}
		}
	}
}

func TestForcedHintRejectsUnit(t *testing.T) {
	_, err := EncodeData([]byte("12a4"), pdf417go.HintNumbers)
	var encErr *pdf417go.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *EncodingError", err)
	}
	if encErr.Position != 3 || encErr.Unit != 'a' {
		t.Errorf("position %d unit %q", encErr.Position, encErr.Unit)
	}

	_, err = EncodeData([]byte("caf\xe9"), pdf417go.HintText)
	if !errors.As(err, &encErr) || encErr.Position != 4 {
		t.Errorf("text hint: err = %v", err)
	}

	if _, err := EncodeData([]byte("x"), pdf417go.Hint(9)); !errors.Is(err, pdf417go.ErrInvalidConfiguration) {
		t.Errorf("unknown hint: err = %v", err)
	}
}

func TestECIDesignator(t *testing.T) {
	tests := []struct {
		value int
		want  []int
	}{
		{26, []int{927, 26}},
		{899, []int{927, 899}},
		{900, []int{926, 0, 0}},
		{1000, []int{926, 0, 100}},
		{810899, []int{926, 899, 899}},
		{811000, []int{925, 100}},
	}
	for _, tt := range tests {
		got, err := ECIDesignator(tt.value)
		if err != nil {
			t.Fatalf("%d: %v", tt.value, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%d (-want +got):\n%s", tt.value, diff)
		}
	}
	for _, v := range []int{-1, 811800} {
		if _, err := ECIDesignator(v); !errors.Is(err, pdf417go.ErrInvalidConfiguration) {
			t.Errorf("%d: err = %v", v, err)
		}
	}
}
