package pdf417

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf417go "github.com/ericlevine/pdf417go"
	"github.com/ericlevine/pdf417go/pdf417/encoder"
)

func TestNewEncoderRejectsInvalidOptions(t *testing.T) {
	opts := pdf417go.DefaultOptions()
	opts.Columns = 31
	if _, err := NewEncoder(opts); !errors.Is(err, pdf417go.ErrInvalidConfiguration) {
		t.Errorf("columns 31: err = %v", err)
	}
	opts = pdf417go.DefaultOptions()
	opts.CharacterSet = "EBCDIC-42"
	if _, err := NewEncoder(opts); !errors.Is(err, pdf417go.ErrInvalidConfiguration) {
		t.Errorf("unknown character set: err = %v", err)
	}
}

func TestEncodeDigitsWithDefaults(t *testing.T) {
	sym, err := Encode("123123123123123123123123123123", pdf417go.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if sym.Codewords[1] != encoder.LatchToNumeric {
		t.Errorf("second codeword %d, want numeric latch", sym.Codewords[1])
	}
	if sym.LengthDescriptor() != sym.DataCount+sym.PadCount+1 {
		t.Errorf("length descriptor %d, data %d, pad %d", sym.LengthDescriptor(), sym.DataCount, sym.PadCount)
	}
	if sym.Columns != 6 || sym.Rows != 4 || sym.ECCount != 8 {
		t.Errorf("%d columns, %d rows, %d EC codewords", sym.Columns, sym.Rows, sym.ECCount)
	}
	if err := sym.Verify(); err != nil {
		t.Error(err)
	}
}

func TestEncodeBinaryHint(t *testing.T) {
	opts := pdf417go.DefaultOptions()
	opts.Hint = pdf417go.HintBinary
	enc, err := NewEncoder(opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		in    string
		latch int
	}{
		{"123456", encoder.LatchToByte},
		{"1234567", encoder.LatchToBytePadded},
		{"ABCDEFGHIJKL", encoder.LatchToByte},
	} {
		sym, err := enc.EncodeString(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if sym.Codewords[1] != tt.latch {
			t.Errorf("%q: latch %d, want %d", tt.in, sym.Codewords[1], tt.latch)
		}
	}
}

func TestEncodeSecurityLevels(t *testing.T) {
	for _, tt := range []struct{ level, ec int }{{0, 2}, {8, 512}} {
		opts := pdf417go.DefaultOptions()
		opts.Columns = 30
		opts.SecurityLevel = tt.level
		sym, err := Encode("A", opts)
		if err != nil {
			t.Fatal(err)
		}
		if sym.ECCount != tt.ec {
			t.Errorf("level %d: %d EC codewords, want %d", tt.level, sym.ECCount, tt.ec)
		}
		if (sym.DataCount+sym.PadCount+1+sym.ECCount)%sym.Columns != 0 {
			t.Errorf("level %d: codewords do not fill the rows", tt.level)
		}
	}
}

func TestEncodeCharacterSet(t *testing.T) {
	opts := pdf417go.DefaultOptions()
	opts.CharacterSet = "ISO-8859-1"
	sym, err := Encode("café", opts)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{927, 1, 812, 5, 901, 233}
	if diff := cmp.Diff(want, sym.Codewords[1:1+len(want)]); diff != "" {
		t.Errorf("data codewords (-want +got):\n%s", diff)
	}

	opts.CharacterSet = "US-ASCII"
	_, err = Encode("naïve", opts)
	var encErr *pdf417go.EncodingError
	if !errors.As(err, &encErr) || encErr.Position != 3 || encErr.Unit != 'ï' {
		t.Errorf("US-ASCII: err = %v", err)
	}
}

func TestEncodeTooLarge(t *testing.T) {
	_, err := Encode(strings.Repeat("\x01", 2000), pdf417go.DefaultOptions())
	if !errors.Is(err, pdf417go.ErrCapacity) {
		t.Errorf("err = %v, want ErrCapacity", err)
	}
}

func TestEncoderConcurrentUse(t *testing.T) {
	enc, err := NewEncoder(pdf417go.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	inputs := []string{"alpha 1", "BETA 22", "gamma 333333333333333", "\x00delta"}
	want := make([]*encoder.Symbol, len(inputs))
	for i, in := range inputs {
		if want[i], err = enc.EncodeString(in); err != nil {
			t.Fatal(err)
		}
	}
	var wg sync.WaitGroup
	errs := make(chan error, 8*len(inputs))
	for g := 0; g < 8; g++ {
		for i, in := range inputs {
			wg.Add(1)
			go func(i int, in string) {
				defer wg.Done()
				sym, err := enc.Encode([]byte(in))
				if err != nil {
					errs <- err
					return
				}
				if !cmp.Equal(sym.Codewords, want[i].Codewords) || !sym.Matrix.Equals(want[i].Matrix) {
					errs <- errors.New("concurrent encode of " + in + " differs")
				}
			}(i, in)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestEncodeMatrixRowsAreIdenticalWidth(t *testing.T) {
	sym, err := Encode("The quick brown fox", pdf417go.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	rows := sym.Matrix.Bools()
	for y, row := range rows {
		if len(row) != (sym.Columns+4)*ModulesInCodeword+1 {
			t.Errorf("row %d: %d modules", y, len(row))
		}
	}
	if start := sym.Matrix.Row(0).String()[:17]; start != "XXXXXXXX.X.X.X..." {
		t.Errorf("row 0 starts %q", start)
	}
}
