package pdf417go

import (
	"errors"
	"testing"
)

func TestDefaultOptionsValid(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	if opts.Columns != 6 || opts.SecurityLevel != 2 || opts.Hint != HintNone {
		t.Errorf("defaults = %+v", opts)
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Options)
		ok   bool
	}{
		{"columns 1", func(o *Options) { o.Columns = 1 }, true},
		{"columns 30", func(o *Options) { o.Columns = 30 }, true},
		{"columns 0", func(o *Options) { o.Columns = 0 }, false},
		{"columns 31", func(o *Options) { o.Columns = 31 }, false},
		{"level 0", func(o *Options) { o.SecurityLevel = 0 }, true},
		{"level 8", func(o *Options) { o.SecurityLevel = 8 }, true},
		{"level -1", func(o *Options) { o.SecurityLevel = -1 }, false},
		{"level 9", func(o *Options) { o.SecurityLevel = 9 }, false},
		{"hint binary", func(o *Options) { o.Hint = HintBinary }, true},
		{"hint 7", func(o *Options) { o.Hint = Hint(7) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(&opts)
			err := opts.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestParseHint(t *testing.T) {
	for _, h := range []Hint{HintNone, HintNumbers, HintText, HintBinary} {
		got, err := ParseHint(h.String())
		if err != nil || got != h {
			t.Errorf("ParseHint(%q) = %v, %v", h.String(), got, err)
		}
	}
	if _, err := ParseHint("BINARY"); err != nil {
		t.Errorf("ParseHint is case sensitive: %v", err)
	}
	if _, err := ParseHint("hex"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("ParseHint(hex) err = %v", err)
	}
}

func TestErrorCorrectionCount(t *testing.T) {
	opts := DefaultOptions()
	for level, want := range []int{2, 4, 8, 16, 32, 64, 128, 256, 512} {
		opts.SecurityLevel = level
		if got := opts.ErrorCorrectionCount(); got != want {
			t.Errorf("level %d: %d, want %d", level, got, want)
		}
	}
}

func TestEncodingError(t *testing.T) {
	var err error = &EncodingError{Position: 4, Unit: 'é'}
	if !errors.Is(err, ErrEncoding) {
		t.Error("EncodingError does not wrap ErrEncoding")
	}
	var ee *EncodingError
	if !errors.As(err, &ee) || ee.Position != 4 {
		t.Errorf("errors.As = %v", ee)
	}
	if got := err.Error(); got != `cannot encode character 'é' at position 4` {
		t.Errorf("Error() = %q", got)
	}
}
