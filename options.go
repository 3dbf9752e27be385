// Package pdf417go holds the shared vocabulary of the PDF417 encoder:
// options, compaction hints and errors.
package pdf417go

import "strings"

// Option ranges and defaults.
const (
	MinColumns       = 1
	MaxColumns       = 30
	MinSecurityLevel = 0
	MaxSecurityLevel = 8

	DefaultColumns       = 6
	DefaultSecurityLevel = 2
)

// Hint forces the whole input into a single compaction mode.
type Hint int

const (
	// HintNone splits the input into runs and picks the densest mode for each.
	HintNone Hint = iota
	// HintNumbers forces numeric compaction.
	HintNumbers
	// HintText forces text compaction.
	HintText
	// HintBinary forces byte compaction. This may reduce the size of the
	// symbol when the data would otherwise need many mode switches, such as
	// compressed files.
	HintBinary
)

var hintNames = [...]string{"none", "numbers", "text", "binary"}

// String returns the name of the hint.
func (h Hint) String() string {
	if h < 0 || int(h) >= len(hintNames) {
		return "unknown"
	}
	return hintNames[h]
}

// ParseHint returns the hint with the given name.
func ParseHint(s string) (Hint, error) {
	for i, name := range hintNames {
		if strings.EqualFold(s, name) {
			return Hint(i), nil
		}
	}
	return HintNone, invalidf("hint %q is not one of none, numbers, text, binary", s)
}

// Options configures symbol generation. The zero value is not valid; start
// from DefaultOptions.
type Options struct {
	// Columns is the number of data columns in the symbol. The total number
	// of columns is greater due to the start, stop and row indicator columns.
	Columns int

	// SecurityLevel selects the number of error correction codewords,
	// 2^(SecurityLevel+1).
	SecurityLevel int

	// Hint forces a compaction mode.
	Hint Hint

	// CharacterSet, when set, names the character set strings are converted
	// to before encoding, and an ECI designator for it is written at the
	// start of the symbol.
	CharacterSet string
}

// DefaultOptions returns the default options: 6 columns, security level 2,
// automatic compaction.
func DefaultOptions() Options {
	return Options{
		Columns:       DefaultColumns,
		SecurityLevel: DefaultSecurityLevel,
		Hint:          HintNone,
	}
}

// ErrorCorrectionCount returns the number of error correction codewords for
// the configured security level.
func (o Options) ErrorCorrectionCount() int {
	return 1 << uint(o.SecurityLevel+1)
}

// Validate reports the first option outside its range, wrapping
// ErrInvalidConfiguration. Character set names are checked by the charset
// package when the options are bound to an encoder.
func (o Options) Validate() error {
	if o.Columns < MinColumns || o.Columns > MaxColumns {
		return invalidf("columns %d out of range [%d, %d]", o.Columns, MinColumns, MaxColumns)
	}
	if o.SecurityLevel < MinSecurityLevel || o.SecurityLevel > MaxSecurityLevel {
		return invalidf("security level %d out of range [%d, %d]",
			o.SecurityLevel, MinSecurityLevel, MaxSecurityLevel)
	}
	if o.Hint < HintNone || o.Hint > HintBinary {
		return invalidf("unknown hint %d", int(o.Hint))
	}
	return nil
}
