package encoder

// Mode is a compaction mode: a way of packing a homogeneous run of input
// into codewords.
type Mode int

const (
	// ModeNumeric packs runs of ASCII digits, about 2.9 digits per codeword.
	ModeNumeric Mode = iota
	// ModeText packs printable ASCII, two characters per codeword.
	ModeText
	// ModeByte packs arbitrary bytes, 6 bytes per 5 codewords.
	ModeByte
)

// Mode latch and shift codewords.
const (
	LatchToText       = 900
	LatchToBytePadded = 901
	LatchToNumeric    = 902
	ShiftToByte       = 913
	LatchToByte       = 924
	ECIUserDefined    = 925
	ECIGeneralPurpose = 926
	ECICharset        = 927

	// PadCodeword fills the symbol between the data and the error
	// correction codewords.
	PadCodeword = LatchToText
)

// DefaultModes lists the compaction modes in order of preference.
var DefaultModes = []Mode{ModeNumeric, ModeText, ModeByte}

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeText:
		return "text"
	case ModeByte:
		return "byte"
	}
	return "unknown"
}

// Accepts reports whether the mode can represent b.
func (m Mode) Accepts(b byte) bool {
	switch m {
	case ModeNumeric:
		return isDigit(b)
	case ModeText:
		return isText(b)
	case ModeByte:
		return true
	}
	return false
}

// Compact returns the codewords for run, which every unit of must be
// accepted by m. The mode latch is not included.
func (m Mode) Compact(run []byte) []int {
	switch m {
	case ModeNumeric:
		return compactNumeric(run)
	case ModeText:
		return compactText(run)
	case ModeByte:
		return compactBytes(run)
	}
	panic("encoder: unknown mode")
}

// Latch returns the codeword that switches a decoder into m for run. Byte
// compaction has two latches, one of which tells the decoder that the run
// length is a multiple of 6.
func (m Mode) Latch(run []byte) int {
	switch m {
	case ModeNumeric:
		return LatchToNumeric
	case ModeText:
		return LatchToText
	case ModeByte:
		if len(run)%6 == 0 {
			return LatchToByte
		}
		return LatchToBytePadded
	}
	panic("encoder: unknown mode")
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isText(ch byte) bool {
	return ch == '\t' || ch == '\n' || ch == '\r' || (ch >= ' ' && ch <= '~')
}
