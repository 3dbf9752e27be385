// Package charset maps character set names to Extended Channel
// Interpretation (ECI) designators and converts strings into those
// character sets.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	pdf417go "github.com/ericlevine/pdf417go"
)

// ECI represents a Character Set Extended Channel Interpretation.
type ECI struct {
	Value   int
	Name    string
	Aliases []string

	enc encoding.Encoding
	// ascii restricts the repertoire to 7-bit characters.
	ascii bool
}

// pre-defined ECIs
var (
	ECICp437      = &ECI{Value: 0, Name: "Cp437", Aliases: []string{"IBM437"}, enc: charmap.CodePage437}
	ECIISO8859_1  = &ECI{Value: 1, Name: "ISO-8859-1", Aliases: []string{"ISO8859_1", "Latin1"}, enc: charmap.ISO8859_1}
	ECIISO8859_2  = &ECI{Value: 4, Name: "ISO-8859-2", Aliases: []string{"ISO8859_2"}, enc: charmap.ISO8859_2}
	ECIISO8859_3  = &ECI{Value: 5, Name: "ISO-8859-3", Aliases: []string{"ISO8859_3"}, enc: charmap.ISO8859_3}
	ECIISO8859_4  = &ECI{Value: 6, Name: "ISO-8859-4", Aliases: []string{"ISO8859_4"}, enc: charmap.ISO8859_4}
	ECIISO8859_5  = &ECI{Value: 7, Name: "ISO-8859-5", Aliases: []string{"ISO8859_5"}, enc: charmap.ISO8859_5}
	ECIISO8859_6  = &ECI{Value: 8, Name: "ISO-8859-6", Aliases: []string{"ISO8859_6"}, enc: charmap.ISO8859_6}
	ECIISO8859_7  = &ECI{Value: 9, Name: "ISO-8859-7", Aliases: []string{"ISO8859_7"}, enc: charmap.ISO8859_7}
	ECIISO8859_8  = &ECI{Value: 10, Name: "ISO-8859-8", Aliases: []string{"ISO8859_8"}, enc: charmap.ISO8859_8}
	ECIISO8859_9  = &ECI{Value: 11, Name: "ISO-8859-9", Aliases: []string{"ISO8859_9"}, enc: charmap.ISO8859_9}
	ECIISO8859_10 = &ECI{Value: 12, Name: "ISO-8859-10", Aliases: []string{"ISO8859_10"}, enc: charmap.ISO8859_10}
	ECIISO8859_13 = &ECI{Value: 15, Name: "ISO-8859-13", Aliases: []string{"ISO8859_13"}, enc: charmap.ISO8859_13}
	ECIISO8859_14 = &ECI{Value: 16, Name: "ISO-8859-14", Aliases: []string{"ISO8859_14"}, enc: charmap.ISO8859_14}
	ECIISO8859_15 = &ECI{Value: 17, Name: "ISO-8859-15", Aliases: []string{"ISO8859_15"}, enc: charmap.ISO8859_15}
	ECIISO8859_16 = &ECI{Value: 18, Name: "ISO-8859-16", Aliases: []string{"ISO8859_16"}, enc: charmap.ISO8859_16}
	ECISJIS       = &ECI{Value: 20, Name: "Shift_JIS", Aliases: []string{"SJIS"}, enc: japanese.ShiftJIS}
	ECICp1250     = &ECI{Value: 21, Name: "windows-1250", Aliases: []string{"Cp1250"}, enc: charmap.Windows1250}
	ECICp1251     = &ECI{Value: 22, Name: "windows-1251", Aliases: []string{"Cp1251"}, enc: charmap.Windows1251}
	ECICp1252     = &ECI{Value: 23, Name: "windows-1252", Aliases: []string{"Cp1252"}, enc: charmap.Windows1252}
	ECICp1256     = &ECI{Value: 24, Name: "windows-1256", Aliases: []string{"Cp1256"}, enc: charmap.Windows1256}
	ECIUTF16BE    = &ECI{Value: 25, Name: "UTF-16BE", Aliases: []string{"UnicodeBig", "UnicodeBigUnmarked"}, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	ECIUTF8       = &ECI{Value: 26, Name: "UTF-8", Aliases: []string{"UTF8"}, enc: unicode.UTF8}
	ECIASCII      = &ECI{Value: 27, Name: "US-ASCII", Aliases: []string{"ASCII"}, enc: charmap.ISO8859_1, ascii: true}
	ECIBig5       = &ECI{Value: 28, Name: "Big5", enc: traditionalchinese.Big5}
	ECIGB18030    = &ECI{Value: 29, Name: "GB18030", Aliases: []string{"GB2312", "EUC_CN", "GBK"}, enc: simplifiedchinese.GB18030}
	ECIEUC_KR     = &ECI{Value: 30, Name: "EUC-KR", Aliases: []string{"EUC_KR"}, enc: korean.EUCKR}
)

var (
	valueToECI map[int]*ECI
	nameToECI  map[string]*ECI
)

func init() {
	valueToECI = make(map[int]*ECI)
	nameToECI = make(map[string]*ECI)

	allECIs := []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_13, ECIISO8859_14, ECIISO8859_15,
		ECIISO8859_16, ECISJIS, ECICp1250, ECICp1251, ECICp1252, ECICp1256,
		ECIUTF16BE, ECIUTF8, ECIASCII, ECIBig5, ECIGB18030, ECIEUC_KR,
	}

	// Values 2 and 3 are the GLI aliases of Cp437 and ISO-8859-1; 170 is
	// the ISO 646 invariant set.
	extraValues := map[*ECI][]int{
		ECICp437:     {0, 2},
		ECIISO8859_1: {1, 3},
		ECIASCII:     {27, 170},
	}

	for _, eci := range allECIs {
		if vals, ok := extraValues[eci]; ok {
			for _, v := range vals {
				valueToECI[v] = eci
			}
		} else {
			valueToECI[eci.Value] = eci
		}
		nameToECI[strings.ToUpper(eci.Name)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[strings.ToUpper(alias)] = eci
		}
	}
}

// ByValue returns the ECI registered under the given designator value.
func ByValue(value int) (*ECI, error) {
	if eci, ok := valueToECI[value]; ok {
		return eci, nil
	}
	return nil, fmt.Errorf("%w: unknown ECI value %d", pdf417go.ErrInvalidConfiguration, value)
}

// ByName returns the ECI for the given character set name. Names are
// matched case-insensitively against the canonical name and its aliases.
func ByName(name string) (*ECI, error) {
	if eci, ok := nameToECI[strings.ToUpper(name)]; ok {
		return eci, nil
	}
	return nil, fmt.Errorf("%w: unsupported character set %q", pdf417go.ErrInvalidConfiguration, name)
}

// String returns the canonical name.
func (e *ECI) String() string {
	return e.Name
}

// Encode converts the UTF-8 string s to this character set. A rune the
// character set cannot represent yields a *pdf417go.EncodingError carrying
// its 1-based position in s, counted in runes.
func (e *ECI) Encode(s string) ([]byte, error) {
	if e.ascii {
		if pos, r := firstRune(s, func(r rune) bool { return r >= utf8.RuneSelf }); pos > 0 {
			return nil, &pdf417go.EncodingError{Position: pos, Unit: r, Msg: "not representable in " + e.Name}
		}
	}
	out, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err == nil {
		return out, nil
	}
	pos, r := firstRune(s, func(r rune) bool {
		_, err := e.enc.NewEncoder().String(string(r))
		return err != nil
	})
	if pos == 0 {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	return nil, &pdf417go.EncodingError{Position: pos, Unit: r, Msg: "not representable in " + e.Name}
}

// Decode converts b from this character set to a UTF-8 string.
func (e *ECI) Decode(b []byte) (string, error) {
	out, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Name, err)
	}
	return string(out), nil
}

// Encode converts s to the named character set and returns the ECI that
// designates it.
func Encode(s, name string) ([]byte, *ECI, error) {
	eci, err := ByName(name)
	if err != nil {
		return nil, nil, err
	}
	b, err := eci.Encode(s)
	if err != nil {
		return nil, nil, err
	}
	return b, eci, nil
}

// firstRune returns the 1-based position and value of the first rune in s
// for which bad returns true, or 0 if there is none.
func firstRune(s string, bad func(rune) bool) (int, rune) {
	pos := 0
	for _, r := range s {
		pos++
		if bad(r) {
			return pos, r
		}
	}
	return 0, 0
}
