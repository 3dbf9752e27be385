// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// Text compaction submodes
const (
	submodeAlpha = iota
	submodeLower
	submodeMixed
	submodePunctuation
)

// Text compaction switch values
const (
	tcSpace = 26
	tcLL    = 27 // latch to lower
	tcAS    = 27 // shift to alpha, from lower
	tcML    = 28 // latch to mixed
	tcAL    = 28 // latch to alpha, from mixed
	tcPL    = 25 // latch to punctuation, from mixed
	tcPS    = 29 // shift to punctuation
	tcPAL   = 29 // latch to alpha, from punctuation
)

// textMixedRaw is the raw code table for text compaction Mixed sub-mode.
var textMixedRaw = []byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

// textPunctuationRaw is the raw code table for text compaction Punctuation sub-mode.
var textPunctuationRaw = []byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

var (
	mixed       [128]int
	punctuation [128]int
)

func init() {
	for i := range mixed {
		mixed[i] = -1
		punctuation[i] = -1
	}
	for i, b := range textMixedRaw {
		if b > 0 {
			mixed[b] = i
		}
	}
	for i, b := range textPunctuationRaw {
		if b > 0 {
			punctuation[b] = i
		}
	}
}

// compactText encodes text using Text Compaction as described in
// ISO/IEC 15438:2001(E), chapter 4.4.2. The run starts in the Alpha
// submode.
func compactText(text []byte) []int {
	if len(text) == 0 {
		return nil
	}
	values := make([]int, 0, len(text)*2)
	submode := submodeAlpha
	idx := 0
	for idx < len(text) {
		ch := text[idx]
		switch submode {
		case submodeAlpha:
			switch {
			case isAlphaUpper(ch):
				values = append(values, alphaValue(ch, 'A'))
			case isAlphaLower(ch):
				submode = submodeLower
				values = append(values, tcLL)
				continue
			case isMixed(ch):
				submode = submodeMixed
				values = append(values, tcML)
				continue
			default:
				values = append(values, tcPS, punctuation[ch])
			}

		case submodeLower:
			switch {
			case isAlphaLower(ch):
				values = append(values, alphaValue(ch, 'a'))
			case isAlphaUpper(ch):
				values = append(values, tcAS, int(ch-'A'))
			case isMixed(ch):
				submode = submodeMixed
				values = append(values, tcML)
				continue
			default:
				values = append(values, tcPS, punctuation[ch])
			}

		case submodeMixed:
			switch {
			case isMixed(ch):
				values = append(values, mixed[ch])
			case isAlphaUpper(ch):
				submode = submodeAlpha
				values = append(values, tcAL)
				continue
			case isAlphaLower(ch):
				submode = submodeLower
				values = append(values, tcLL)
				continue
			case idx+1 < len(text) && isPunctuation(text[idx+1]):
				submode = submodePunctuation
				values = append(values, tcPL)
				continue
			default:
				values = append(values, tcPS, punctuation[ch])
			}

		default: // submodePunctuation
			if isPunctuation(ch) {
				values = append(values, punctuation[ch])
			} else {
				submode = submodeAlpha
				values = append(values, tcPAL)
				continue
			}
		}
		idx++
	}

	out := make([]int, 0, (len(values)+1)/2)
	for i := 0; i+1 < len(values); i += 2 {
		out = append(out, values[i]*30+values[i+1])
	}
	if len(values)%2 != 0 {
		out = append(out, values[len(values)-1]*30+tcPS)
	}
	return out
}

// alphaValue returns the Alpha or Lower value of ch, whose letters start
// at base.
func alphaValue(ch, base byte) int {
	if ch == ' ' {
		return tcSpace
	}
	return int(ch - base)
}

func isAlphaUpper(ch byte) bool {
	return ch == ' ' || (ch >= 'A' && ch <= 'Z')
}

func isAlphaLower(ch byte) bool {
	return ch == ' ' || (ch >= 'a' && ch <= 'z')
}

func isMixed(ch byte) bool {
	return ch < 128 && mixed[ch] != -1
}

func isPunctuation(ch byte) bool {
	return ch < 128 && punctuation[ch] != -1
}
