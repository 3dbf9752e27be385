// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	pdf417go "github.com/ericlevine/pdf417go"
)

// EncodeData turns input into data codewords: the compaction codewords of
// every chain, each preceded by the latch its mode needs. Decoders start in
// Text mode, so a leading text chain needs no latch.
func EncodeData(input []byte, hint pdf417go.Hint) ([]int, error) {
	chains, err := Chains(input, hint)
	if err != nil {
		return nil, err
	}
	return EncodeChains(chains), nil
}

// Chains resolves hint into the list of chains to encode: the whole input
// in the forced mode, or the result of SplitChains over DefaultModes.
func Chains(input []byte, hint pdf417go.Hint) ([]Chain, error) {
	var forced Mode
	switch hint {
	case pdf417go.HintNone:
		return SplitChains(input, DefaultModes)
	case pdf417go.HintNumbers:
		forced = ModeNumeric
	case pdf417go.HintText:
		forced = ModeText
	case pdf417go.HintBinary:
		forced = ModeByte
	default:
		return nil, fmt.Errorf("%w: unknown hint %d", pdf417go.ErrInvalidConfiguration, int(hint))
	}
	if len(input) == 0 {
		return nil, nil
	}
	for i, b := range input {
		if !forced.Accepts(b) {
			return nil, &pdf417go.EncodingError{
				Position: i + 1,
				Unit:     rune(b),
				Msg:      fmt.Sprintf("%s compaction cannot encode", forced),
			}
		}
	}
	return []Chain{{Data: input, Mode: forced}}, nil
}

// EncodeChains concatenates the compaction output of chains in order.
func EncodeChains(chains []Chain) []int {
	var out []int
	current := ModeText
	for _, c := range chains {
		if c.Mode != current || c.Mode == ModeByte {
			out = append(out, c.Mode.Latch(c.Data))
		}
		out = append(out, c.Mode.Compact(c.Data)...)
		current = c.Mode
	}
	return out
}

// ECIDesignator returns the codewords that announce the Extended Channel
// Interpretation value.
func ECIDesignator(value int) ([]int, error) {
	switch {
	case value < 0:
	case value < 900:
		return []int{ECICharset, value}, nil
	case value < 810900:
		return []int{ECIGeneralPurpose, value/900 - 1, value % 900}, nil
	case value < 811800:
		return []int{ECIUserDefined, value - 810900}, nil
	}
	return nil, fmt.Errorf("%w: ECI value %d out of range", pdf417go.ErrInvalidConfiguration, value)
}
