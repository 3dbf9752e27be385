package encoder

import (
	"fmt"

	pdf417go "github.com/ericlevine/pdf417go"
)

// Chain is a run of input that is compacted in a single mode.
type Chain struct {
	Data []byte
	Mode Mode
}

func (c Chain) String() string {
	return fmt.Sprintf("%s(%q)", c.Mode, c.Data)
}

// SplitChains partitions input into maximal runs. Each run starts with the
// first mode in modes that accepts its first unit and extends while that
// mode accepts the following units. The returned chains alias input.
func SplitChains(input []byte, modes []Mode) ([]Chain, error) {
	var chains []Chain
	for i := 0; i < len(input); {
		m, ok := firstAccepting(modes, input[i])
		if !ok {
			return nil, &pdf417go.EncodingError{Position: i + 1, Unit: rune(input[i])}
		}
		j := i + 1
		for j < len(input) && m.Accepts(input[j]) {
			j++
		}
		chains = append(chains, Chain{Data: input[i:j:j], Mode: m})
		i = j
	}
	return chains, nil
}

func firstAccepting(modes []Mode, b byte) (Mode, bool) {
	for _, m := range modes {
		if m.Accepts(b) {
			return m, true
		}
	}
	return 0, false
}
