package pdf417

import (
	"fmt"

	pdf417go "github.com/ericlevine/pdf417go"
	"github.com/ericlevine/pdf417go/charset"
	"github.com/ericlevine/pdf417go/pdf417/encoder"
)

// Encoder encodes messages into PDF417 symbols with a fixed set of options.
// It is safe for concurrent use.
type Encoder struct {
	opts pdf417go.Options
	eci  *charset.ECI
}

// NewEncoder validates opts and returns an Encoder bound to them.
func NewEncoder(opts pdf417go.Options) (*Encoder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &Encoder{opts: opts}
	if opts.CharacterSet != "" {
		eci, err := charset.ByName(opts.CharacterSet)
		if err != nil {
			return nil, err
		}
		e.eci = eci
	}
	return e, nil
}

// Options returns the options the encoder was created with.
func (e *Encoder) Options() pdf417go.Options {
	return e.opts
}

// Encode encodes data as is. When a character set is configured, its ECI
// designator precedes the data.
func (e *Encoder) Encode(data []byte) (*encoder.Symbol, error) {
	codewords, err := encoder.EncodeData(data, e.opts.Hint)
	if err != nil {
		return nil, err
	}
	if e.eci != nil {
		eci, err := encoder.ECIDesignator(e.eci.Value)
		if err != nil {
			return nil, err
		}
		codewords = append(eci, codewords...)
	}
	sym, err := encoder.Assemble(codewords, e.opts.Columns, e.opts.SecurityLevel)
	if err != nil {
		return nil, fmt.Errorf("%d data codewords: %w", len(codewords), err)
	}
	return sym, nil
}

// EncodeString encodes s. When a character set is configured, s is first
// converted to it.
func (e *Encoder) EncodeString(s string) (*encoder.Symbol, error) {
	if e.eci == nil {
		return e.Encode([]byte(s))
	}
	data, err := e.eci.Encode(s)
	if err != nil {
		return nil, err
	}
	return e.Encode(data)
}

// Encode encodes s into a symbol with the given options.
func Encode(s string, opts pdf417go.Options) (*encoder.Symbol, error) {
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}
	return enc.EncodeString(s)
}
