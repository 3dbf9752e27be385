package pdf417go

import "github.com/ericlevine/pdf417go/bitutil"

// WriteOptions configures encoding a symbol into a module matrix of a
// given size.
type WriteOptions struct {
	// Options configures the symbol. The zero value selects
	// DefaultOptions.
	Options

	// AspectRatio is the height of a module in module widths. Zero selects
	// the default of 3.
	AspectRatio int

	// Margin specifies the margin (quiet zone) in modules around the barcode.
	Margin *int
}

// Writer encodes data into a barcode.
type Writer interface {
	// Encode encodes the given contents into a barcode that fits in width
	// by height modules when possible.
	Encode(contents string, width, height int, opts *WriteOptions) (*bitutil.BitMatrix, error)
}
