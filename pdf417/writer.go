package pdf417

import (
	pdf417go "github.com/ericlevine/pdf417go"
	"github.com/ericlevine/pdf417go/bitutil"
)

const (
	defaultWhiteSpace  = 30
	defaultAspectRatio = 3
)

// PDF417Writer encodes PDF417 barcodes into module matrices.
type PDF417Writer struct{}

var _ pdf417go.Writer = (*PDF417Writer)(nil)

// NewPDF417Writer creates a new PDF417 writer.
func NewPDF417Writer() *PDF417Writer {
	return &PDF417Writer{}
}

// Encode encodes contents into a matrix scaled by the largest whole factor
// that fits width by height, surrounded by a quiet zone. The symbol is
// rotated when the target is taller than wide.
func (w *PDF417Writer) Encode(contents string, width, height int, opts *pdf417go.WriteOptions) (*bitutil.BitMatrix, error) {
	options := pdf417go.DefaultOptions()
	margin := defaultWhiteSpace
	aspectRatio := defaultAspectRatio
	if opts != nil {
		if opts.Options != (pdf417go.Options{}) {
			options = opts.Options
		}
		if opts.Margin != nil {
			margin = *opts.Margin
		}
		if opts.AspectRatio > 0 {
			aspectRatio = opts.AspectRatio
		}
	}

	sym, err := Encode(contents, options)
	if err != nil {
		return nil, err
	}

	original := sym.Matrix.Scaled(1, aspectRatio)
	rotated := false
	if (height > width) != (original.Width() < original.Height()) {
		original.Rotate90()
		rotated = true
	}

	scaleX := width / original.Width()
	scaleY := height / original.Height()
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	if scale > 1 {
		scaled := sym.Matrix.Scaled(scale, scale*aspectRatio)
		if rotated {
			scaled.Rotate90()
		}
		return scaled.WithMargin(margin), nil
	}
	return original.WithMargin(margin), nil
}
