package render

import (
	"image/color"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"github.com/ericlevine/pdf417go/bitutil"
)

func pdfColor(c color.Color) pdfcolor.Color {
	r, g, b, _ := c.RGBA()
	return pdfcolor.DeviceRGB(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}

// WritePDF writes m as a single page PDF document. The page has the size
// of the raster image in points; each horizontal run of bars is filled as
// one rectangle.
func WritePDF(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	iw, ih := Size(m, opts)
	width, height := float64(iw), float64(ih)
	sx := float64(opts.Scale)
	sy := float64(opts.Scale * opts.Ratio)
	pad := float64(opts.Padding)

	// the document closes its output on Close
	page, err := document.WriteSinglePage(struct{ io.Writer }{w},
		&pdf.Rectangle{URx: width, URy: height}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfColor(opts.Background))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	page.SetFillColor(pdfColor(opts.Color))
	for y := 0; y < m.Height(); y++ {
		bottom := height - pad - float64(y+1)*sy
		for x := 0; x < m.Width(); {
			if !m.Get(x, y) {
				x++
				continue
			}
			start := x
			for x < m.Width() && m.Get(x, y) {
				x++
			}
			page.Rectangle(pad+float64(start)*sx, bottom, float64(x-start)*sx, sy)
		}
	}
	page.Fill()
	return page.Close()
}
