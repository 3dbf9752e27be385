package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ericlevine/pdf417go/bitutil"
)

// Size returns the pixel size of the raster image of m.
func Size(m *bitutil.BitMatrix, opts Options) (width, height int) {
	return m.Width()*opts.Scale + 2*opts.Padding,
		m.Height()*opts.Scale*opts.Ratio + 2*opts.Padding
}

// Image draws m as a two-colour image. Module (x, y) covers Scale by
// Scale*Ratio pixels, offset by Padding.
func Image(m *bitutil.BitMatrix, opts Options) (*image.Paletted, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	width, height := Size(m, opts)
	img := image.NewPaletted(image.Rect(0, 0, width, height),
		color.Palette{opts.Background, opts.Color})
	fx, fy := opts.Scale, opts.Scale*opts.Ratio
	for y := 0; y < m.Height(); y++ {
		top := opts.Padding + y*fy
		for x := 0; x < m.Width(); x++ {
			if !m.Get(x, y) {
				continue
			}
			left := opts.Padding + x*fx
			for py := top; py < top+fy; py++ {
				row := img.Pix[py*img.Stride:]
				for px := left; px < left+fx; px++ {
					row[px] = 1
				}
			}
		}
	}
	return img, nil
}

// WritePNG writes m as a PNG image.
func WritePNG(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteGIF writes m as a GIF image.
func WriteGIF(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return gif.Encode(w, img, &gif.Options{NumColors: 2})
}

// WriteJPEG writes m as a JPEG image of the configured quality.
func WriteJPEG(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.Quality})
}

// WriteBMP writes m as a Windows bitmap.
func WriteBMP(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// WriteTIFF writes m as a deflate-compressed TIFF image.
func WriteTIFF(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	img, err := Image(m, opts)
	if err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Base64PNG returns the PNG image of m encoded in standard base64, for
// embedding in web pages.
func Base64PNG(m *bitutil.BitMatrix, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, m, opts); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
