// Package render turns a PDF417 module matrix into images and documents:
// raster images (PNG, GIF, JPEG, BMP, TIFF), SVG, PDF, PBM and terminal
// text.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	pdf417go "github.com/ericlevine/pdf417go"
	"github.com/ericlevine/pdf417go/bitutil"
)

// Format is an output format.
type Format int

const (
	PNG Format = iota
	GIF
	JPEG
	BMP
	TIFF
	SVG
	PDF
	PBM
	UTF8
	ASCIIArt
	Base64
)

var formatNames = [...]string{
	PNG:      "png",
	GIF:      "gif",
	JPEG:     "jpg",
	BMP:      "bmp",
	TIFF:     "tif",
	SVG:      "svg",
	PDF:      "pdf",
	PBM:      "pbm",
	UTF8:     "utf8",
	ASCIIArt: "ascii",
	Base64:   "base64",
}

var formatAliases = map[string]Format{
	"jpeg": JPEG,
	"tiff": TIFF,
	"text": UTF8,
	"txt":  UTF8,
	"b64":  Base64,
}

// Formats returns the canonical names of all formats.
func Formats() []string {
	out := make([]string, len(formatNames))
	copy(out, formatNames[:])
	return out
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Extension returns the file name extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case UTF8, ASCIIArt:
		return ".txt"
	case Base64:
		return ".b64"
	}
	return "." + f.String()
}

// Binary reports whether f produces non-text output.
func (f Format) Binary() bool {
	switch f {
	case SVG, UTF8, ASCIIArt, Base64:
		return false
	}
	return true
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[s]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: unsupported output format %q", pdf417go.ErrInvalidConfiguration, s)
}

// FormatForFile picks the format from the extension of name.
func FormatForFile(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", pdf417go.ErrInvalidConfiguration, name)
	}
	return ParseFormat(ext)
}

// Write renders m to w in format f.
func Write(w io.Writer, f Format, m *bitutil.BitMatrix, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	switch f {
	case PNG:
		return WritePNG(w, m, opts)
	case GIF:
		return WriteGIF(w, m, opts)
	case JPEG:
		return WriteJPEG(w, m, opts)
	case BMP:
		return WriteBMP(w, m, opts)
	case TIFF:
		return WriteTIFF(w, m, opts)
	case SVG:
		return WriteSVG(w, m, opts)
	case PDF:
		return WritePDF(w, m, opts)
	case PBM:
		return WritePBM(w, m, opts)
	case UTF8:
		return WriteText(w, m, opts)
	case ASCIIArt:
		return WriteASCII(w, m, opts)
	case Base64:
		s, err := Base64PNG(m, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	}
	return fmt.Errorf("%w: unsupported output format %v", pdf417go.ErrInvalidConfiguration, f)
}
