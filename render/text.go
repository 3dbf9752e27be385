package render

import (
	"io"
	"strings"

	"github.com/ericlevine/pdf417go/bitutil"
)

// textMargin is the quiet zone, in modules, around terminal output.
const textMargin = 2

// light reports whether the module at (x, y) is a space, treating
// everything outside m as quiet zone.
func light(m *bitutil.BitMatrix, x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
		return true
	}
	return !m.Get(x, y)
}

// Text draws m for a terminal using Unicode half blocks, packing two pixel
// rows into each line. Light modules are drawn as blocks and bars are left
// blank, so the symbol reads correctly on a dark background. Each module
// row is repeated Ratio times.
func Text(m *bitutil.BitMatrix, opts Options) string {
	ratio := max(opts.Ratio, 1)
	width := m.Width() + 2*textMargin
	height := (m.Height() + 2*textMargin) * ratio
	// pixel row py maps to module row py/ratio, shifted by the margin
	at := func(x, py int) bool {
		if py >= height {
			return false
		}
		return light(m, x-textMargin, py/ratio-textMargin)
	}

	var sb strings.Builder
	sb.Grow((height + 1) / 2 * (width*3 + 1))
	for py := 0; py < height; py += 2 {
		for x := 0; x < width; x++ {
			top, bottom := at(x, py), at(x, py+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ASCII draws m with '#' for bars and ' ' for spaces. A character cell is
// about twice as tall as it is wide, so each module row is printed
// Ratio/2 times, at least once.
func ASCII(m *bitutil.BitMatrix, opts Options) string {
	repeat := max(opts.Ratio/2, 1)
	blank := strings.Repeat(" ", m.Width()+2*textMargin) + "\n"

	var sb strings.Builder
	for i := 0; i < textMargin; i++ {
		sb.WriteString(blank)
	}
	line := make([]byte, 0, m.Width()+2*textMargin+1)
	for y := 0; y < m.Height(); y++ {
		line = line[:0]
		for x := -textMargin; x < m.Width()+textMargin; x++ {
			if light(m, x, y) {
				line = append(line, ' ')
			} else {
				line = append(line, '#')
			}
		}
		line = append(line, '\n')
		for i := 0; i < repeat; i++ {
			sb.Write(line)
		}
	}
	for i := 0; i < textMargin; i++ {
		sb.WriteString(blank)
	}
	return sb.String()
}

// WriteText writes the half block rendering of m to w.
func WriteText(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	_, err := io.WriteString(w, Text(m, opts))
	return err
}

// WriteASCII writes the '#' rendering of m to w.
func WriteASCII(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	_, err := io.WriteString(w, ASCII(m, opts))
	return err
}
