package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	pdf417go "github.com/ericlevine/pdf417go"
)

// Option ranges and defaults.
const (
	MinScale, MaxScale, DefaultScale       = 1, 20, 3
	MinRatio, MaxRatio, DefaultRatio       = 1, 10, 3
	MinPadding, MaxPadding, DefaultPadding = 0, 50, 20
	MinQuality, MaxQuality, DefaultQuality = 0, 100, 90
)

// Options controls how a module matrix is drawn.
type Options struct {
	// Scale is the width of a module in pixels.
	Scale int
	// Ratio is the height of a module in module widths.
	Ratio int
	// Padding is the quiet zone around the symbol in pixels. It is not
	// applied to SVG output.
	Padding int
	// Quality is the JPEG quality.
	Quality int

	Color      color.Color
	Background color.Color

	// Description is embedded in SVG output.
	Description string
}

// DefaultOptions returns black modules on white, 3 pixels wide and 9
// pixels high, with 20 pixels of padding.
func DefaultOptions() Options {
	return Options{
		Scale:      DefaultScale,
		Ratio:      DefaultRatio,
		Padding:    DefaultPadding,
		Quality:    DefaultQuality,
		Color:      color.Black,
		Background: color.White,
	}
}

// Validate reports the first option outside its range, wrapping
// pdf417go.ErrInvalidConfiguration.
func (o Options) Validate() error {
	ranges := []struct {
		name        string
		v, min, max int
	}{
		{"scale", o.Scale, MinScale, MaxScale},
		{"ratio", o.Ratio, MinRatio, MaxRatio},
		{"padding", o.Padding, MinPadding, MaxPadding},
		{"quality", o.Quality, MinQuality, MaxQuality},
	}
	for _, r := range ranges {
		if r.v < r.min || r.v > r.max {
			return fmt.Errorf("%w: %s %d out of range [%d, %d]",
				pdf417go.ErrInvalidConfiguration, r.name, r.v, r.min, r.max)
		}
	}
	if o.Color == nil {
		return fmt.Errorf("%w: no color", pdf417go.ErrInvalidConfiguration)
	}
	if o.Background == nil {
		return fmt.Errorf("%w: no background color", pdf417go.ErrInvalidConfiguration)
	}
	return nil
}

var colorNames = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0xbe, 0xbe, 0xbe, 0xff},
	"grey":    {0xbe, 0xbe, 0xbe, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"maroon":  {0xb0, 0x30, 0x60, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0xa0, 0x20, 0xf0, 0xff},
}

// ParseColor parses a colour given as 3, 4, 6 or 8 hex digits (RGB, RGBA,
// RRGGBB, RRGGBBAA, with an optional leading '#') or as a name.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := colorNames[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: bad colour spec", pdf417go.ErrInvalidConfiguration, s)
	}
	switch len(h) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q: bad colour spec", pdf417go.ErrInvalidConfiguration, s)
	}
	return color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// hexColor formats c as #rrggbb.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
