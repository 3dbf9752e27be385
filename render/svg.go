package render

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/ericlevine/pdf417go/bitutil"
)

const svgDoctype = `DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"`

func attr(name string, v interface{}) xml.Attr {
	var s string
	switch v := v.(type) {
	case int:
		s = strconv.Itoa(v)
	case string:
		s = v
	}
	return xml.Attr{Name: xml.Name{Local: name}, Value: s}
}

// WriteSVG writes m as an SVG 1.1 document with one rectangle per bar
// module. Padding and the background colour are not used.
func WriteSVG(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	sx, sy := opts.Scale, opts.Scale*opts.Ratio

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			attr("height", m.Height()*sy),
			attr("width", m.Width()*sx),
			attr("version", "1.1"),
			attr("xmlns", "http://www.w3.org/2000/svg"),
		},
	}
	tokens := []xml.Token{
		xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0"`)},
		xml.CharData("\n"),
		xml.Directive(svgDoctype),
		xml.CharData("\n"),
		svg,
	}
	for _, t := range tokens {
		if err := enc.EncodeToken(t); err != nil {
			return err
		}
	}
	if opts.Description != "" {
		desc := xml.StartElement{Name: xml.Name{Local: "description"}}
		if err := enc.EncodeElement(opts.Description, desc); err != nil {
			return err
		}
	}
	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			attr("id", "barcode"),
			attr("fill", hexColor(opts.Color)),
			attr("stroke", "none"),
		},
	}
	if err := enc.EncodeToken(g); err != nil {
		return err
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.Get(x, y) {
				continue
			}
			rect := xml.StartElement{
				Name: xml.Name{Local: "rect"},
				Attr: []xml.Attr{
					attr("x", x*sx),
					attr("y", y*sy),
					attr("width", sx),
					attr("height", sy),
				},
			}
			if err := enc.EncodeToken(rect); err != nil {
				return err
			}
			if err := enc.EncodeToken(rect.End()); err != nil {
				return err
			}
		}
	}
	if err := enc.EncodeToken(g.End()); err != nil {
		return err
	}
	if err := enc.EncodeToken(svg.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
