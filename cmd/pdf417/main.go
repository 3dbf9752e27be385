// Command pdf417 writes a PDF417 barcode encoding its arguments, or
// standard input, as an image, a document or terminal text.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/term"

	pdf417go "github.com/ericlevine/pdf417go"
	"github.com/ericlevine/pdf417go/pdf417"
	"github.com/ericlevine/pdf417go/pdf417/encoder"
	"github.com/ericlevine/pdf417go/render"
)

var g = struct {
	columns int    // data columns
	level   int    // error correction level
	hint    string // compaction hint
	charset string // ECI character set
	latin1  bool   // Latin-1 shortcut for -e
	typ     string // output type
	fn      string // output file name
	scale   int    // module width in pixels
	ratio   int    // module height in module widths
	padding int    // quiet zone in pixels
	quality int    // JPEG quality
	fg, bg  colour // colours
	desc    string // SVG description
	verbose bool   // print codeword grid
}{
	columns: pdf417go.DefaultColumns,
	level:   pdf417go.DefaultSecurityLevel,
	hint:    pdf417go.HintNone.String(),
	scale:   render.DefaultScale,
	ratio:   render.DefaultRatio,
	padding: render.DefaultPadding,
	quality: render.DefaultQuality,
	fg:      colour{0x00, 0x00, 0x00, 0xff},
	bg:      colour{0xff, 0xff, 0xff, 0xff},
}

func usage() {
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("[string ...]")
	help := getopt.BoolLong("help", 'h', "show this help")
	getopt.FlagLong(&g.columns, "columns", 'c',
		fmt.Sprintf("number of data columns, %d to %d",
			pdf417go.MinColumns, pdf417go.MaxColumns), "columns")
	getopt.FlagLong(&g.level, "security", 's',
		fmt.Sprintf("error correction level, %d to %d",
			pdf417go.MinSecurityLevel, pdf417go.MaxSecurityLevel), "level")
	getopt.FlagLong(&g.hint, "hint", 'H',
		"compaction hint: none, numbers, text or binary", "hint")
	getopt.FlagLong(&g.charset, "encoding", 'e',
		"convert input to this character set and emit its ECI", "charset")
	getopt.FlagLong(&g.latin1, "latin1", '1', "same as -e ISO-8859-1")
	getopt.FlagLong(&g.typ, "type", 't', "output type, one of: "+
		strings.Join(render.Formats(), ", ")+
		`; if not given, taken from the -o file name, or utf8 when `+
		`standard output is a terminal and png otherwise`, "type")
	getopt.FlagLong(&g.fn, "output", 'o',
		`output file, or "-" for standard output`, "file")
	getopt.FlagLong(&g.scale, "scale", 'S', "module width in pixels", "scale")
	getopt.FlagLong(&g.ratio, "ratio", 'r', "module height to width ratio", "ratio")
	getopt.FlagLong(&g.padding, "padding", 'p', "quiet zone in pixels", "padding")
	getopt.FlagLong(&g.quality, "quality", 'q', "JPEG quality", "quality")
	getopt.FlagLong(&g.fg, "foreground", 'F',
		"bar colour as 3, 4, 6 or 8 hex digits or a name", "RGB[A]|name")
	getopt.FlagLong(&g.bg, "background", 'B', "background colour; see -F", "RGB[A]|name")
	getopt.FlagLong(&g.desc, "description", 'd', "SVG description", "text")
	getopt.FlagLong(&g.verbose, "verbose", 'v', "print the codeword grid to standard error")

	getopt.Parse()
	if *help {
		getopt.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if g.latin1 {
		if g.charset != "" {
			fmt.Fprintln(os.Stderr, "-1 and -e are incompatible")
			usage()
		}
		g.charset = "ISO-8859-1"
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	hint, err := pdf417go.ParseHint(g.hint)
	if err != nil {
		log.Fatalln(err)
	}
	opts := pdf417go.Options{
		Columns:       g.columns,
		SecurityLevel: g.level,
		Hint:          hint,
		CharacterSet:  g.charset,
	}
	ropts := render.Options{
		Scale:       g.scale,
		Ratio:       g.ratio,
		Padding:     g.padding,
		Quality:     g.quality,
		Color:       g.fg.rgba(),
		Background:  g.bg.rgba(),
		Description: g.desc,
	}
	if err := ropts.Validate(); err != nil {
		log.Fatalln(err)
	}
	format, err := outputFormat(g.typ, g.fn, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		log.Fatalln(err)
	}

	s, err := readInput(getopt.Args(), os.Stdin)
	if err != nil {
		log.Fatalln(err)
	}
	enc, err := pdf417.NewEncoder(opts)
	if err != nil {
		log.Fatalln(err)
	}
	sym, err := enc.EncodeString(s)
	if err != nil {
		log.Fatalln(err)
	}
	if g.verbose {
		printGrid(os.Stderr, sym)
	}
	if format == render.UTF8 || format == render.ASCIIArt {
		warnWidth(sym, format)
	}

	w := os.Stdout
	if g.fn != "" {
		if w, err = os.Create(g.fn); err != nil {
			log.Fatalln(err)
		}
	}
	err = render.Write(w, format, sym.Matrix, ropts)
	if g.fn != "" {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// readInput joins args with spaces or, when there are none, reads r and
// strips the final newline.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}

// outputFormat picks the output format from -t, then the output file
// name, then whether standard output is a terminal.
func outputFormat(typ, fn string, tty bool) (render.Format, error) {
	switch {
	case typ != "":
		return render.ParseFormat(typ)
	case fn != "":
		return render.FormatForFile(fn)
	case tty:
		return render.UTF8, nil
	}
	return render.PNG, nil
}

// printGrid writes one line per row: the left indicator, the data
// codewords and the right indicator.
func printGrid(w io.Writer, sym *encoder.Symbol) {
	fmt.Fprintf(w, "%d rows, %d columns, level %d: %d data, %d pad, %d error correction codewords\n",
		sym.Rows, sym.Columns, sym.SecurityLevel, sym.DataCount, sym.PadCount, sym.ECCount)
	for r, row := range sym.Grid() {
		left, right := sym.RowIndicators(r)
		fmt.Fprintf(w, "%3d |", left)
		for _, cw := range row {
			fmt.Fprintf(w, " %3d", cw)
		}
		fmt.Fprintf(w, " | %3d\n", right)
	}
}

// warnWidth warns when text output will not fit the terminal.
func warnWidth(sym *encoder.Symbol, format render.Format) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return
	}
	if need := textWidth(sym.Matrix.Width()); need > cols {
		log.Printf("warning: %s output is %d columns wide, the terminal has %d; try -c %d",
			format, need, cols, fitColumns(cols))
	}
}

// textWidth is the width in terminal cells of text output for a matrix
// of the given width.
func textWidth(modules int) int {
	return modules + 4
}

// fitColumns returns the largest column count whose text output fits in
// cols terminal cells, at least 1.
func fitColumns(cols int) int {
	for c := pdf417go.MaxColumns; c > pdf417go.MinColumns; c-- {
		if textWidth(encoder.RowWidth(c)) <= cols {
			return c
		}
	}
	return pdf417go.MinColumns
}
