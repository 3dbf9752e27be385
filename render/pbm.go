package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ericlevine/pdf417go/bitutil"
)

// WritePBM writes m as a binary portable bitmap (P4). Colours are ignored;
// bars are black.
func WritePBM(w io.Writer, m *bitutil.BitMatrix, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	width, height := Size(m, opts)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P4\n%d %d\n", width, height)

	blank := make([]byte, (width+7)/8)
	for i := 0; i < opts.Padding; i++ {
		bw.Write(blank)
	}
	line := make([]byte, len(blank))
	for y := 0; y < m.Height(); y++ {
		row := &bitutil.BitArray{}
		row.AppendRun(false, opts.Padding)
		for x := 0; x < m.Width(); x++ {
			row.AppendRun(m.Get(x, y), opts.Scale)
		}
		row.ToBytes(0, line, 0, len(line))
		for i := 0; i < opts.Scale*opts.Ratio; i++ {
			bw.Write(line)
		}
	}
	for i := 0; i < opts.Padding; i++ {
		bw.Write(blank)
	}
	return bw.Flush()
}
