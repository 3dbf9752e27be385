package encoder

import (
	"fmt"

	pdf417go "github.com/ericlevine/pdf417go"
	"github.com/ericlevine/pdf417go/bitutil"
)

// Symbol is an assembled PDF417 symbol.
type Symbol struct {
	Columns       int
	Rows          int
	SecurityLevel int

	DataCount int
	PadCount  int
	ECCount   int

	// Codewords is the full codeword stream in row order: the length
	// descriptor, the data, the padding and the error correction codewords.
	Codewords []int

	// Matrix holds one module row per symbol row; a set module is a bar.
	Matrix *bitutil.BitMatrix
}

// Layout returns the padding and the number of rows for dataCount data
// codewords. The symbol is never less than MinRowsInBarcode rows high.
func Layout(dataCount, columns, level int) (padCount, rows int, err error) {
	if columns < pdf417go.MinColumns || columns > pdf417go.MaxColumns {
		return 0, 0, fmt.Errorf("%w: columns %d out of range [%d, %d]",
			pdf417go.ErrInvalidConfiguration, columns, pdf417go.MinColumns, pdf417go.MaxColumns)
	}
	if level < pdf417go.MinSecurityLevel || level > pdf417go.MaxSecurityLevel {
		return 0, 0, fmt.Errorf("%w: security level %d out of range [%d, %d]",
			pdf417go.ErrInvalidConfiguration, level, pdf417go.MinSecurityLevel, pdf417go.MaxSecurityLevel)
	}
	n := dataCount + 1 + ErrorCorrectionCount(level)
	padCount = (columns - n%columns) % columns
	rows = (n + padCount) / columns
	if rows < MinRowsInBarcode {
		padCount += (MinRowsInBarcode - rows) * columns
		rows = MinRowsInBarcode
	}
	if rows > MaxRowsInBarcode {
		return 0, 0, fmt.Errorf("%w: %d rows needed, at most %d allowed",
			pdf417go.ErrCapacity, rows, MaxRowsInBarcode)
	}
	if rows*columns > MaxCodewordsInBarcode {
		return 0, 0, fmt.Errorf("%w: %d codewords needed, at most %d allowed",
			pdf417go.ErrCapacity, rows*columns, MaxCodewordsInBarcode)
	}
	return padCount, rows, nil
}

// Assemble lays data out into a symbol with the given number of data
// columns and security level.
func Assemble(data []int, columns, level int) (*Symbol, error) {
	for i, cw := range data {
		if cw < 0 || cw >= NumberOfCodewords {
			return nil, fmt.Errorf("%w: data codeword %d is %d", pdf417go.ErrEncoding, i, cw)
		}
	}
	padCount, rows, err := Layout(len(data), columns, level)
	if err != nil {
		return nil, err
	}

	length := len(data) + padCount + 1
	codewords := make([]int, 0, rows*columns)
	codewords = append(codewords, length)
	codewords = append(codewords, data...)
	for i := 0; i < padCount; i++ {
		codewords = append(codewords, PadCodeword)
	}
	codewords = append(codewords, ComputeErrorCorrection(codewords, level)...)

	s := &Symbol{
		Columns:       columns,
		Rows:          rows,
		SecurityLevel: level,
		DataCount:     len(data),
		PadCount:      padCount,
		ECCount:       ErrorCorrectionCount(level),
		Codewords:     codewords,
	}
	s.Matrix = s.encodeLowLevel()
	return s, nil
}

func (s *Symbol) encodeLowLevel() *bitutil.BitMatrix {
	bm := newBarcodeMatrix(s.Rows, s.Columns)
	for y, row := range s.Grid() {
		left, right := s.RowIndicators(y)
		bm.startRow()
		bm.addStart()
		bm.addCodeword(left)
		for _, cw := range row {
			bm.addCodeword(cw)
		}
		bm.addCodeword(right)
		bm.addStop()
	}
	return bm.bitMatrix()
}

// Grid returns the codeword stream split into rows of Columns codewords.
// The rows share storage with Codewords.
func (s *Symbol) Grid() [][]int {
	grid := make([][]int, s.Rows)
	for y := range grid {
		grid[y] = s.Codewords[y*s.Columns : (y+1)*s.Columns : (y+1)*s.Columns]
	}
	return grid
}

// RowIndicators returns the left and right row indicator values of row r.
// Together, three consecutive rows carry the row count, the column count
// and the security level.
func (s *Symbol) RowIndicators(r int) (left, right int) {
	base := 30 * (r / 3)
	rowsValue := (s.Rows - 1) / 3
	columnsValue := s.Columns - 1
	levelValue := s.SecurityLevel*3 + (s.Rows-1)%3
	switch r % 3 {
	case 0:
		return base + rowsValue, base + columnsValue
	case 1:
		return base + levelValue, base + rowsValue
	default:
		return base + columnsValue, base + levelValue
	}
}

// LengthDescriptor returns the first codeword of the symbol: the number of
// codewords that precede the error correction codewords.
func (s *Symbol) LengthDescriptor() int {
	return s.Codewords[0]
}

// Verify checks the structure of the symbol and its error correction
// codewords.
func (s *Symbol) Verify() error {
	total := s.DataCount + s.PadCount + 1 + s.ECCount
	if total != len(s.Codewords) || total != s.Rows*s.Columns {
		return fmt.Errorf("%w: %d codewords do not fill %d rows of %d",
			pdf417go.ErrChecksum, len(s.Codewords), s.Rows, s.Columns)
	}
	if want := s.DataCount + s.PadCount + 1; s.LengthDescriptor() != want {
		return fmt.Errorf("%w: length descriptor %d, want %d",
			pdf417go.ErrChecksum, s.LengthDescriptor(), want)
	}
	return CheckErrorCorrection(s.Codewords, s.ECCount)
}
