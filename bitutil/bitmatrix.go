package bitutil

import "strings"

// BitMatrix is a 2D matrix of modules. x is the column, y is the row; the
// origin is at the top-left. Rows are packed into uint32 words.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a BitMatrix with the given width and height.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from a 2D boolean array.
func ParseBoolMatrix(image [][]bool) *BitMatrix {
	height := len(image)
	width := len(image[0])
	bm := NewBitMatrix(width, height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if image[i][j] {
				bm.Set(j, i)
			}
		}
	}
	return bm
}

// ParseStringMatrix creates a BitMatrix from rows separated by newlines,
// where setStr marks a bar and unsetStr a space.
func ParseStringMatrix(repr, setStr, unsetStr string) *BitMatrix {
	var rows [][]bool
	for _, line := range strings.Split(repr, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		var row []bool
		for pos := 0; pos < len(line); {
			switch {
			case strings.HasPrefix(line[pos:], setStr):
				row = append(row, true)
				pos += len(setStr)
			case strings.HasPrefix(line[pos:], unsetStr):
				row = append(row, false)
				pos += len(unsetStr)
			default:
				panic("bitmatrix: illegal character encountered")
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			panic("bitmatrix: row lengths do not match")
		}
		rows = append(rows, row)
	}
	return ParseBoolMatrix(rows)
}

// Get returns true if the module at (x, y) is a bar.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set makes the module at (x, y) a bar.
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset makes the module at (x, y) a space.
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// SetRegion sets a rectangular region of modules.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: the region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
}

// Row returns row y as a BitArray of exactly Width modules.
func (bm *BitMatrix) Row(y int) *BitArray {
	row := NewBitArray(bm.width)
	copy(row.bits, bm.data[y*bm.rowSize:(y+1)*bm.rowSize])
	return row
}

// SetRow replaces row y with the first Width modules of row. Missing
// modules are cleared.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	dst := bm.data[y*bm.rowSize : (y+1)*bm.rowSize]
	n := copy(dst, row.BitData())
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	if row.Size() < bm.width {
		for x := row.Size(); x < bm.width; x++ {
			dst[x/32] &^= 1 << uint(x&0x1f)
		}
	}
	if r := bm.width & 0x1f; r != 0 {
		dst[len(dst)-1] &= 1<<uint(r) - 1
	}
}

// Rotate90 rotates the matrix 90 degrees counterclockwise.
func (bm *BitMatrix) Rotate90() {
	newWidth := bm.height
	newHeight := bm.width
	newRowSize := (newWidth + 31) / 32
	newData := make([]uint32, newRowSize*newHeight)

	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			offset := y*bm.rowSize + x/32
			if (bm.data[offset]>>uint(x&0x1f))&1 != 0 {
				newOffset := (newHeight-1-x)*newRowSize + y/32
				newData[newOffset] |= 1 << uint(y&0x1f)
			}
		}
	}
	bm.width = newWidth
	bm.height = newHeight
	bm.rowSize = newRowSize
	bm.data = newData
}

// Scaled returns a new matrix in which every module becomes a block of
// xScale by yScale modules.
func (bm *BitMatrix) Scaled(xScale, yScale int) *BitMatrix {
	if xScale < 1 || yScale < 1 {
		panic("bitmatrix: scale must be at least 1")
	}
	out := NewBitMatrix(bm.width*xScale, bm.height*yScale)
	for y := 0; y < bm.height; y++ {
		row := bm.Row(y).Scaled(xScale)
		for i := 0; i < yScale; i++ {
			out.SetRow(y*yScale+i, row)
		}
	}
	return out
}

// WithMargin returns a new matrix with margin unset modules added on every
// side.
func (bm *BitMatrix) WithMargin(margin int) *BitMatrix {
	if margin <= 0 {
		return bm.Clone()
	}
	out := NewBitMatrix(bm.width+2*margin, bm.height+2*margin)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				out.Set(x+margin, y+margin)
			}
		}
	}
	return out
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// Bools returns the matrix as rows of booleans, true for a bar.
func (bm *BitMatrix) Bools() [][]bool {
	out := make([][]bool, bm.height)
	for y := range out {
		out[y] = bm.Row(y).Bools()
	}
	return out
}

// String returns a string representation using "X " for bars and "  " for
// spaces.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two matrices have the same size and modules.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
