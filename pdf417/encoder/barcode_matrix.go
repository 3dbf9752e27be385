// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/ericlevine/pdf417go/bitutil"

// RowWidth returns the number of modules in a row of a symbol with the
// given number of data columns: start pattern, left row indicator, data,
// right row indicator and stop pattern.
func RowWidth(columns int) int {
	return (columns+4)*ModulesInCodeword + 1
}

// barcodeMatrix holds the module rows of a symbol while it is laid out.
type barcodeMatrix struct {
	rows       []*bitutil.BitArray
	currentRow int
	width      int
}

func newBarcodeMatrix(height, columns int) *barcodeMatrix {
	return &barcodeMatrix{
		rows:       make([]*bitutil.BitArray, height),
		currentRow: -1,
		width:      RowWidth(columns),
	}
}

// startRow begins the next row.
func (bm *barcodeMatrix) startRow() {
	bm.currentRow++
	bm.rows[bm.currentRow] = &bitutil.BitArray{}
}

// addCodeword appends the pattern of value in the current row's cluster.
func (bm *barcodeMatrix) addCodeword(value int) {
	bm.rows[bm.currentRow].AppendBits(Pattern(bm.currentRow%3, value), ModulesInCodeword)
}

func (bm *barcodeMatrix) addStart() {
	bm.rows[bm.currentRow].AppendBits(startPattern, ModulesInCodeword)
}

func (bm *barcodeMatrix) addStop() {
	bm.rows[bm.currentRow].AppendBits(stopPattern, ModulesInStopPattern)
}

// bitMatrix returns the rows as a matrix, first row on top.
func (bm *barcodeMatrix) bitMatrix() *bitutil.BitMatrix {
	out := bitutil.NewBitMatrix(bm.width, len(bm.rows))
	for y, row := range bm.rows {
		if row.Size() != bm.width {
			panic("encoder: row width mismatch")
		}
		out.SetRow(y, row)
	}
	return out
}
