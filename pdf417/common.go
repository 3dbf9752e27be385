// Package pdf417 encodes data into PDF417 symbols.
package pdf417

import "github.com/ericlevine/pdf417go/pdf417/encoder"

const (
	NumberOfCodewords     = encoder.NumberOfCodewords
	MaxCodewordsInBarcode = encoder.MaxCodewordsInBarcode
	MinRowsInBarcode      = encoder.MinRowsInBarcode
	MaxRowsInBarcode      = encoder.MaxRowsInBarcode
	ModulesInCodeword     = encoder.ModulesInCodeword
	ModulesInStopPattern  = encoder.ModulesInStopPattern
	BarsInModule          = encoder.BarsInModule
)
