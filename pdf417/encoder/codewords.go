package encoder

import (
	"fmt"
	"sync"
)

// Symbol geometry.
const (
	NumberOfCodewords     = 929
	MaxCodewordsInBarcode = NumberOfCodewords - 1
	MinRowsInBarcode      = 3
	MaxRowsInBarcode      = 90
	ModulesInCodeword     = 17
	ModulesInStopPattern  = 18
	// BarsInModule is the number of bars and spaces in a codeword pattern.
	BarsInModule = 8
)

const (
	startPattern = 0x1fea8 // 11111111010101000
	stopPattern  = 0x3fa29 // 111111101000101001
)

// Pattern returns the 17-module bar/space pattern of value in the given
// cluster (0, 1 or 2). Bit 16 is the leftmost module.
func Pattern(cluster, value int) uint32 {
	if cluster < 0 || cluster > 2 {
		panic(fmt.Sprintf("encoder: cluster %d out of range", cluster))
	}
	if value < 0 || value >= NumberOfCodewords {
		panic(fmt.Sprintf("encoder: codeword %d out of range", value))
	}
	return codewordTable[cluster][value]
}

// Codeword returns the value whose pattern in cluster is p, or -1 if p is
// not a pattern of that cluster.
func Codeword(cluster int, p uint32) int {
	patternIndexOnce.Do(buildPatternIndex)
	if v, ok := patternIndex[cluster][p]; ok {
		return v
	}
	return -1
}

var (
	patternIndexOnce sync.Once
	patternIndex     [3]map[uint32]int
)

func buildPatternIndex() {
	for c := range codewordTable {
		patternIndex[c] = make(map[uint32]int, NumberOfCodewords)
		for v, p := range codewordTable[c] {
			patternIndex[c][p] = v
		}
	}
}
