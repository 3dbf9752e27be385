// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "math/big"

// numericChunk is the number of digits packed into one base 900 number.
const numericChunk = 44

var num900 = big.NewInt(900)

// compactNumeric encodes digits using Numeric Compaction as described in
// ISO/IEC 15438:2001(E), chapter 4.4.4. Each chunk of up to 44 digits is
// prefixed with a 1 and written in base 900, most significant first.
func compactNumeric(digits []byte) []int {
	var out []int
	tmp := make([]int, 0, numericChunk/3+1)
	for idx := 0; idx < len(digits); idx += numericChunk {
		end := idx + numericChunk
		if end > len(digits) {
			end = len(digits)
		}
		bigint, ok := new(big.Int).SetString("1"+string(digits[idx:end]), 10)
		if !ok {
			panic("encoder: non-digit in numeric run")
		}
		tmp = tmp[:0]
		mod := new(big.Int)
		for bigint.Sign() != 0 {
			bigint.DivMod(bigint, num900, mod)
			tmp = append(tmp, int(mod.Int64()))
		}
		for i := len(tmp) - 1; i >= 0; i-- {
			out = append(out, tmp[i])
		}
	}
	return out
}
