// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// compactBytes encodes data using Byte Compaction as described in
// ISO/IEC 15438:2001(E), chapter 4.4.3. Groups of 6 bytes become 5
// codewords; the remaining bytes are written one codeword each.
func compactBytes(data []byte) []int {
	out := make([]int, 0, len(data)/6*5+len(data)%6)
	idx := 0
	var chars [5]int
	for ; len(data)-idx >= 6; idx += 6 {
		var t uint64
		for i := 0; i < 6; i++ {
			t = t<<8 | uint64(data[idx+i])
		}
		for i := 0; i < 5; i++ {
			chars[i] = int(t % 900)
			t /= 900
		}
		for i := len(chars) - 1; i >= 0; i-- {
			out = append(out, chars[i])
		}
	}
	for ; idx < len(data); idx++ {
		out = append(out, int(data[idx]))
	}
	return out
}
