// Package bitutil provides the packed bit containers that hold barcode
// modules: BitArray for a single row and BitMatrix for a whole symbol.
package bitutil

import "strings"

const loadFactor = 0.75

// BitArray is a growable row of modules, stored compactly in uint32 words.
// Bit i is module i counted from the left; a set bit is a bar.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a BitArray of the given size with every module unset.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// ParseBitArray creates a BitArray from a string of '1'/'X' (set) and
// '0'/'.' (unset) characters. Any other character is skipped.
func ParseBitArray(s string) *BitArray {
	ba := &BitArray{}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1', 'X':
			ba.AppendBit(true)
		case '0', '.':
			ba.AppendBit(false)
		}
	}
	return ba
}

// Size returns the number of modules in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the modules.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if module i is a bar.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set makes module i a bar.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// AppendBit appends a single module.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends exactly numBits modules taken from the least
// significant numBits bits of value, most significant first. Leading zero
// bits are appended as spaces, so a pattern always occupies numBits modules
// whatever its magnitude.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// AppendRun appends n copies of bit.
func (ba *BitArray) AppendRun(bit bool, n int) {
	for i := 0; i < n; i++ {
		ba.AppendBit(bit)
	}
}

// Scaled returns a copy of the array with every module repeated scale times.
func (ba *BitArray) Scaled(scale int) *BitArray {
	out := NewBitArray(ba.size * scale)
	for i := 0; i < out.size; i++ {
		if ba.Get(i / scale) {
			out.Set(i)
		}
	}
	return out
}

// ToBytes writes numBytes bytes starting at bitOffset into array[offset:],
// most significant bit first within each byte. Modules past the end of the
// array are written as zero.
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if bitOffset < ba.size && ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// Bools returns the modules as a bool slice.
func (ba *BitArray) Bools() []bool {
	out := make([]bool, ba.size)
	for i := range out {
		out[i] = ba.Get(i)
	}
	return out
}

// BitData returns the underlying uint32 slice.
func (ba *BitArray) BitData() []uint32 {
	return ba.bits
}

// Clone returns a copy of this BitArray.
func (ba *BitArray) Clone() *BitArray {
	b := make([]uint32, len(ba.bits))
	copy(b, ba.bits)
	return &BitArray{bits: b, size: ba.size}
}

// String returns the modules as 'X' (bar) and '.' (space), grouped by 17
// so that codeword boundaries line up.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/17 + 1)
	for i := 0; i < ba.size; i++ {
		if i > 0 && i%17 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
