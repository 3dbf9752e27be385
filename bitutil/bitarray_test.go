package bitutil

import "testing"

func TestBitArrayGetSet(t *testing.T) {
	ba := NewBitArray(40)
	ba.Set(0)
	ba.Set(33)
	if !ba.Get(0) || !ba.Get(33) {
		t.Error("set bits should read back")
	}
	if ba.Get(1) || ba.Get(32) {
		t.Error("unset bits should read as false")
	}
}

func TestBitArrayAppendBit(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBit(true)
	ba.AppendBit(false)
	ba.AppendBit(true)
	if ba.Size() != 3 {
		t.Errorf("size = %d, want 3", ba.Size())
	}
	if !ba.Get(0) || ba.Get(1) || !ba.Get(2) {
		t.Error("incorrect bits after append")
	}
}

func TestBitArrayAppendBits(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x1E, 6) // 011110
	if ba.Size() != 6 {
		t.Fatalf("size = %d, want 6", ba.Size())
	}
	expected := []bool{false, true, true, true, true, false}
	for i, exp := range expected {
		if ba.Get(i) != exp {
			t.Errorf("bit %d = %v, want %v", i, ba.Get(i), exp)
		}
	}
}

func TestBitArrayAppendBitsKeepsLeadingZeros(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x00A5, 17)
	if ba.Size() != 17 {
		t.Fatalf("size = %d, want 17", ba.Size())
	}
	if got, want := ba.String(), ".........X.X..X.X"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBitArrayAppendAcrossWords(t *testing.T) {
	ba := &BitArray{}
	for i := 0; i < 5; i++ {
		ba.AppendBits(0x1fea8, 17)
	}
	if ba.Size() != 85 {
		t.Fatalf("size = %d, want 85", ba.Size())
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 8; j++ {
			if !ba.Get(i*17 + j) {
				t.Fatalf("pattern %d module %d should be a bar", i, j)
			}
		}
	}
}

func TestParseBitArray(t *testing.T) {
	ba := ParseBitArray("10 X. 01")
	want := []bool{true, false, true, false, false, true}
	got := ba.Bools()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %v", i, got[i])
		}
	}
}

func TestBitArrayScaled(t *testing.T) {
	ba := ParseBitArray("101")
	s := ba.Scaled(3)
	if got := s.String(); got != "XXX...XXX" {
		t.Errorf("scaled = %q", got)
	}
}

func TestBitArrayToBytes(t *testing.T) {
	ba := ParseBitArray("1000000111")
	out := make([]byte, 2)
	ba.ToBytes(0, out, 0, 2)
	if out[0] != 0x81 || out[1] != 0xC0 {
		t.Errorf("ToBytes = %#x %#x", out[0], out[1])
	}
}

func TestBitArrayClone(t *testing.T) {
	ba := NewBitArray(8)
	ba.Set(3)
	c := ba.Clone()
	c.Set(4)
	if ba.Get(4) {
		t.Error("clone shares storage with original")
	}
	if !c.Get(3) {
		t.Error("clone lost bit 3")
	}
}
