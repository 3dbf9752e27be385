package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrix(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
	bm.Unset(3, 5)
	if bm.Get(3, 5) {
		t.Error("bit should be unset")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrix(8, 8)
	bm.SetRegion(2, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := x >= 2 && x < 6 && y >= 2 && y < 6
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixRowRoundTrip(t *testing.T) {
	bm := NewBitMatrix(40, 2)
	row := ParseBitArray("1100000000000000000000000000000000000011")
	bm.SetRow(1, row)
	got := bm.Row(1)
	if got.Size() != 40 {
		t.Fatalf("row size = %d", got.Size())
	}
	if got.String() != row.String() {
		t.Errorf("row = %s, want %s", got, row)
	}
	if bm.Get(0, 0) {
		t.Error("row 0 should be untouched")
	}
}

func TestBitMatrixSetRowMasksOverflow(t *testing.T) {
	bm := NewBitMatrix(3, 1)
	bm.SetRow(0, ParseBitArray("11111"))
	other := ParseStringMatrix("XXX\n", "X", ".")
	if !bm.Equals(other) {
		t.Errorf("overflowing modules leaked into the row:\n%s", bm)
	}
}

func TestBitMatrixRotate90(t *testing.T) {
	bm := NewBitMatrix(3, 2)
	bm.Set(0, 0)
	bm.Set(2, 1)
	bm.Rotate90()
	if bm.Width() != 2 || bm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", bm.Width(), bm.Height())
	}
	// counterclockwise: (x, y) -> (y, W-1-x)
	if !bm.Get(0, 2) || !bm.Get(1, 0) {
		t.Errorf("rotated matrix:\n%s", bm)
	}
}

func TestBitMatrixScaled(t *testing.T) {
	bm := ParseStringMatrix("X.\n.X\n", "X", ".")
	s := bm.Scaled(2, 3)
	want := ParseStringMatrix(
		"XX..\nXX..\nXX..\n..XX\n..XX\n..XX\n", "X", ".")
	if !s.Equals(want) {
		t.Errorf("scaled:\n%s\nwant:\n%s", s, want)
	}
}

func TestBitMatrixWithMargin(t *testing.T) {
	bm := ParseStringMatrix("X\n", "X", ".")
	m := bm.WithMargin(2)
	if m.Width() != 5 || m.Height() != 5 {
		t.Fatalf("size = %dx%d", m.Width(), m.Height())
	}
	if !m.Get(2, 2) || m.Get(0, 0) {
		t.Errorf("margin matrix:\n%s", m)
	}
}

func TestBitMatrixBools(t *testing.T) {
	bm := ParseStringMatrix("X..\n.XX\n", "X", ".")
	b := bm.Bools()
	if len(b) != 2 || len(b[0]) != 3 {
		t.Fatalf("dims = %dx%d", len(b), len(b[0]))
	}
	if !b[0][0] || b[0][1] || !b[1][2] {
		t.Errorf("Bools = %v", b)
	}
	if !ParseBoolMatrix(b).Equals(bm) {
		t.Error("ParseBoolMatrix(Bools()) differs")
	}
}

func TestBitMatrixClone(t *testing.T) {
	bm := NewBitMatrix(4, 4)
	bm.Set(1, 1)
	c := bm.Clone()
	c.Set(2, 2)
	if bm.Get(2, 2) {
		t.Error("clone shares storage with original")
	}
	if !bm.Equals(bm.Clone()) {
		t.Error("matrix should equal its clone")
	}
}

func TestBitMatrixStringWithChars(t *testing.T) {
	bm := ParseStringMatrix("X.\n", "X", ".")
	if got := bm.StringWithChars("#", "-"); got != "#-\n" {
		t.Errorf("StringWithChars = %q", got)
	}
}
