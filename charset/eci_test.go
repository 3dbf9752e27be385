package charset

import (
	"bytes"
	"errors"
	"testing"

	pdf417go "github.com/ericlevine/pdf417go"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"ISO-8859-1", 1},
		{"iso8859_1", 1},
		{"latin1", 1},
		{"UTF-8", 26},
		{"utf8", 26},
		{"Shift_JIS", 20},
		{"SJIS", 20},
		{"GBK", 29},
		{"UTF-16BE", 25},
		{"Cp437", 0},
	}
	for _, tt := range tests {
		eci, err := ByName(tt.name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", tt.name, err)
		}
		if eci.Value != tt.value {
			t.Errorf("ByName(%q).Value = %d, want %d", tt.name, eci.Value, tt.value)
		}
	}
	if _, err := ByName("KOI8-Z"); !errors.Is(err, pdf417go.ErrInvalidConfiguration) {
		t.Errorf("unknown name: err = %v", err)
	}
}

func TestByValue(t *testing.T) {
	tests := []struct {
		value int
		want  *ECI
	}{
		{0, ECICp437},
		{2, ECICp437},
		{1, ECIISO8859_1},
		{3, ECIISO8859_1},
		{26, ECIUTF8},
		{170, ECIASCII},
	}
	for _, tt := range tests {
		eci, err := ByValue(tt.value)
		if err != nil {
			t.Fatalf("ByValue(%d): %v", tt.value, err)
		}
		if eci != tt.want {
			t.Errorf("ByValue(%d) = %s, want %s", tt.value, eci, tt.want)
		}
	}
	if _, err := ByValue(14); err == nil {
		t.Error("ECI 14 is not assigned")
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		s, charset string
		want       []byte
	}{
		{"café", "ISO-8859-1", []byte("caf\xe9")},
		{"café", "UTF-8", []byte("caf\xc3\xa9")},
		{"日本", "Shift_JIS", []byte{0x93, 0xfa, 0x96, 0x7b}},
		{"A", "UTF-16BE", []byte{0x00, 0x41}},
		{"plain", "US-ASCII", []byte("plain")},
	}
	for _, tt := range tests {
		got, eci, err := Encode(tt.s, tt.charset)
		if err != nil {
			t.Fatalf("Encode(%q, %s): %v", tt.s, tt.charset, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Encode(%q, %s) = % x, want % x", tt.s, tt.charset, got, tt.want)
		}
		back, err := eci.Decode(got)
		if err != nil {
			t.Fatal(err)
		}
		if back != tt.s {
			t.Errorf("Decode = %q, want %q", back, tt.s)
		}
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	tests := []struct {
		s, charset string
		pos        int
		unit       rune
	}{
		{"a€b", "ISO-8859-1", 2, '€'},
		{"abcé", "US-ASCII", 4, 'é'},
		{"x日", "windows-1252", 2, '日'},
	}
	for _, tt := range tests {
		_, _, err := Encode(tt.s, tt.charset)
		var encErr *pdf417go.EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("Encode(%q, %s): err = %v", tt.s, tt.charset, err)
		}
		if encErr.Position != tt.pos || encErr.Unit != tt.unit {
			t.Errorf("Encode(%q, %s): position %d unit %q", tt.s, tt.charset, encErr.Position, encErr.Unit)
		}
	}
}
