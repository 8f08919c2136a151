package utf8codec

import (
	"bytes"
	"testing"
)

func peekOver(b []byte) PeekFunc {
	return func(i int) (byte, bool) {
		if i < 0 || i >= len(b) {
			return 0, false
		}
		return b[i], true
	}
}

func TestEncodeRuneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want []byte
	}{
		{name: "Success: ASCII", r: 'a', want: []byte{'a'}},
		{name: "Success: two-byte boundary 0x7FF", r: 0x7FF, want: []byte{0xDF, 0xBF}},
		{name: "Success: three-byte boundary 0xFFFF", r: 0xFFFF, want: []byte{0xEF, 0xBF, 0xBF}},
		{name: "Success: max code point U+10FFFF", r: 0x10FFFF, want: []byte{0xF4, 0x8F, 0xBF, 0xBF}},
	}

	for _, test := range tests {
		var buf [4]byte
		n, err := EncodeRune(buf[:], test.r)
		if err != nil {
			t.Fatalf("TestEncodeRuneBoundaries(%s): unexpected error: %v", test.name, err)
		}
		if !bytes.Equal(buf[:n], test.want) {
			t.Errorf("TestEncodeRuneBoundaries(%s): got %x, want %x", test.name, buf[:n], test.want)
		}
	}
}

func TestEncodeRuneRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		r    rune
	}{
		{name: "Failure: lone surrogate", r: 0xD800},
		{name: "Failure: above max code point", r: 0x110000},
	}

	for _, test := range tests {
		var buf [4]byte
		if _, err := EncodeRune(buf[:], test.r); err == nil {
			t.Errorf("TestEncodeRuneRejectsInvalid(%s): err = nil, want error", test.name)
		}
	}
}

func TestEncodeUTF16SurrogatePair(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []byte
	}{
		{name: "Success: valid surrogate pair for U+1F600", units: []uint16{0xD83D, 0xDE00}, want: []byte{0xF0, 0x9F, 0x98, 0x80}},
		{name: "Success: lone high surrogate becomes '?'", units: []uint16{0xD800, 'x'}, want: []byte{'?', 'x'}},
		{name: "Success: lone low surrogate becomes '?'", units: []uint16{0xDC00}, want: []byte{'?'}},
	}

	for _, test := range tests {
		got := EncodeUTF16(test.units)
		if !bytes.Equal(got, test.want) {
			t.Errorf("TestEncodeUTF16SurrogatePair(%s): got %x, want %x", test.name, got, test.want)
		}
	}
}

func TestDecodeCodePointTable(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantR    rune
		wantSize int
		wantErr  bool
	}{
		{name: "Success: ASCII", in: []byte{'a'}, wantR: 'a', wantSize: 1},
		{name: "Success: leading continuation byte is replaced", in: []byte{0x80, 'x'}, wantR: ReplacementChar, wantSize: 1},
		{name: "Failure: valid leader, EOF before continuation", in: []byte{0xE0}, wantErr: true},
		{name: "Success: valid leader, non-continuation later", in: []byte{0xE0, 0xA0, 'x'}, wantR: ReplacementChar, wantSize: 2},
		{name: "Success: 5-byte leader is replaced", in: []byte{0xF8, 0x80, 0x80, 0x80, 0x80}, wantR: ReplacementChar, wantSize: 1},
		{name: "Success: overlong encoding is replaced", in: []byte{0xC0, 0x80}, wantR: ReplacementChar, wantSize: 2},
		{name: "Success: surrogate decoded form is replaced", in: []byte{0xED, 0xA0, 0x80}, wantR: ReplacementChar, wantSize: 3},
	}

	for _, test := range tests {
		r, size, err := DecodeCodePoint(peekOver(test.in))
		if test.wantErr {
			if err == nil {
				t.Errorf("TestDecodeCodePointTable(%s): err = nil, want error", test.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("TestDecodeCodePointTable(%s): unexpected error: %v", test.name, err)
		}
		if r != test.wantR || size != test.wantSize {
			t.Errorf("TestDecodeCodePointTable(%s): got (r=%#x, size=%d), want (r=%#x, size=%d)", test.name, r, size, test.wantR, test.wantSize)
		}
	}
}
