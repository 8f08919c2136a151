package utf8codec

import "testing"

// FuzzEncodeRuneRoundTrip fuzzes EncodeRune/DecodeCodePoint against each
// other: any rune EncodeRune accepts must decode back to itself.
func FuzzEncodeRuneRoundTrip(f *testing.F) {
	f.Add(int32('a'))
	f.Add(int32(0x7F))
	f.Add(int32(0x7FF))
	f.Add(int32(0xFFFF))
	f.Add(int32(0x10FFFF))
	f.Add(int32(0xD800)) // surrogate, rejected
	f.Add(int32(-1))     // negative, rejected
	f.Add(int32(0x110000))

	f.Fuzz(func(t *testing.T, r int32) {
		var buf [4]byte
		n, err := EncodeRune(buf[:], rune(r))
		if err != nil {
			return
		}
		got, size, err := DecodeCodePoint(peekOver(buf[:n]))
		if err != nil {
			t.Fatalf("FuzzEncodeRuneRoundTrip: DecodeCodePoint(%#x) error = %v", r, err)
		}
		if size != n {
			t.Errorf("FuzzEncodeRuneRoundTrip: size = %d, want %d", size, n)
		}
		if got != rune(r) {
			t.Errorf("FuzzEncodeRuneRoundTrip: decoded %#x, want %#x", got, r)
		}
	})
}

// FuzzDecodeCodePoint fuzzes DecodeCodePoint with arbitrary byte
// sequences. It must never panic and must always report a size within
// the bytes actually available.
func FuzzDecodeCodePoint(f *testing.F) {
	f.Add([]byte{'a'})
	f.Add([]byte{0x80})
	f.Add([]byte{0xE0})
	f.Add([]byte{0xE0, 0xA0, 'x'})
	f.Add([]byte{0xF8, 0x80, 0x80, 0x80, 0x80})
	f.Add([]byte{0xC0, 0x80})
	f.Add([]byte{0xED, 0xA0, 0x80})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, size, err := DecodeCodePoint(peekOver(data))
		if err != nil {
			if size != 0 {
				t.Errorf("FuzzDecodeCodePoint: error case reported size = %d, want 0", size)
			}
			return
		}
		if size < 1 || size > len(data) {
			t.Errorf("FuzzDecodeCodePoint: size = %d out of range for %d input bytes", size, len(data))
		}
	})
}
