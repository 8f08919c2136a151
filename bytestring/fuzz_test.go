package bytestring

import "testing"

// FuzzHexRoundTrip fuzzes EncodeHex/DecodeHex against each other: any
// bytes encoded to hex must decode back to themselves.
func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x00, 0x1A, 0xFF, 0x7F})
	f.Add([]byte("hello world"))

	f.Fuzz(func(t *testing.T, data []byte) {
		bs := New(data)
		encoded := EncodeHex(bs)
		decoded, err := DecodeHex(encoded.UTF8())
		if err != nil {
			t.Fatalf("FuzzHexRoundTrip: DecodeHex(%q) error = %v", encoded.UTF8(), err)
		}
		if !decoded.Equal(bs) {
			t.Errorf("FuzzHexRoundTrip: round-trip mismatch for %x", data)
		}
	})
}

// FuzzBase64RoundTrip fuzzes EncodeBase64/DecodeBase64 against each
// other, for both the standard and URL alphabets.
func FuzzBase64RoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB})
	f.Add([]byte("the quick brown fox"))

	f.Fuzz(func(t *testing.T, data []byte) {
		bs := New(data)

		std := EncodeBase64(bs)
		if got := DecodeBase64(std.UTF8()); got == nil || !got.Equal(bs) {
			t.Errorf("FuzzBase64RoundTrip: standard alphabet round-trip mismatch for %x", data)
		}

		url := EncodeBase64URL(bs)
		if got := DecodeBase64(url.UTF8()); got == nil || !got.Equal(bs) {
			t.Errorf("FuzzBase64RoundTrip: URL alphabet round-trip mismatch for %x", data)
		}
	})
}

// FuzzDecodeHexNeverPanics fuzzes DecodeHex with arbitrary strings: it
// must either return a decoded value or a well-formed error, never
// panic.
func FuzzDecodeHexNeverPanics(f *testing.F) {
	f.Add("")
	f.Add("zz")
	f.Add("abc")
	f.Add("DEADBEEF")

	f.Fuzz(func(t *testing.T, s string) {
		_, _ = DecodeHex(s)
	})
}

// FuzzDecodeBase64NeverPanics fuzzes DecodeBase64 with arbitrary
// strings: it must never panic, returning nil on the first
// non-alphabet byte per its lenient decode contract.
func FuzzDecodeBase64NeverPanics(f *testing.F) {
	f.Add("")
	f.Add("not base64!!")
	f.Add("aGVsbG8=")

	f.Fuzz(func(t *testing.T, s string) {
		_ = DecodeBase64(s)
	})
}
