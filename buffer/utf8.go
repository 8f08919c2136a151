package buffer

import (
	"github.com/bearlytools/iobuf/utf8codec"
)

// WriteUTF8 appends the bytes of s as a straight byte copy. s is not
// validated: any invalid UTF-8 in it is written unchanged.
func (b *Buffer) WriteUTF8(s string) {
	b.Write([]byte(s))
}

// WriteUTF8Rune appends the UTF-8 encoding of a single code point,
// rejecting surrogates and values above U+10FFFF.
func (b *Buffer) WriteUTF8Rune(r rune) error {
	var buf [4]byte
	n, err := utf8codec.EncodeRune(buf[:], r)
	if err != nil {
		return err
	}
	b.Write(buf[:n])
	return nil
}

// WriteUTF16 encodes a sequence of UTF-16 code units to UTF-8 and
// appends the result, substituting '?' for lone or misordered
// surrogates.
func (b *Buffer) WriteUTF16(units []uint16) {
	b.Write(utf8codec.EncodeUTF16(units))
}

// ReadUTF8CodePoint decodes and consumes one UTF-8 code point from the
// head of the buffer, applying the replacement-character rules for
// malformed input. It returns ioerr.EOF when the buffer is empty or when
// a valid leading byte's continuation bytes are not yet available.
func (b *Buffer) ReadUTF8CodePoint() (rune, error) {
	peek := func(offset int) (byte, bool) {
		return b.byteAt(int64(offset))
	}
	r, size, err := utf8codec.DecodeCodePoint(peek)
	if err != nil {
		return 0, err
	}
	b.discard(int64(size))
	return r, nil
}

// ReadUTF8 decodes and consumes the entire buffer as a UTF-8 string,
// applying the replacement-character rules codepoint by codepoint.
func (b *Buffer) ReadUTF8() (string, error) {
	var out []rune
	for b.size > 0 {
		r, err := b.ReadUTF8CodePoint()
		if err != nil {
			return string(out), err
		}
		out = append(out, r)
	}
	return string(out), nil
}

// ReadUTF8Line consumes bytes up to (and including) the next "\n" or
// "\r\n", returning the line without its terminator. It fails with EOF
// if the buffer is exhausted without finding a terminator.
func (b *Buffer) ReadUTF8Line() (string, error) {
	nl := b.IndexOfByte('\n', 0, b.size)
	if nl < 0 {
		return "", b.checkAvailable(b.size + 1)
	}
	lineLen := nl
	if lineLen > 0 {
		if c, _ := b.byteAt(nl - 1); c == '\r' {
			lineLen--
		}
	}
	buf := make([]byte, lineLen)
	b.read(buf)
	b.discard(nl - lineLen + 1)
	return string(buf), nil
}
