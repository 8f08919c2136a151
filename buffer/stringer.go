package buffer

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/bearlytools/iobuf/utf8codec"
)

// Equal reports whether b and other hold the same bytes, regardless of
// how those bytes are laid out across segments.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.size != other.size {
		return false
	}
	for i := int64(0); i < b.size; i++ {
		x, _ := b.byteAt(i)
		y, _ := other.byteAt(i)
		if x != y {
			return false
		}
	}
	return true
}

// HashCode returns a content-based hash, independent of segment layout,
// using FNV-1a.
func (b *Buffer) HashCode() uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for i := int64(0); i < b.size; i++ {
		c, _ := b.byteAt(i)
		h ^= uint64(c)
		h *= prime
	}
	return h
}

// String renders "[size=N]" when empty; "[text=…]" for small buffers
// whose bytes are valid UTF-8 text (or "[hex=…]" when they are not);
// otherwise "[size=N md5=…]".
func (b *Buffer) String() string {
	if b.size == 0 {
		return "[size=0]"
	}
	if b.size <= 64 {
		buf := make([]byte, b.size)
		for i := range buf {
			c, _ := b.byteAt(int64(i))
			buf[i] = c
		}
		if text, ok := decodeValidUTF8Prefix(buf); ok {
			return fmt.Sprintf("[text=%s]", text)
		}
		return fmt.Sprintf("[hex=%x]", buf)
	}

	buf := make([]byte, b.size)
	for i := range buf {
		c, _ := b.byteAt(int64(i))
		buf[i] = c
	}
	sum := md5.Sum(buf)
	return fmt.Sprintf("[size=%d md5=%x]", b.size, sum)
}

// decodeValidUTF8Prefix reports whether buf is entirely valid UTF-8
// text with no control characters other than common whitespace.
func decodeValidUTF8Prefix(buf []byte) (string, bool) {
	var sb strings.Builder
	pos := 0
	for pos < len(buf) {
		peek := func(offset int) (byte, bool) {
			idx := pos + offset
			if idx >= len(buf) {
				return 0, false
			}
			return buf[idx], true
		}
		r, size, err := utf8codec.DecodeCodePoint(peek)
		if err != nil || r == utf8codec.ReplacementChar {
			return "", false
		}
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			return "", false
		}
		sb.WriteRune(r)
		pos += size
	}
	return sb.String(), true
}
