package buffer

import (
	"bytes"
	"testing"

	"github.com/bearlytools/iobuf/segment"
)

func TestIndexOfByteAcrossSegments(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		want int64
	}{
		{name: "Success: target in second segment", c: 'Q', want: segment.Size + 3},
		{name: "Failure: target absent", c: 'Z', want: -1},
	}

	for _, test := range tests {
		b := New()
		b.Write(bytes.Repeat([]byte{'a'}, segment.Size))
		b.Write([]byte("xyzQrest"))

		got := b.IndexOfByte(test.c, 0, b.Size())
		if got != test.want {
			t.Errorf("TestIndexOfByteAcrossSegments(%s): IndexOfByte() = %d, want %d", test.name, got, test.want)
		}
	}
}

func TestIndexOfAtExactSegmentBoundary(t *testing.T) {
	tests := []struct {
		name string
	}{
		{name: "Success: byte landing on the first byte of the second segment"},
	}

	for _, test := range tests {
		b := New()
		b.Write([]byte("a"))
		b.Write(bytes.Repeat([]byte{'b'}, segment.Size-1))
		b.Write([]byte("c"))

		if got := b.IndexOfByte('c', 0, b.Size()); got != segment.Size {
			t.Errorf("TestIndexOfAtExactSegmentBoundary(%s): IndexOfByte('c') = %d, want %d", test.name, got, segment.Size)
		}
		if c, ok := b.Get(segment.Size - 1); !ok || c != 'b' {
			t.Errorf("TestIndexOfAtExactSegmentBoundary(%s): Get(%d) = %q, want 'b'", test.name, segment.Size-1, c)
		}
	}
}

func TestIndexOfBytesAfterBacktrack(t *testing.T) {
	tests := []struct {
		name   string
		target []byte
		want   int64
	}{
		{name: "Success: match requires backtracking past a partial match", target: []byte("aab"), want: 2},
		{name: "Success: empty target matches at from", target: []byte{}, want: 2},
		{name: "Failure: no match", target: []byte("zzz"), want: -1},
	}

	for _, test := range tests {
		b := New()
		b.Write([]byte("aaaabxxx"))

		from := int64(0)
		if len(test.target) == 0 {
			from = 2
		}
		got := b.IndexOfBytes(test.target, from)
		if got != test.want {
			t.Errorf("TestIndexOfBytesAfterBacktrack(%s): IndexOfBytes() = %d, want %d", test.name, got, test.want)
		}
	}
}

func TestIndexOfElement(t *testing.T) {
	tests := []struct {
		name string
		set  []byte
		want int64
	}{
		{name: "Success: matches one of several candidates", set: []byte("xyz"), want: 4},
		{name: "Failure: none present", set: []byte("qrs"), want: -1},
	}

	for _, test := range tests {
		b := New()
		b.Write([]byte("abcdyfgh"))

		got := b.IndexOfElement(test.set, 0)
		if got != test.want {
			t.Errorf("TestIndexOfElement(%s): IndexOfElement() = %d, want %d", test.name, got, test.want)
		}
	}
}

func TestRangeEquals(t *testing.T) {
	tests := []struct {
		name   string
		offset int64
		other  []byte
		want   bool
	}{
		{name: "Success: exact match", offset: 2, other: []byte("cdef"), want: true},
		{name: "Failure: mismatch", offset: 2, other: []byte("cdeg"), want: false},
		{name: "Failure: range runs past end", offset: 6, other: []byte("efghij"), want: false},
	}

	for _, test := range tests {
		b := New()
		b.Write([]byte("abcdefgh"))

		got := b.RangeEquals(test.offset, test.other, 0, len(test.other))
		if got != test.want {
			t.Errorf("TestRangeEquals(%s): RangeEquals() = %v, want %v", test.name, got, test.want)
		}
	}
}
