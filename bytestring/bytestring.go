// Package bytestring implements the module's immutable byte sequence:
// a dense form backed by a single owned array, and a segmented form
// that shares segment.Segment arrays with whatever Buffer produced it
// (typically via a snapshot). Both satisfy the ByteString interface, so
// callers never need to know which representation they hold.
package bytestring

import (
	"sort"
	"strings"

	"github.com/bearlytools/iobuf/segment"
	"github.com/bearlytools/iobuf/utf8codec"
)

// ByteString is an immutable sequence of bytes. Both implementations
// cache their UTF-8 decoding and hash code lazily on first use.
type ByteString interface {
	Len() int
	At(i int) byte
	Bytes() []byte
	UTF8() string
	HashCode() uint32
	Equal(other ByteString) bool
	String() string
}

// dense is a ByteString backed by a single owned array.
type dense struct {
	data []byte

	utf8Once bool
	utf8     string
	hashOnce bool
	hash     uint32
}

// New returns a dense ByteString copying p.
func New(p []byte) ByteString {
	cp := make([]byte, len(p))
	copy(cp, p)
	return &dense{data: cp}
}

// FromString returns a dense ByteString over s's UTF-8 bytes.
func FromString(s string) ByteString {
	return &dense{data: []byte(s)}
}

func (d *dense) Len() int      { return len(d.data) }
func (d *dense) At(i int) byte { return d.data[i] }
func (d *dense) Bytes() []byte { cp := make([]byte, len(d.data)); copy(cp, d.data); return cp }

func (d *dense) UTF8() string {
	if !d.utf8Once {
		d.utf8 = decodeUTF8(d.data)
		d.utf8Once = true
	}
	return d.utf8
}

func (d *dense) HashCode() uint32 {
	if !d.hashOnce {
		d.hash = fnv32(d.data)
		d.hashOnce = true
	}
	return d.hash
}

func (d *dense) Equal(other ByteString) bool {
	return equalByteStrings(d, other)
}

func (d *dense) String() string {
	return "[hex=" + encodeHex(d.data) + "]"
}

// segmented is a ByteString whose content lives in shared segments
// (typically produced by Buffer.Snapshot), plus a directory for
// O(log n) offset-to-segment lookup.
type segmented struct {
	segs []*segment.Segment
	// dir holds, for index i, the cumulative byte count through segs[i]
	// in dir[i], and segs[i]'s starting byte offset in dir[len(segs)+i].
	dir []int

	length int

	utf8Once bool
	utf8     string
	hashOnce bool
	hash     uint32
}

// NewSegmented builds a segmented ByteString over segs, which callers
// must have already obtained as shared (read-only) handles — typically
// via Buffer.Snapshot/SnapshotN.
func NewSegmented(segs []*segment.Segment) ByteString {
	dir := make([]int, len(segs)*2)
	cum := 0
	for i, s := range segs {
		cum += s.Len()
		dir[i] = cum
		dir[len(segs)+i] = s.Pos()
	}
	return &segmented{segs: segs, dir: dir, length: cum}
}

// SegmentCarrier is implemented by ByteStrings whose payload already
// lives in shared segments. Consumers that can link segments into
// their own structures (a Buffer appending a snapshot, for one) use it
// to transfer the payload without copying.
type SegmentCarrier interface {
	ShareSegments() []*segment.Segment
}

func (s *segmented) Len() int { return s.length }

// ShareSegments returns fresh shared handles over s's segments. The
// handles are independent of s's own (their pos/limit/links may be
// mutated freely) but reference the same read-only arrays.
func (s *segmented) ShareSegments() []*segment.Segment {
	out := make([]*segment.Segment, len(s.segs))
	for i, seg := range s.segs {
		out[i] = seg.ShareRange(seg.Pos(), seg.Limit())
	}
	return out
}

func (s *segmented) segmentIndexFor(i int) int {
	return sort.Search(len(s.segs), func(k int) bool { return s.dir[k] > i })
}

func (s *segmented) At(i int) byte {
	idx := s.segmentIndexFor(i)
	segStart := 0
	if idx > 0 {
		segStart = s.dir[idx-1]
	}
	seg := s.segs[idx]
	return seg.Data()[seg.Pos()+(i-segStart)]
}

func (s *segmented) Bytes() []byte {
	out := make([]byte, 0, s.length)
	for _, seg := range s.segs {
		out = append(out, seg.Data()[seg.Pos():seg.Limit()]...)
	}
	return out
}

func (s *segmented) UTF8() string {
	if !s.utf8Once {
		s.utf8 = decodeUTF8(s.Bytes())
		s.utf8Once = true
	}
	return s.utf8
}

func (s *segmented) HashCode() uint32 {
	if !s.hashOnce {
		s.hash = fnv32(s.Bytes())
		s.hashOnce = true
	}
	return s.hash
}

func (s *segmented) Equal(other ByteString) bool {
	return equalByteStrings(s, other)
}

func (s *segmented) String() string {
	return "[hex=" + encodeHex(s.Bytes()) + "]"
}

func equalByteStrings(a, b ByteString) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

func fnv32(data []byte) uint32 {
	const (
		offset = 2166136261
		prime  = 16777619
	)
	h := uint32(offset)
	for _, c := range data {
		h ^= uint32(c)
		h *= prime
	}
	return h
}

// decodeUTF8 decodes data leniently, substituting the replacement
// character for malformed sequences per the codec's rules (never
// returns an error since a ByteString's UTF8 cache has no way to fail).
func decodeUTF8(data []byte) string {
	var sb strings.Builder
	pos := 0
	for pos < len(data) {
		peek := func(offset int) (byte, bool) {
			idx := pos + offset
			if idx >= len(data) {
				return 0, false
			}
			return data[idx], true
		}
		r, size, err := utf8codec.DecodeCodePoint(peek)
		if err != nil {
			sb.WriteRune(utf8codec.ReplacementChar)
			break
		}
		sb.WriteRune(r)
		if size == 0 {
			break
		}
		pos += size
	}
	return sb.String()
}
