package buffer

import (
	"github.com/bearlytools/iobuf/bytestring"
	"github.com/bearlytools/iobuf/segment"
)

// WriteByteString appends bs's payload. A Segmented ByteString's
// shared segments are linked in directly without copying; anything
// else is copied byte-wise.
func (b *Buffer) WriteByteString(bs bytestring.ByteString) {
	if sc, ok := bs.(bytestring.SegmentCarrier); ok {
		for _, s := range sc.ShareSegments() {
			b.appendSegment(s)
		}
		return
	}
	b.Write(bs.Bytes())
}

// ByteStringSnapshot returns an immutable Segmented ByteString sharing
// every buffered segment. Mutating b afterward must not observably
// change the returned value.
func (b *Buffer) ByteStringSnapshot() bytestring.ByteString {
	return bytestring.NewSegmented(b.Snapshot())
}

// ByteStringSnapshotN returns an immutable ByteString over the leading
// n bytes. Small prefixes collapse to a dense copy, since sharing a
// short range would pin whole segment arrays for little benefit —
// mirroring Split's small-range copy fallback.
func (b *Buffer) ByteStringSnapshotN(n int64) bytestring.ByteString {
	if n >= 0 && n < segment.ShareMinimum {
		buf, err := b.PeekBytes(0, n)
		if err != nil {
			return bytestring.New(nil)
		}
		return bytestring.New(buf)
	}
	return bytestring.NewSegmented(b.SnapshotN(n))
}
