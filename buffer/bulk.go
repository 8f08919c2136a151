package buffer

import (
	"github.com/bearlytools/iobuf/ioerr"
	"github.com/bearlytools/iobuf/segment"
)

// WriteFrom consumes byteCount bytes from src and appends them to b,
// transferring whole segments where possible instead of copying.
func (b *Buffer) WriteFrom(src *Buffer, byteCount int64) error {
	if byteCount < 0 || byteCount > src.size {
		return ioerr.E(ioerr.TypeArgument, "WriteFrom: byteCount out of range")
	}

	remaining := byteCount
	for remaining > 0 {
		h := src.head
		avail := int64(h.Len())
		if avail <= remaining {
			seg := src.detachHead()
			src.size -= avail
			b.appendSegment(seg)
			remaining -= avail
		} else {
			prefix := h.Split(int(remaining))
			prefix.Pop()
			src.size -= remaining
			b.appendSegment(prefix)
			remaining = 0
		}
	}
	b.compactTail()
	return nil
}

// ReadTo consumes byteCount bytes from b and appends them to dst,
// transferring whole segments where possible instead of copying.
func (b *Buffer) ReadTo(dst *Buffer, byteCount int64) error {
	return dst.WriteFrom(b, byteCount)
}

// CopyTo copies byteCount bytes starting at absolute offset into out,
// without consuming them from b. Ranges at least ShareMinimum bytes
// long are shared by reference; shorter ranges are copied.
func (b *Buffer) CopyTo(out *Buffer, offset, byteCount int64) error {
	if offset < 0 || byteCount < 0 || offset+byteCount > b.size {
		return ioerr.E(ioerr.TypeArgument, "CopyTo: range out of bounds")
	}
	if byteCount == 0 {
		return nil
	}

	remaining := byteCount
	pos := offset
	b.forwardFrom(offset, func(s *segment.Segment, segStart int64) bool {
		if remaining <= 0 {
			return false
		}
		lo := s.Pos()
		if pos > segStart {
			lo += int(pos - segStart)
		}
		hi := s.Pos() + s.Len()
		segRemaining := int64(hi - lo)
		take := remaining
		if take > segRemaining {
			take = segRemaining
		}

		var copySeg *segment.Segment
		if take >= segment.ShareMinimum {
			copySeg = s.ShareRange(lo, lo+int(take))
		} else {
			copySeg = copyRange(s, lo, int(take))
		}
		out.appendSegment(copySeg)

		pos += take
		remaining -= take
		return remaining > 0
	})
	return nil
}

// copyRange allocates a fresh segment holding a copy of src.Data()[lo:lo+n].
func copyRange(src *segment.Segment, lo, n int) *segment.Segment {
	s := segment.Take()
	copy(s.Data(), src.Data()[lo:lo+n])
	s.SetLimit(n)
	return s
}

// Snapshot returns an immutable, shared view of every buffered byte.
// Subsequent mutation of b must not observably change the returned
// bytes. Callers needing a ByteString should use
// Buffer.ByteStringSnapshot, which builds on this.
func (b *Buffer) Snapshot() []*segment.Segment {
	return b.SnapshotN(b.size)
}

// SnapshotN returns a shared view of the leading n bytes.
func (b *Buffer) SnapshotN(n int64) []*segment.Segment {
	if n < 0 || n > b.size {
		n = b.size
	}
	var segs []*segment.Segment
	remaining := n
	b.forwardFrom(0, func(s *segment.Segment, segStart int64) bool {
		if remaining <= 0 {
			return false
		}
		take := int64(s.Len())
		if take > remaining {
			take = remaining
		}
		segs = append(segs, s.ShareRange(s.Pos(), s.Pos()+int(take)))
		remaining -= take
		return remaining > 0
	})
	return segs
}

// Copy returns a new Buffer with the same bytes as b, sharing every
// segment. Subsequent writes to either buffer do not observably affect
// the other.
func (b *Buffer) Copy() *Buffer {
	cp := &Buffer{size: b.size}
	if b.head == nil {
		return cp
	}

	var firstNew, prevNew *segment.Segment
	s := b.head
	for {
		shared := s.Share()
		if firstNew == nil {
			firstNew = shared
			shared.Solo()
		} else {
			prevNew.Push(shared)
		}
		prevNew = shared

		s = s.Next()
		if s == b.head {
			break
		}
	}
	cp.head = firstNew
	return cp
}
