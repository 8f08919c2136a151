// Package buffer implements the segmented FIFO byte queue this module is
// built around: a Buffer is simultaneously a reader (consuming from its
// head segment) and a writer (appending to its tail segment), backed by
// a ring of fixed-capacity Segments drawn from a process-wide Pool.
//
// A Buffer is single-owner: concurrent use of the same instance from
// multiple goroutines is undefined behavior, matching the contract of
// the segment Pool it draws from (which is itself safe for concurrent
// use).
package buffer

import (
	"github.com/bearlytools/iobuf/ioerr"
	"github.com/bearlytools/iobuf/segment"
)

// Buffer is an ordered FIFO of Segments plus a running byte count.
type Buffer struct {
	head *segment.Segment
	size int64
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Size returns the number of bytes currently buffered.
func (b *Buffer) Size() int64 { return b.size }

// Empty reports whether the buffer holds no bytes.
func (b *Buffer) Empty() bool { return b.size == 0 }

// Clear discards every buffered byte, recycling all segments.
func (b *Buffer) Clear() { b.discard(b.size) }

// CompleteSegmentByteCount returns the number of buffered bytes that
// live in complete segments — everything except a partial tail that is
// still being appended to. A full or non-writable tail counts whole,
// since no further bytes will land in it.
func (b *Buffer) CompleteSegmentByteCount() int64 {
	if b.size == 0 {
		return 0
	}
	result := b.size
	tail := b.head.Prev()
	if tail.Limit() < len(tail.Data()) && tail.Writable() {
		result -= int64(tail.Len())
	}
	return result
}

// writableSegment returns a tail segment with at least minFree free
// bytes that this buffer may write into, allocating a new tail from the
// pool when the current tail is full or shared (read-only).
func (b *Buffer) writableSegment(minFree int) *segment.Segment {
	if minFree < 1 || minFree > segment.Size {
		panic("buffer: writableSegment minFree out of range")
	}

	if b.head == nil {
		s := segment.Take()
		s.Solo()
		b.head = s
		return s
	}

	tail := b.head.Prev()
	if tail.Writable() && len(tail.Data())-tail.Limit() >= minFree {
		return tail
	}
	return tail.Push(segment.Take())
}

// appendSegment links s in as the new tail, taking ownership of it
// whole (used when transferring a segment from another buffer).
func (b *Buffer) appendSegment(s *segment.Segment) {
	if b.head == nil {
		s.Solo()
		b.head = s
	} else {
		b.head.Prev().Push(s)
	}
	b.size += int64(s.Len())
}

// popHead recycles the current head segment and advances to the next
// one, or clears b.head entirely if that was the last segment.
func (b *Buffer) popHead() {
	old := b.head
	b.head = old.Pop()
	segment.Recycle(old)
}

// detachHead unlinks the current head segment from the ring and
// advances to the next one, without recycling it — used when the
// segment is being transferred whole into another buffer.
func (b *Buffer) detachHead() *segment.Segment {
	old := b.head
	b.head = old.Pop()
	return old
}

// compactTail opportunistically merges the current tail into the
// segment before it, after a bulk transfer has potentially left small
// fragments at the boundary.
func (b *Buffer) compactTail() {
	if b.head == nil {
		return
	}
	tail := b.head.Prev()
	prev := tail.Prev()
	if prev == tail {
		return
	}
	tail.Compact(prev)
}

// forwardFrom walks segments covering [from, size) in order, invoking fn
// with each segment and that segment's absolute start offset. fn
// returns false to stop early.
func (b *Buffer) forwardFrom(from int64, fn func(s *segment.Segment, segStart int64) bool) {
	if b.head == nil {
		return
	}
	s := b.head
	segStart := int64(0)
	for {
		segEnd := segStart + int64(s.Len())
		if segEnd > from {
			if !fn(s, segStart) {
				return
			}
		}
		if segEnd >= b.size {
			return
		}
		segStart = segEnd
		s = s.Next()
	}
}

// segmentAt returns the segment containing absolute offset pos and that
// segment's absolute start offset. pos must be in [0, size).
func (b *Buffer) segmentAt(pos int64) (*segment.Segment, int64) {
	s := b.head
	start := int64(0)
	for {
		segEnd := start + int64(s.Len())
		if pos < segEnd {
			return s, start
		}
		start = segEnd
		s = s.Next()
	}
}

// byteAt returns the byte at absolute offset, and false if offset is out
// of range.
func (b *Buffer) byteAt(offset int64) (byte, bool) {
	if offset < 0 || offset >= b.size {
		return 0, false
	}
	s, start := b.segmentAt(offset)
	return s.Data()[s.Pos()+int(offset-start)], true
}

// discard consumes n bytes from the head without copying them out.
func (b *Buffer) discard(n int64) {
	for n > 0 {
		h := b.head
		avail := int64(h.Len())
		take := n
		if take > avail {
			take = avail
		}
		h.SetPos(h.Pos() + int(take))
		b.size -= take
		n -= take
		if h.Len() == 0 {
			b.popHead()
		}
	}
}

// truncateTail drops the last n bytes, trimming tail segments and
// recycling any that empty out.
func (b *Buffer) truncateTail(n int64) {
	for n > 0 {
		tail := b.head.Prev()
		take := n
		if avail := int64(tail.Len()); take > avail {
			take = avail
		}
		tail.SetLimit(tail.Limit() - int(take))
		b.size -= take
		n -= take
		if tail.Len() == 0 {
			if tail == b.head {
				b.head = nil
			}
			tail.Pop()
			segment.Recycle(tail)
		}
	}
}

// read copies exactly len(dst) bytes from the head into dst and
// consumes them. Callers must ensure b.size >= len(dst).
func (b *Buffer) read(dst []byte) {
	for len(dst) > 0 {
		h := b.head
		n := copy(dst, h.Data()[h.Pos():h.Limit()])
		h.SetPos(h.Pos() + n)
		b.size -= int64(n)
		dst = dst[n:]
		if h.Len() == 0 {
			b.popHead()
		}
	}
}

// checkAvailable returns ioerr.EOF if fewer than n bytes are buffered.
func (b *Buffer) checkAvailable(n int64) error {
	if b.size < n {
		return ioerr.EOF
	}
	return nil
}
