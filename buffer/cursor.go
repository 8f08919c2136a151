package buffer

import (
	"github.com/bearlytools/iobuf/ioerr"
	"github.com/bearlytools/iobuf/segment"
)

// UnsafeCursor gives direct access to a Buffer's segment internals. It
// moves through four states: detached (zero value) → before-first
// (Seek(-1), Offset == -1) → in-segment (Offset in [0, size), Data /
// Start / End valid) → after-last (Offset == size) → detached (Close).
//
// While a cursor is attached to a Buffer, nothing else may read or
// write that Buffer.
type UnsafeCursor struct {
	Data  []byte
	Start int
	End   int

	buf       *Buffer
	readWrite bool
	seg       *segment.Segment
	segStart  int64
	Offset    int64
}

// Attach binds the cursor to b. readWrite permits ExpandBuffer,
// ResizeBuffer, and triggers copy-on-write when seeking into a shared
// segment.
func (c *UnsafeCursor) Attach(b *Buffer, readWrite bool) {
	if c.buf != nil {
		panic("buffer: cursor already attached")
	}
	c.buf = b
	c.readWrite = readWrite
	c.Offset = -1
}

// Seek moves the cursor to absolute offset and returns the number of
// bytes readable from there within the current segment, or -1 if
// offset is before-first (-1) or equal to the buffer's size. It panics
// if offset is below -1 or above the buffer's size.
func (c *UnsafeCursor) Seek(offset int64) int {
	c.requireAttached()
	if offset < -1 || offset > c.buf.size {
		panic("buffer: cursor seek offset out of range")
	}

	if offset == -1 || offset == c.buf.size {
		c.seg = nil
		c.segStart = 0
		c.Offset = offset
		c.Data = nil
		c.Start = 0
		c.End = 0
		return -1
	}

	s, segStart := c.buf.segmentAt(offset)
	if c.readWrite && s.Shared() {
		s = c.buf.replaceWithUnsharedCopy(s)
	}

	c.seg = s
	c.segStart = segStart
	c.Offset = offset
	localOffset := int(offset - segStart)
	c.Start = s.Pos() + localOffset
	c.End = s.Pos() + s.Len()
	c.Data = s.Data()
	return c.End - c.Start
}

// Next advances the cursor to the first byte of the following segment,
// returning the same value Seek would.
func (c *UnsafeCursor) Next() int {
	if c.seg == nil {
		panic("buffer: cursor Next called outside a segment")
	}
	nextOffset := c.segStart + int64(c.seg.Len())
	return c.Seek(nextOffset)
}

// ExpandBuffer appends a contiguous range of at least minByteCount
// bytes of undefined content at the buffer's tail, advances its size,
// and seeks the cursor to the start of the new range. It returns the
// number of bytes actually added, which never exceeds one segment's
// capacity.
func (c *UnsafeCursor) ExpandBuffer(minByteCount int) (int64, error) {
	c.requireAttached()
	if !c.readWrite {
		return 0, ioerr.E(ioerr.TypeState, "ExpandBuffer: cursor is not read-write")
	}
	if minByteCount <= 0 || minByteCount > segment.Size {
		return 0, ioerr.E(ioerr.TypeArgument, "ExpandBuffer: minByteCount out of range")
	}

	offset := c.buf.size
	s := c.buf.writableSegment(minByteCount)
	added := len(s.Data()) - s.Limit()
	s.SetLimit(s.Limit() + added)
	c.buf.size += int64(added)

	c.Seek(offset)
	return int64(added), nil
}

// ResizeBuffer grows or shrinks the buffer to newSize, trimming tail
// segments on shrink and appending capacity on grow.
func (c *UnsafeCursor) ResizeBuffer(newSize int64) error {
	c.requireAttached()
	if !c.readWrite {
		return ioerr.E(ioerr.TypeState, "ResizeBuffer: cursor is not read-write")
	}
	if newSize < 0 {
		return ioerr.E(ioerr.TypeArgument, "ResizeBuffer: newSize must be non-negative")
	}

	oldSize := c.buf.size
	switch {
	case newSize < oldSize:
		c.buf.truncateTail(oldSize - newSize)
	case newSize > oldSize:
		grow := newSize - oldSize
		for grow > 0 {
			s := c.buf.writableSegment(1)
			free := int64(len(s.Data()) - s.Limit())
			take := grow
			if take > free {
				take = free
			}
			s.SetLimit(s.Limit() + int(take))
			c.buf.size += take
			grow -= take
		}
	}
	return nil
}

// Close detaches the cursor and clears its fields. Closing a detached
// cursor is a no-op.
func (c *UnsafeCursor) Close() error {
	c.buf = nil
	c.readWrite = false
	c.seg = nil
	c.segStart = 0
	c.Offset = 0
	c.Data = nil
	c.Start = 0
	c.End = 0
	return nil
}

func (c *UnsafeCursor) requireAttached() {
	if c.buf == nil {
		panic("buffer: cursor is not attached")
	}
}

// replaceWithUnsharedCopy splices an unshared copy of s into the ring in
// s's place (updating b.head if s was the head) and returns it. Used by
// the cursor's copy-on-write rule: a read-write cursor must never
// expose a shared segment's array for mutation.
func (b *Buffer) replaceWithUnsharedCopy(s *segment.Segment) *segment.Segment {
	prev := s.Prev()
	wasHead := s == b.head
	replacement := s.UnsharedCopy()

	next := s.Pop()
	if next == nil {
		replacement.Solo()
	} else {
		prev.Push(replacement)
	}
	if wasHead {
		b.head = replacement
	}
	segment.Recycle(s)
	return replacement
}
