package buffer

// Get returns the byte at absolute offset pos from the head, without
// consuming it.
func (b *Buffer) Get(pos int64) (byte, bool) {
	return b.byteAt(pos)
}

// IndexOfByte returns the absolute offset of the first occurrence of c
// in [from, to), or -1 if none is found. to may exceed b.Size(), which
// is treated as b.Size().
func (b *Buffer) IndexOfByte(c byte, from, to int64) int64 {
	if from < 0 {
		from = 0
	}
	if to > b.size {
		to = b.size
	}
	if from >= to || b.head == nil {
		return -1
	}
	return b.indexOfByte(c, from, to)
}

// indexOfByte does the actual segment-walk.
func (b *Buffer) indexOfByte(c byte, from, to int64) int64 {
	if b.head == nil {
		return -1
	}
	s := b.head
	segStart := int64(0)
	for {
		segEnd := segStart + int64(s.Len())
		if segEnd > from {
			data := s.Data()
			lo := s.Pos()
			if from > segStart {
				lo += int(from - segStart)
			}
			hi := s.Pos() + s.Len()
			if segEnd > to {
				hi -= int(segEnd - to)
			}
			for i := lo; i < hi; i++ {
				if data[i] == c {
					return segStart + int64(i-s.Pos())
				}
			}
		}
		if segEnd >= to || segEnd >= b.size {
			return -1
		}
		segStart = segEnd
		s = s.Next()
	}
}

// IndexOfBytes returns the absolute offset of the first occurrence of
// target at or after from, or -1 if none is found. The empty target
// matches immediately at from.
func (b *Buffer) IndexOfBytes(target []byte, from int64) int64 {
	if len(target) == 0 {
		return from
	}
	if from < 0 {
		from = 0
	}
	first := target[0]
	for {
		candidate := b.indexOfByte(first, from, b.size)
		if candidate < 0 {
			return -1
		}
		if b.RangeEquals(candidate, target, 0, len(target)) {
			return candidate
		}
		from = candidate + 1
	}
}

// IndexOfElement returns the absolute offset of the first byte at or
// after from that appears anywhere in set, or -1 if none does.
func (b *Buffer) IndexOfElement(set []byte, from int64) int64 {
	if b.head == nil {
		return -1
	}
	if from < 0 {
		from = 0
	}
	s := b.head
	segStart := int64(0)
	for {
		segEnd := segStart + int64(s.Len())
		if segEnd > from {
			data := s.Data()
			lo := s.Pos()
			if from > segStart {
				lo += int(from - segStart)
			}
			hi := s.Pos() + s.Len()
			for i := lo; i < hi; i++ {
				for _, c := range set {
					if data[i] == c {
						return segStart + int64(i-s.Pos())
					}
				}
			}
		}
		if segEnd >= b.size {
			return -1
		}
		segStart = segEnd
		s = s.Next()
	}
}

// RangeEquals reports whether the count bytes of other starting at
// otherOffset equal the count bytes of b starting at absolute offset
// offset. Returns false (rather than erroring) if either range runs
// past the end of its buffer.
func (b *Buffer) RangeEquals(offset int64, other []byte, otherOffset, count int) bool {
	if offset < 0 || count < 0 || offset+int64(count) > b.size {
		return false
	}
	if otherOffset < 0 || otherOffset+count > len(other) {
		return false
	}
	for i := 0; i < count; i++ {
		c, ok := b.byteAt(offset + int64(i))
		if !ok || c != other[otherOffset+i] {
			return false
		}
	}
	return true
}
