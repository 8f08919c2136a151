package buffer

import "io"

// Write implements io.Writer, appending a copy of p.
func (b *Buffer) Write(p []byte) (n int, err error) {
	remaining := p
	for len(remaining) > 0 {
		s := b.writableSegment(1)
		free := len(s.Data()) - s.Limit()
		chunk := remaining
		if len(chunk) > free {
			chunk = chunk[:free]
		}
		copy(s.Data()[s.Limit():], chunk)
		s.SetLimit(s.Limit() + len(chunk))
		b.size += int64(len(chunk))
		remaining = remaining[len(chunk):]
	}
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	s := b.writableSegment(1)
	s.Data()[s.Limit()] = c
	s.SetLimit(s.Limit() + 1)
	b.size++
	return nil
}

// Read implements io.Reader: it fills p with buffered bytes, consuming
// them, and returns io.EOF once the buffer is empty.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if b.size == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	want := int64(len(p))
	if want > b.size {
		want = b.size
	}
	b.read(p[:want])
	return int(want), nil
}

// ReadByte consumes and returns a single byte.
func (b *Buffer) ReadByte() (byte, error) {
	if b.size == 0 {
		return 0, io.EOF
	}
	h := b.head
	c := h.Data()[h.Pos()]
	h.SetPos(h.Pos() + 1)
	b.size--
	if h.Len() == 0 {
		b.popHead()
	}
	return c, nil
}

// WriteTo implements io.WriterTo, draining the entire buffer into w.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	for b.size > 0 {
		h := b.head
		chunk := h.Data()[h.Pos():h.Limit()]
		wn, werr := w.Write(chunk)
		n += int64(wn)
		h.SetPos(h.Pos() + wn)
		b.size -= int64(wn)
		if h.Len() == 0 {
			b.popHead()
		}
		if werr != nil {
			return n, werr
		}
		if wn < len(chunk) {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// ReadFrom implements io.ReaderFrom, appending everything r produces
// until it reports io.EOF.
func (b *Buffer) ReadFrom(r io.Reader) (n int64, err error) {
	for {
		s := b.writableSegment(1)
		free := len(s.Data()) - s.Limit()
		rn, rerr := r.Read(s.Data()[s.Limit() : s.Limit()+free])
		if rn > 0 {
			s.SetLimit(s.Limit() + rn)
			b.size += int64(rn)
			n += int64(rn)
		}
		if rerr == io.EOF {
			return n, nil
		}
		if rerr != nil {
			return n, rerr
		}
		if rn == 0 {
			return n, nil
		}
	}
}
