package buffer

import "golang.org/x/exp/constraints"

// putBE writes v's low len(dst) bytes into dst, most significant first.
func putBE[T constraints.Signed](dst []byte, v T) {
	uv := uint64(v)
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] = byte(uv >> uint(8*(n-1-i)))
	}
}

// putLE writes v's low len(dst) bytes into dst, least significant first.
func putLE[T constraints.Signed](dst []byte, v T) {
	uv := uint64(v)
	for i := range dst {
		dst[i] = byte(uv >> uint(8*i))
	}
}

// getBE reads src as a big-endian value, sign-extended by T's width.
func getBE[T constraints.Signed](src []byte) T {
	var uv uint64
	for _, c := range src {
		uv = uv<<8 | uint64(c)
	}
	return T(uv)
}

// getLE reads src as a little-endian value, sign-extended by T's width.
func getLE[T constraints.Signed](src []byte) T {
	var uv uint64
	for i := len(src) - 1; i >= 0; i-- {
		uv = uv<<8 | uint64(src[i])
	}
	return T(uv)
}

// WriteShortBE appends v as two big-endian bytes.
func (b *Buffer) WriteShortBE(v int16) {
	var buf [2]byte
	putBE(buf[:], v)
	b.Write(buf[:])
}

// WriteShortLE appends v as two little-endian bytes.
func (b *Buffer) WriteShortLE(v int16) {
	var buf [2]byte
	putLE(buf[:], v)
	b.Write(buf[:])
}

// WriteIntBE appends v as four big-endian bytes.
func (b *Buffer) WriteIntBE(v int32) {
	var buf [4]byte
	putBE(buf[:], v)
	b.Write(buf[:])
}

// WriteIntLE appends v as four little-endian bytes.
func (b *Buffer) WriteIntLE(v int32) {
	var buf [4]byte
	putLE(buf[:], v)
	b.Write(buf[:])
}

// WriteLongBE appends v as eight big-endian bytes.
func (b *Buffer) WriteLongBE(v int64) {
	var buf [8]byte
	putBE(buf[:], v)
	b.Write(buf[:])
}

// WriteLongLE appends v as eight little-endian bytes.
func (b *Buffer) WriteLongLE(v int64) {
	var buf [8]byte
	putLE(buf[:], v)
	b.Write(buf[:])
}

// ReadShortBE consumes two bytes and returns them as a big-endian int16.
func (b *Buffer) ReadShortBE() (int16, error) {
	if err := b.checkAvailable(2); err != nil {
		return 0, err
	}
	var buf [2]byte
	b.read(buf[:])
	return getBE[int16](buf[:]), nil
}

// ReadShortLE consumes two bytes and returns them as a little-endian int16.
func (b *Buffer) ReadShortLE() (int16, error) {
	if err := b.checkAvailable(2); err != nil {
		return 0, err
	}
	var buf [2]byte
	b.read(buf[:])
	return getLE[int16](buf[:]), nil
}

// ReadIntBE consumes four bytes and returns them as a big-endian int32.
func (b *Buffer) ReadIntBE() (int32, error) {
	if err := b.checkAvailable(4); err != nil {
		return 0, err
	}
	var buf [4]byte
	b.read(buf[:])
	return getBE[int32](buf[:]), nil
}

// ReadIntLE consumes four bytes and returns them as a little-endian int32.
func (b *Buffer) ReadIntLE() (int32, error) {
	if err := b.checkAvailable(4); err != nil {
		return 0, err
	}
	var buf [4]byte
	b.read(buf[:])
	return getLE[int32](buf[:]), nil
}

// ReadLongBE consumes eight bytes and returns them as a big-endian int64.
func (b *Buffer) ReadLongBE() (int64, error) {
	if err := b.checkAvailable(8); err != nil {
		return 0, err
	}
	var buf [8]byte
	b.read(buf[:])
	return getBE[int64](buf[:]), nil
}

// ReadLongLE consumes eight bytes and returns them as a little-endian int64.
func (b *Buffer) ReadLongLE() (int64, error) {
	if err := b.checkAvailable(8); err != nil {
		return 0, err
	}
	var buf [8]byte
	b.read(buf[:])
	return getLE[int64](buf[:]), nil
}
