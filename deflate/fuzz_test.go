package deflate

import (
	"bytes"
	"testing"

	"github.com/bearlytools/iobuf/buffer"
	"github.com/bearlytools/iobuf/bufio"
)

// FuzzFlateRoundTrip fuzzes DeflaterSink/InflaterSource over
// FlateProcessor: whatever bytes go in must come back out unchanged.
func FuzzFlateRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("hello"))
	f.Add(bytes.Repeat([]byte("a"), 9000)) // spans multiple segments
	f.Add([]byte{0x00, 0xFF, 0x10, 0x80})

	f.Fuzz(func(t *testing.T, payload []byte) {
		raw := &memSink{}
		sink := bufio.NewBufferedSink(raw)
		dsink, err := NewDeflaterSink(sink, FlateProcessor{})
		if err != nil {
			t.Fatalf("FuzzFlateRoundTrip: NewDeflaterSink() error = %v", err)
		}
		if _, err := dsink.Write(payload); err != nil {
			t.Fatalf("FuzzFlateRoundTrip: Write() error = %v", err)
		}
		if err := dsink.Close(); err != nil {
			t.Fatalf("FuzzFlateRoundTrip: Close() error = %v", err)
		}

		msrc := &memSource{data: raw.out.Bytes()}
		src := bufio.NewBufferedSource(msrc)
		dsrc, err := NewInflaterSource(src, FlateProcessor{})
		if err != nil {
			t.Fatalf("FuzzFlateRoundTrip: NewInflaterSource() error = %v", err)
		}
		target := buffer.New()
		if _, err := dsrc.ReadAll(target); err != nil {
			t.Fatalf("FuzzFlateRoundTrip: ReadAll() error = %v", err)
		}
		if err := dsrc.Close(); err != nil {
			t.Fatalf("FuzzFlateRoundTrip: Close() error = %v", err)
		}

		got, err := target.ReadBytes(target.Size())
		if err != nil {
			t.Fatalf("FuzzFlateRoundTrip: ReadBytes() error = %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("FuzzFlateRoundTrip: round trip = %q, want %q", got, payload)
		}
	})
}
