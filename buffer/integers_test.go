package buffer

import "testing"

func TestFixedWidthIntegerRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		op   string
	}{
		{name: "Success: short big-endian", op: "shortBE"},
		{name: "Success: short little-endian", op: "shortLE"},
		{name: "Success: int big-endian", op: "intBE"},
		{name: "Success: int little-endian", op: "intLE"},
		{name: "Success: long big-endian", op: "longBE"},
		{name: "Success: long little-endian", op: "longLE"},
	}

	for _, test := range tests {
		b := New()
		switch test.op {
		case "shortBE":
			b.WriteShortBE(-1234)
			got, err := b.ReadShortBE()
			check(t, test.name, err, int64(got), -1234)
		case "shortLE":
			b.WriteShortLE(-1234)
			got, err := b.ReadShortLE()
			check(t, test.name, err, int64(got), -1234)
		case "intBE":
			b.WriteIntBE(-123456)
			got, err := b.ReadIntBE()
			check(t, test.name, err, int64(got), -123456)
		case "intLE":
			b.WriteIntLE(-123456)
			got, err := b.ReadIntLE()
			check(t, test.name, err, int64(got), -123456)
		case "longBE":
			b.WriteLongBE(-123456789012345)
			got, err := b.ReadLongBE()
			check(t, test.name, err, got, -123456789012345)
		case "longLE":
			b.WriteLongLE(-123456789012345)
			got, err := b.ReadLongLE()
			check(t, test.name, err, got, -123456789012345)
		}
	}
}

func check(t *testing.T, name string, err error, got, want int64) {
	t.Helper()
	if err != nil {
		t.Fatalf("TestFixedWidthIntegerRoundTrip(%s): unexpected error = %v", name, err)
	}
	if got != want {
		t.Errorf("TestFixedWidthIntegerRoundTrip(%s): got %d, want %d", name, got, want)
	}
}

func TestFixedWidthIntegerEOF(t *testing.T) {
	tests := []struct {
		name string
	}{
		{name: "Failure: two-byte read with only one byte buffered"},
	}

	for _, test := range tests {
		b := New()
		b.WriteByte(0x01)
		if _, err := b.ReadShortBE(); err == nil {
			t.Errorf("TestFixedWidthIntegerEOF(%s): error = nil, want EOF", test.name)
		}
	}
}
