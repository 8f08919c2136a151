package bytestring

import "github.com/bearlytools/iobuf/ioerr"

const hexDigits = "0123456789abcdef"

// encodeHex returns the lowercase hex encoding of data.
func encodeHex(data []byte) string {
	out := make([]byte, len(data)*2)
	for i, c := range data {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0F]
	}
	return string(out)
}

// EncodeHex returns the lowercase hex encoding of bs as a ByteString.
func EncodeHex(bs ByteString) ByteString {
	return FromString(encodeHex(bs.Bytes()))
}

// DecodeHex decodes a hex string (either case) into a ByteString. Odd
// length or non-hex input is an invalid-argument error.
func DecodeHex(s string) (ByteString, error) {
	if len(s)%2 != 0 {
		return nil, ioerr.E(ioerr.TypeArgument, "DecodeHex: odd-length input")
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return nil, ioerr.E(ioerr.TypeArgument, "DecodeHex: non-hex character")
		}
		out[i] = byte(hi<<4 | lo)
	}
	return New(out), nil
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
