package bytestring

import "encoding/base64"

// EncodeBase64 returns the standard-alphabet base64 encoding of bs.
func EncodeBase64(bs ByteString) ByteString {
	return FromString(base64.StdEncoding.EncodeToString(bs.Bytes()))
}

// EncodeBase64URL returns the URL-alphabet base64 encoding of bs.
func EncodeBase64URL(bs ByteString) ByteString {
	return FromString(base64.URLEncoding.EncodeToString(bs.Bytes()))
}

// base64Value maps every byte of either the standard or URL base64
// alphabet to its 6-bit value; all other bytes map to -1.
var base64Value = buildBase64Table()

func buildBase64Table() [256]int8 {
	const std = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	const url = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < 64; i++ {
		t[std[i]] = int8(i)
		t[url[i]] = int8(i)
	}
	return t
}

// DecodeBase64 decodes s, accepting either the standard or URL
// alphabet, skipping ASCII whitespace and '=' padding. It returns nil
// (not an error) on the first non-alphabet, non-whitespace,
// non-padding byte, per the lenient decode contract.
func DecodeBase64(s string) ByteString {
	var bits uint32
	nbits := 0
	out := make([]byte, 0, len(s)*3/4+3)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			continue
		case c == '=':
			continue
		}
		v := base64Value[c]
		if v < 0 {
			return nil
		}
		bits = bits<<6 | uint32(v)
		nbits += 6
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte(bits>>uint(nbits)))
		}
	}
	return New(out)
}
