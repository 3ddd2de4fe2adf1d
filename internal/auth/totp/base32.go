package totp

import "strings"

// RFC 4648 base32 alphabet. Secrets are exchanged without padding because
// authenticator apps reject '=' in otpauth URIs.
const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// EncodeBase32 encodes b without padding. Output length is ceil(len(b)*8/5).
func EncodeBase32(b []byte) string {
	var sb strings.Builder
	sb.Grow((len(b)*8 + 4) / 5)

	var buffer, bits uint
	for _, by := range b {
		buffer = buffer<<8 | uint(by)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(base32Alphabet[buffer>>bits&0x1F])
		}
	}
	if bits > 0 {
		sb.WriteByte(base32Alphabet[buffer<<(5-bits)&0x1F])
	}

	return sb.String()
}

// DecodeBase32 decodes case-insensitively, skipping any character outside
// the alphabet (spaces, dashes, padding).
func DecodeBase32(s string) []byte {
	out := make([]byte, 0, len(s)*5/8)

	var buffer, bits uint
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		idx := strings.IndexByte(base32Alphabet, c)
		if idx < 0 {
			continue
		}
		buffer = buffer<<5 | uint(idx)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buffer>>bits))
		}
	}

	return out
}
