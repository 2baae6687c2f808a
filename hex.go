package rawmem

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Lettercase selects the digits used by EncodeHex.
type Lettercase int

const (
	Lowercase Lettercase = iota
	Uppercase
)

// EncodeHex renders b as two hex digits per byte joined by sep.
func EncodeHex(b []byte, lc Lettercase, sep string) string {
	format := "%02x"
	if lc == Uppercase {
		format = "%02X"
	}

	var builder strings.Builder
	for i, v := range b {
		if i > 0 {
			builder.WriteString(sep)
		}
		fmt.Fprintf(&builder, format, v)
	}
	return builder.String()
}

// DecodeHex parses a hex string such as "12 34 AB cd". Whitespace is
// ignored. Empty input, an odd digit count or a non-hex character yields an
// empty result and ErrInvalidHexString.
func DecodeHex(s string) ([]byte, error) {
	sanitized := strings.Join(strings.Fields(s), "")
	if sanitized == "" || len(sanitized)%2 != 0 {
		return []byte{}, fmt.Errorf("%w: %q", ErrInvalidHexString, s)
	}

	b, err := hex.DecodeString(sanitized)
	if err != nil {
		return []byte{}, fmt.Errorf("%w: %v", ErrInvalidHexString, err)
	}
	return b, nil
}
