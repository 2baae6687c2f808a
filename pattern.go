package rawmem

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

const wildcard = '?'

// StringToPattern converts a search string to an AOB (Array of Bytes) pattern.
// Wildcard characters (?) are converted to "??". The pattern is padded to the specified length.
func StringToPattern(searchStr string, minLength int) string {
	if searchStr == "" {
		return ""
	}

	var builder strings.Builder
	bytes := []byte(searchStr)
	patternLength := len(bytes)
	if minLength > patternLength {
		patternLength = minLength
	}

	for i := 0; i < patternLength; i++ {
		if i > 0 {
			builder.WriteString(" ")
		}

		if i < len(bytes) && bytes[i] != wildcard {
			fmt.Fprintf(&builder, "%02X", bytes[i])
		} else {
			builder.WriteString("??")
		}
	}

	return builder.String()
}

// Pattern is a compiled AOB pattern. Byte positions are either fixed or
// wildcard; a position is a wildcard when either of its two characters is
// '?', so "4?" matches any byte, not just 0x40-0x4F.
type Pattern struct {
	source       string
	patternBytes []byte
	wildcardMask []bool
}

// Compile parses an AOB pattern such as "7b ?? 57 07 ?? bc ?? c7".
// Trailing wildcards and whitespace are dropped, remaining whitespace is
// ignored, and the rest must be pairs of hex digits or '?'.
func Compile(pattern string) (*Pattern, error) {
	trimmed := strings.TrimRightFunc(pattern, func(r rune) bool {
		return r == wildcard || unicode.IsSpace(r)
	})
	sanitized := strings.Join(strings.Fields(trimmed), "")

	if sanitized == "" {
		return nil, fmt.Errorf("%w: pattern %q is empty", ErrInvalidPatternFormat, pattern)
	}
	if len(sanitized)%2 != 0 {
		return nil, fmt.Errorf("%w: pattern %q has an odd number of digits", ErrInvalidPatternFormat, pattern)
	}

	size := len(sanitized) / 2
	p := &Pattern{
		source:       sanitized,
		patternBytes: make([]byte, size),
		wildcardMask: make([]bool, size),
	}

	for i := 0; i < size; i++ {
		token := sanitized[2*i : 2*i+2]
		if token[0] == wildcard || token[1] == wildcard {
			p.wildcardMask[i] = true
			continue
		}

		decoded, err := hex.DecodeString(token)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hex byte %q", ErrInvalidPatternFormat, token)
		}
		p.patternBytes[i] = decoded[0]
	}

	return p, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Size returns the number of bytes the pattern spans.
func (p *Pattern) Size() int {
	return len(p.patternBytes)
}

// String returns the sanitized pattern text.
func (p *Pattern) String() string {
	return p.source
}

// Bytes returns a copy of the expected values; wildcard positions hold 0.
func (p *Pattern) Bytes() []byte {
	return append([]byte(nil), p.patternBytes...)
}

// Mask returns a copy of the wildcard mask.
func (p *Pattern) Mask() []bool {
	return append([]bool(nil), p.wildcardMask...)
}

// MatchAt reports whether window starts with the pattern. Windows shorter
// than the pattern never match.
func (p *Pattern) MatchAt(window []byte) bool {
	if len(window) < len(p.patternBytes) {
		return false
	}
	for j, want := range p.patternBytes {
		if p.wildcardMask[j] {
			continue
		}
		if window[j]^want != 0 {
			return false
		}
	}
	return true
}

// Index returns the first position >= from at which data matches the
// pattern, or -1. Only positions whose whole window fits in data are tried.
func (p *Pattern) Index(data []byte, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i <= len(data)-len(p.patternBytes); i++ {
		if p.MatchAt(data[i:]) {
			return i
		}
	}
	return -1
}
