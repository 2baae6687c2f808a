package rawmem

import (
	"fmt"
	"unsafe"
)

// Scanner searches a region for a compiled pattern. It remembers the last
// match so FindNext can continue from it.
//
// The scan is a plain forward linear search, O(region length x pattern
// size) in the worst case. A candidate start position is only tried when
// the whole pattern window fits inside the region, so the scanner never
// reads past Region.End.
//
// A Scanner is not safe for concurrent use, and nothing stops other code
// from modifying the region while it is being scanned.
type Scanner struct {
	pattern *Pattern
	region  Region
	cursor  Address
}

// NewScanner compiles pattern and returns a scanner over region.
func NewScanner(pattern string, region Region) (*Scanner, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return NewScannerFor(p, region), nil
}

// NewScannerFor returns a scanner for an already compiled pattern.
func NewScannerFor(p *Pattern, region Region) *Scanner {
	return &Scanner{
		pattern: p,
		region:  region,
		cursor:  region.Start,
	}
}

// Pattern returns the compiled pattern.
func (s *Scanner) Pattern() *Pattern {
	return s.pattern
}

// Region returns the scanned region.
func (s *Scanner) Region() Region {
	return s.region
}

// Cursor returns the address of the last match, or the region start if
// nothing has matched yet.
func (s *Scanner) Cursor() Address {
	return s.cursor
}

// Reset moves the cursor back to the region start.
func (s *Scanner) Reset() {
	s.cursor = s.region.Start
}

// FindFirst returns the first match in the region.
func (s *Scanner) FindFirst() (Address, bool) {
	return s.findFrom(0)
}

// FindNext returns the first match strictly after the cursor.
func (s *Scanner) FindNext() (Address, bool) {
	return s.findFrom(uintptr(s.cursor-s.region.Start) + 1)
}

// Each reports every match in the region, in address order, to handler
// until it returns false. It returns the number of matches reported.
func (s *Scanner) Each(handler MatchHandler) int {
	count := 0
	addr, ok := s.FindFirst()
	for ok {
		count++
		match := Match{
			Address: addr,
			Data:    addr.Unchecked().Read(uintptr(s.pattern.Size())),
		}
		if !handler(match) {
			break
		}
		addr, ok = s.FindNext()
	}
	return count
}

func (s *Scanner) findFrom(offset uintptr) (Address, bool) {
	if offset >= s.region.Len || s.region.Start.IsNull() {
		return 0, false
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(s.region.Start))), s.region.Len)
	i := s.pattern.Index(data, int(offset))
	if i < 0 {
		return 0, false
	}

	s.cursor = s.region.Start.Add(uintptr(i))
	return s.cursor, true
}
