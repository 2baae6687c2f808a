package rawmem

import (
	"fmt"
	"strings"
)

// Address represents a memory address in the caller's address space.
// It is a non-owning handle: it neither allocates nor frees, and nothing
// tracks the lifetime of the memory behind it.
type Address uintptr

// String returns the hexadecimal representation of the address
func (a Address) String() string {
	return fmt.Sprintf("0x%X", uint64(a))
}

// IsNull reports whether the address is zero.
func (a Address) IsNull() bool {
	return a == 0
}

// Add returns the address offset bytes past a.
func (a Address) Add(offset uintptr) Address {
	return a + Address(offset)
}

// Region is a contiguous byte range [Start, Start+Len) that is already
// mapped into the caller's address space.
type Region struct {
	Start Address
	Len   uintptr
}

// End returns the first address past the region.
func (r Region) End() Address {
	return r.Start.Add(r.Len)
}

// Contains reports whether the n bytes starting at addr lie inside the region.
func (r Region) Contains(addr Address, n uintptr) bool {
	if addr < r.Start || addr > r.End() {
		return false
	}
	return uintptr(r.End()-addr) >= n
}

// Match represents a single pattern match inside a region
type Match struct {
	Address Address
	Data    []byte
}

// Offset returns the position of the match relative to the region start.
func (m Match) Offset(r Region) uintptr {
	return uintptr(m.Address - r.Start)
}

// Content returns the data as a UTF-8 string, replacing invalid UTF-8 sequences
func (m Match) Content() string {
	return strings.ToValidUTF8(string(m.Data), "")
}

// MatchHandler is called for each match found during scanning.
// Return false to stop the scan, true to continue.
type MatchHandler func(match Match) bool
