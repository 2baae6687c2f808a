// Package rawmem reads, writes and patches raw memory in the caller's own
// address space and locates byte signatures with wildcard (AOB) patterns.
//
// Everything here works on plain addresses. Nothing checks that an address
// is mapped, aligned or still alive; that is the caller's job, and the
// Address.Unchecked capability exists so every dereferencing call site says
// so. Null addresses are rejected only where documented.
//
// All operations run synchronously on the calling goroutine. There is no
// locking: concurrent access to overlapping memory through this package,
// or by anything else while a Scanner or Edit is using it, is a data race
// the caller must prevent.
package rawmem
