package rawmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// mapBytes copies data into anonymous memory outside the Go heap, so raw
// addresses into it stay valid for the whole test.
func mapBytes(t testing.TB, data []byte) *Mapping {
	t.Helper()

	m, err := Map(len(data))
	require.NoError(t, err)
	copy(m.Bytes(), data)
	t.Cleanup(func() { m.Close() })
	return m
}

func mapZeroed(t testing.TB, size int) *Mapping {
	t.Helper()
	return mapBytes(t, make([]byte, size))
}

// at views the mapping memory at off as a *T.
func at[T any](m *Mapping, off uintptr) *T {
	return (*T)(unsafe.Pointer(&m.Bytes()[off]))
}
