package rawmem

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

var errMappingClosed = errors.New("mapping closed")

// Mapping is memory mapped into the current process outside the Go heap,
// either anonymous or backed by a file. Its region stays valid until Close.
type Mapping struct {
	data   []byte
	shared bool
	handle mapHandle
}

// Map returns size bytes of zeroed, readable and writable anonymous memory.
func Map(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid mapping size %d", size)
	}
	data, h, err := mapAnonymous(size)
	if err != nil {
		return nil, fmt.Errorf("failed to map %d bytes: %w", size, err)
	}
	return &Mapping{data: data, handle: h}, nil
}

// MapFile maps the whole file at path. A writable mapping is shared, so
// writes reach the file once flushed; otherwise the view is copy-on-write
// and writes stay private to this process.
func MapFile(path string, writable bool) (*Mapping, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("cannot map empty file %s", path)
	}

	data, h, err := mapFile(f, int(info.Size()), writable)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}
	return &Mapping{data: data, shared: writable, handle: h}, nil
}

// Address returns the start of the mapping.
func (m *Mapping) Address() Address {
	if len(m.data) == 0 {
		return 0
	}
	return Address(uintptr(unsafe.Pointer(&m.data[0])))
}

// Len returns the mapping size in bytes.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Region returns the mapped range.
func (m *Mapping) Region() Region {
	return Region{Start: m.Address(), Len: uintptr(len(m.data))}
}

// Bytes returns the mapped memory as a slice. It is invalid after Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Flush writes a shared file mapping back to its file. It is a no-op for
// anonymous and private mappings.
func (m *Mapping) Flush() error {
	if m.data == nil {
		return errMappingClosed
	}
	if !m.shared {
		return nil
	}
	return flush(m.data)
}

// Close unmaps the memory. Addresses inside the mapping must not be used
// afterwards.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	err := unmap(m.data, m.handle)
	m.data = nil
	return err
}
