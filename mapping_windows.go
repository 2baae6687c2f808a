package rawmem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

type mapHandle struct {
	addr uintptr
	view bool
}

func mapAnonymous(size int) ([]byte, mapHandle, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, mapHandle{}, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), mapHandle{addr: addr}, nil
}

func mapFile(f *os.File, size int, writable bool) ([]byte, mapHandle, error) {
	prot := uint32(windows.PAGE_WRITECOPY)
	access := uint32(windows.FILE_MAP_COPY)
	if writable {
		prot = windows.PAGE_READWRITE
		access = windows.FILE_MAP_WRITE
	}

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, prot, 0, 0, nil)
	if err != nil {
		return nil, mapHandle{}, err
	}
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, access, 0, 0, uintptr(size))
	if err != nil {
		return nil, mapHandle{}, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), mapHandle{addr: addr, view: true}, nil
}

func flush(data []byte) error {
	return windows.FlushViewOfFile(uintptr(unsafe.Pointer(&data[0])), uintptr(len(data)))
}

func unmap(_ []byte, h mapHandle) error {
	if h.view {
		return windows.UnmapViewOfFile(h.addr)
	}
	return windows.VirtualFree(h.addr, 0, windows.MEM_RELEASE)
}
