//go:build linux || darwin || freebsd || netbsd || openbsd

package rawmem

import (
	"os"

	"golang.org/x/sys/unix"
)

type mapHandle struct{}

func mapAnonymous(size int) ([]byte, mapHandle, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	return data, mapHandle{}, err
}

func mapFile(f *os.File, size int, writable bool) ([]byte, mapHandle, error) {
	flags := unix.MAP_PRIVATE
	if writable {
		flags = unix.MAP_SHARED
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, flags)
	return data, mapHandle{}, err
}

func flush(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

func unmap(data []byte, _ mapHandle) error {
	return unix.Munmap(data)
}
