//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package rawmem

import (
	"errors"
	"os"
)

var errMappingUnsupported = errors.New("memory mappings are not supported on this platform")

type mapHandle struct{}

func mapAnonymous(int) ([]byte, mapHandle, error) {
	return nil, mapHandle{}, errMappingUnsupported
}

func mapFile(*os.File, int, bool) ([]byte, mapHandle, error) {
	return nil, mapHandle{}, errMappingUnsupported
}

func flush([]byte) error { return errMappingUnsupported }

func unmap([]byte, mapHandle) error { return errMappingUnsupported }
