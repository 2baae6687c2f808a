package rawmem

import "fmt"

// ResolveChain walks a multi-level pointer starting from the pointer
// stored at r. For every offset except the last, the pointer at
// base+offset becomes the new base; the returned address is base+last.
//
// Zero pointers met along the way stop the walk with
// ErrInvalidIntermediatePointer. Non-zero garbage is not detected and is
// dereferenced as is.
func ResolveChain(r Raw, offsets []uintptr) (Address, error) {
	if r.addr.IsNull() {
		return 0, ErrNullBaseAddress
	}
	if len(offsets) == 0 {
		return 0, ErrEmptyOffsetChain
	}

	base := r.Pointer()
	last := len(offsets) - 1
	for i, offset := range offsets[:last] {
		if base.IsNull() {
			return 0, fmt.Errorf("%w: level %d", ErrInvalidIntermediatePointer, i)
		}
		base = base.Add(offset).Unchecked().Pointer()
	}
	if base.IsNull() {
		return 0, fmt.Errorf("%w: level %d", ErrInvalidIntermediatePointer, last)
	}

	return base.Add(offsets[last]), nil
}

// StoreChain writes v at the end of the pointer chain described by
// offsets. It returns false without writing when the chain cannot be
// resolved.
func StoreChain[T any](r Raw, offsets []uintptr, v T) bool {
	target, err := ResolveChain(r, offsets)
	if err != nil {
		return false
	}
	Store(target.Unchecked(), v)
	return true
}

// LoadChain reads a T at the end of the pointer chain described by offsets.
func LoadChain[T any](r Raw, offsets []uintptr) (T, bool) {
	var zero T
	target, err := ResolveChain(r, offsets)
	if err != nil {
		return zero, false
	}
	return Load[T](target.Unchecked()), true
}
