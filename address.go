package rawmem

import "unsafe"

// Raw is the access capability for an Address. Every operation that
// dereferences memory hangs off Raw, so obtaining one via
// Address.Unchecked is the caller's statement that the memory is mapped,
// suitably aligned for the accessed type and alive for the duration of the
// call. None of that is verified here.
//
// Raw keeps no state besides the address and is safe to copy.
type Raw struct {
	addr Address
}

// Unchecked returns the raw access capability for a.
func (a Address) Unchecked() Raw {
	return Raw{addr: a}
}

// Address returns the address the capability refers to.
func (r Raw) Address() Address {
	return r.addr
}

func (r Raw) pointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(r.addr))
}

func (r Raw) bytes(n uintptr) []byte {
	return unsafe.Slice((*byte)(r.pointer()), n)
}

// Read returns a copy of the n bytes starting at the address.
func (r Raw) Read(n uintptr) []byte {
	out := make([]byte, n)
	if n == 0 {
		return out
	}
	copy(out, r.bytes(n))
	return out
}

// Write overwrites len(b) bytes starting at the address.
func (r Raw) Write(b []byte) {
	if len(b) == 0 {
		return
	}
	copy(r.bytes(uintptr(len(b))), b)
}

// CopyFrom copies n bytes from src into the address. The two ranges must
// not overlap.
func (r Raw) CopyFrom(src Address, n uintptr) {
	if n == 0 {
		return
	}
	copy(r.bytes(n), src.Unchecked().bytes(n))
}

// Fill writes n copies of v starting at the address.
func (r Raw) Fill(v byte, n uintptr) {
	if n == 0 {
		return
	}
	dst := r.bytes(n)
	for i := range dst {
		dst[i] = v
	}
}

// Pointer reads the pointer-sized value stored at the address.
func (r Raw) Pointer() Address {
	return Address(*(*uintptr)(r.pointer()))
}

// Store writes v at the address, reinterpreting the memory as a T.
// T must be plain data: values holding Go pointers must not be written to
// memory the garbage collector cannot see.
func Store[T any](r Raw, v T) {
	*(*T)(r.pointer()) = v
}

// Load reads a T from the address.
func Load[T any](r Raw) T {
	return *(*T)(r.pointer())
}

// StoreThrough treats the content at the address as a pointer p and
// writes v at p+offset. It returns false without touching memory when the
// address is null. Neither p nor p+offset is validated: a zero p is
// dereferenced as is. Use StoreChain with a single offset for a walk that
// rejects a zero p.
func StoreThrough[T any](r Raw, offset uintptr, v T) bool {
	if r.addr.IsNull() {
		return false
	}
	Store(r.Pointer().Add(offset).Unchecked(), v)
	return true
}

// LoadThrough is the reading counterpart of StoreThrough. Like it, the
// stored pointer is not checked; LoadChain is the checked variant.
func LoadThrough[T any](r Raw, offset uintptr) (T, bool) {
	var zero T
	if r.addr.IsNull() {
		return zero, false
	}
	return Load[T](r.Pointer().Add(offset).Unchecked()), true
}
