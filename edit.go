package rawmem

import (
	"github.com/rs/zerolog"
)

// Edit is a reversible modification of memory. Apply writes the
// replacement content and Undo restores the content captured when the
// edit was created. Both may be called any number of times in any order.
type Edit interface {
	Apply()
	Undo()
}

// Patch replaces a run of bytes.
type Patch struct {
	raw         Raw
	replacement []byte
	original    []byte
	applied     bool
}

// NewPatch captures len(replacement) bytes at r and returns a patch that
// swaps them with replacement. Nothing is written until Apply.
func NewPatch(r Raw, replacement []byte) *Patch {
	return &Patch{
		raw:         r,
		replacement: append([]byte(nil), replacement...),
		original:    r.Read(uintptr(len(replacement))),
	}
}

// Apply writes the replacement bytes.
func (p *Patch) Apply() {
	p.raw.Write(p.replacement)
	p.applied = true
}

// Undo writes back the bytes captured by NewPatch.
func (p *Patch) Undo() {
	p.raw.Write(p.original)
	p.applied = false
}

// Applied reports whether the last transition was Apply.
func (p *Patch) Applied() bool { return p.applied }

// Address returns the patched address.
func (p *Patch) Address() Address { return p.raw.Address() }

// Original returns a copy of the bytes captured at construction.
func (p *Patch) Original() []byte { return append([]byte(nil), p.original...) }

// Replacement returns a copy of the bytes written by Apply.
func (p *Patch) Replacement() []byte { return append([]byte(nil), p.replacement...) }

// ValueEdit replaces a single value of type T. T must be plain data.
type ValueEdit[T any] struct {
	raw         Raw
	replacement T
	original    T
	applied     bool
}

// NewValueEdit captures the T stored at r and returns an edit that swaps
// it with v.
func NewValueEdit[T any](r Raw, v T) *ValueEdit[T] {
	return &ValueEdit[T]{
		raw:         r,
		replacement: v,
		original:    Load[T](r),
	}
}

// Apply writes the replacement value.
func (e *ValueEdit[T]) Apply() {
	Store(e.raw, e.replacement)
	e.applied = true
}

// Undo writes back the value captured by NewValueEdit.
func (e *ValueEdit[T]) Undo() {
	Store(e.raw, e.original)
	e.applied = false
}

// Applied reports whether the last transition was Apply.
func (e *ValueEdit[T]) Applied() bool { return e.applied }

// Address returns the edited address.
func (e *ValueEdit[T]) Address() Address { return e.raw.Address() }

// Original returns the value captured at construction.
func (e *ValueEdit[T]) Original() T { return e.original }

// EditSet drives an ordered collection of edits of any kind as one unit.
type EditSet struct {
	edits  []Edit
	logger zerolog.Logger
}

// NewEditSet returns an empty set that reports transitions to logger.
func NewEditSet(logger zerolog.Logger) *EditSet {
	return &EditSet{logger: logger}
}

// Add appends edits to the set.
func (s *EditSet) Add(edits ...Edit) {
	s.edits = append(s.edits, edits...)
}

// Len returns the number of edits in the set.
func (s *EditSet) Len() int {
	return len(s.edits)
}

// ApplyAll applies every edit in insertion order.
func (s *EditSet) ApplyAll() {
	for i, e := range s.edits {
		e.Apply()
		s.logger.Debug().Int("index", i).Stringer("address", editAddress(e)).Msg("edit applied")
	}
}

// UndoAll undoes every edit in reverse insertion order, so overlapping
// edits unwind to the content that preceded the first of them.
func (s *EditSet) UndoAll() {
	for i := len(s.edits) - 1; i >= 0; i-- {
		s.edits[i].Undo()
		s.logger.Debug().Int("index", i).Stringer("address", editAddress(s.edits[i])).Msg("edit undone")
	}
}

type addressed interface {
	Address() Address
}

func editAddress(e Edit) Address {
	if a, ok := e.(addressed); ok {
		return a.Address()
	}
	return 0
}
