package rawmem

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRead(t *testing.T) {
	m := mapBytes(t, []byte{0x78, 0x56, 0x34, 0x12, 0xff})
	r := m.Address().Unchecked()

	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, r.Read(4))
	assert.Equal(t, []byte{}, r.Read(0))

	// Read returns a copy.
	got := r.Read(1)
	got[0] = 0
	assert.Equal(t, byte(0x78), m.Bytes()[0])
}

func TestRawWrite(t *testing.T) {
	m := mapBytes(t, []byte{0xef, 0xbe, 0xad, 0xde, 0x11})
	m.Address().Unchecked().Write([]byte{0x78, 0x56, 0x34, 0x12})

	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12, 0x11}, m.Bytes())
}

func TestRawCopyFrom(t *testing.T) {
	m := mapBytes(t, []byte{0xef, 0xbe, 0xad, 0xde, 0x78, 0x56, 0x34, 0x12})
	m.Address().Unchecked().CopyFrom(m.Address().Add(4), 4)

	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, m.Bytes()[:4])
}

func TestRawFill(t *testing.T) {
	m := mapBytes(t, []byte{0xef, 0xbe, 0xad, 0xde})
	m.Address().Unchecked().Fill(0x90, 3)

	assert.Equal(t, []byte{0x90, 0x90, 0x90, 0xde}, m.Bytes())
}

func TestRawPointer(t *testing.T) {
	m := mapZeroed(t, 16)
	*at[uintptr](m, 0) = 0xdeadbeef

	assert.Equal(t, Address(0xdeadbeef), m.Address().Unchecked().Pointer())
}

func TestStoreLoad(t *testing.T) {
	m := mapZeroed(t, 8)
	r := m.Address().Unchecked()
	buf := m.Bytes()

	Store(r, uint64(0x12345678deadbeef))
	assert.Equal(t, uint64(0x12345678deadbeef), binary.NativeEndian.Uint64(buf))
	assert.Equal(t, uint64(0x12345678deadbeef), Load[uint64](r))

	Store(r, uint8(0x90))
	assert.Equal(t, byte(0x90), buf[0])
	assert.Equal(t, uint8(0x90), Load[uint8](r))

	Store(r, uint16(0xbaad))
	assert.Equal(t, uint16(0xbaad), binary.NativeEndian.Uint16(buf))
	assert.Equal(t, uint16(0xbaad), Load[uint16](r))

	Store(r, uint32(0xdeadbeef))
	assert.Equal(t, uint32(0xdeadbeef), Load[uint32](r))

	Store(r, 1.5)
	assert.Equal(t, 1.5, Load[float64](r))
}

type throughTarget struct {
	a uint8
	b uint16
	c uint32
	d uint64
}

func TestThroughPointer(t *testing.T) {
	require.Equal(t, uintptr(0), unsafe.Offsetof(throughTarget{}.a))
	require.Equal(t, uintptr(2), unsafe.Offsetof(throughTarget{}.b))
	require.Equal(t, uintptr(4), unsafe.Offsetof(throughTarget{}.c))
	require.Equal(t, uintptr(8), unsafe.Offsetof(throughTarget{}.d))

	m := mapZeroed(t, 64)
	obj := at[throughTarget](m, 0)
	*obj = throughTarget{a: 0x33, b: 0x9090, c: 0xbaadf00d, d: 0xdeadbeefdeadbeef}

	slot := m.Address().Add(32)
	*at[uintptr](m, 32) = uintptr(m.Address())
	r := slot.Unchecked()

	t.Run("store", func(t *testing.T) {
		assert.True(t, StoreThrough(r, unsafe.Offsetof(obj.a), uint8(0x88)))
		assert.Equal(t, uint8(0x88), obj.a)

		assert.True(t, StoreThrough(r, unsafe.Offsetof(obj.b), uint16(0xefef)))
		assert.Equal(t, uint16(0xefef), obj.b)

		assert.True(t, StoreThrough(r, unsafe.Offsetof(obj.c), uint32(0x45454545)))
		assert.Equal(t, uint32(0x45454545), obj.c)

		assert.True(t, StoreThrough(r, unsafe.Offsetof(obj.d), uint64(0x1234567887654321)))
		assert.Equal(t, uint64(0x1234567887654321), obj.d)
	})

	t.Run("load", func(t *testing.T) {
		a, ok := LoadThrough[uint8](r, unsafe.Offsetof(obj.a))
		assert.True(t, ok)
		assert.Equal(t, obj.a, a)

		b, ok := LoadThrough[uint16](r, unsafe.Offsetof(obj.b))
		assert.True(t, ok)
		assert.Equal(t, obj.b, b)

		c, ok := LoadThrough[uint32](r, unsafe.Offsetof(obj.c))
		assert.True(t, ok)
		assert.Equal(t, obj.c, c)

		d, ok := LoadThrough[uint64](r, unsafe.Offsetof(obj.d))
		assert.True(t, ok)
		assert.Equal(t, obj.d, d)
	})

	t.Run("null address", func(t *testing.T) {
		null := Address(0).Unchecked()
		assert.False(t, StoreThrough(null, 0, uint8(0x88)))

		v, ok := LoadThrough[uint8](null, 0)
		assert.False(t, ok)
		assert.Zero(t, v)
	})
}
