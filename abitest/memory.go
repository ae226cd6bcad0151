package abitest

import (
	"math"

	"github.com/ruwak-dev/ruwak/abi"
)

// Memory is an in-process linear memory for exercising view reconstruction
// without a runtime. Address 0 is never handed out by Place.
type Memory struct {
	buf  []byte
	next uint32
}

var _ abi.Memory = (*Memory)(nil)

// NewMemory returns a zeroed memory of size bytes.
func NewMemory(size uint32) *Memory {
	return &Memory{buf: make([]byte, size), next: 8}
}

// Size returns the memory size in bytes.
func (m *Memory) Size() uint32 {
	return uint32(len(m.buf))
}

// Read returns a view of [offset, offset+byteCount) or false when the range
// is not inside the memory.
func (m *Memory) Read(offset, byteCount uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(byteCount)
	if end > uint64(len(m.buf)) {
		return nil, false
	}
	return m.buf[offset:end:end], true
}

// Write copies b to offset.
func (m *Memory) Write(offset uint32, b []byte) bool {
	end := uint64(offset) + uint64(len(b))
	if end > uint64(len(m.buf)) {
		return false
	}
	copy(m.buf[offset:], b)
	return true
}

// Place copies b to the next free 8-aligned address and returns it.
// It panics when the memory is full.
func (m *Memory) Place(b []byte) uint32 {
	addr := m.next
	if !m.Write(addr, b) {
		panic("abitest: memory full")
	}
	next := (uint64(addr) + uint64(len(b)) + 7) &^ 7
	if next > math.MaxUint32 {
		next = math.MaxUint32
	}
	m.next = uint32(next)
	return addr
}

// PlaceString is Place for a string.
func (m *Memory) PlaceString(s string) uint32 {
	return m.Place([]byte(s))
}

// Bytes returns the backing buffer.
func (m *Memory) Bytes() []byte {
	return m.buf
}
