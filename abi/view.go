package abi

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/ruwak-dev/ruwak/errors"
)

// ViewSize is the wire size of a view: two 32-bit words, len first.
const ViewSize = 8

// Memory is the handle to guest linear memory a host reconstructs views
// against. wazero's api.Memory satisfies it.
//
// The handle must stay valid, and the bytes it returns must not be written
// by anyone, for the duration of a single reconstruction and of the use of
// its result. Enforcing that is the runtime's job, not this package's.
type Memory interface {
	// Size returns the current size of the memory in bytes.
	Size() uint32
	// Read returns byteCount bytes starting at offset without copying.
	Read(offset, byteCount uint32) ([]byte, bool)
}

// GuestStringView is an FFI-safe reference to a string owned by the guest.
// It owns nothing and is valid only during the call that produced it.
type GuestStringView struct {
	len uint32
	ptr uint32
}

// GuestMemoryView is an FFI-safe reference to a byte slice owned by the guest.
// It owns nothing and is valid only during the call that produced it.
type GuestMemoryView struct {
	len uint32
	ptr uint32
}

// NewGuestStringView records the length and address of s.
// It panics with ErrLenOverflow or ErrPtrOverflow when either does not fit
// in 32 bits, which is always the case for host-heap strings on 64-bit hosts.
func NewGuestStringView(s string) GuestStringView {
	n := narrowLen(len(s))
	p := narrowAddr(uintptr(unsafe.Pointer(unsafe.StringData(s))))
	return GuestStringView{len: n, ptr: p}
}

// NewGuestMemoryView records the length and address of b.
// It panics with ErrLenOverflow or ErrPtrOverflow when either does not fit
// in 32 bits.
func NewGuestMemoryView(b []byte) GuestMemoryView {
	n := narrowLen(len(b))
	p := narrowAddr(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
	return GuestMemoryView{len: n, ptr: p}
}

// StringViewOf builds a view from the two wire words the guest sent.
func StringViewOf(length, ptr uint32) GuestStringView {
	return GuestStringView{len: length, ptr: ptr}
}

// MemoryViewOf builds a view from the two wire words the guest sent.
func MemoryViewOf(length, ptr uint32) GuestMemoryView {
	return GuestMemoryView{len: length, ptr: ptr}
}

// Len returns the byte length of the referenced string.
func (v GuestStringView) Len() uint32 { return v.len }

// Ptr returns the guest address of the first byte.
func (v GuestStringView) Ptr() uint32 { return v.ptr }

// Len returns the byte length of the referenced slice.
func (v GuestMemoryView) Len() uint32 { return v.len }

// Ptr returns the guest address of the first byte.
func (v GuestMemoryView) Ptr() uint32 { return v.ptr }

// AsString returns the referenced string.
//
// The result aliases guest memory: nothing is copied and the bytes are not
// checked for well-formed UTF-8. The guest is trusted to have sent valid
// text, and the caller must not retain the string past the current call or
// let the guest write to the range while it is in use. Use strings.Clone to
// keep it.
//
// It panics with ErrRangeOverflow or ErrOutOfBounds when [ptr, ptr+len) is
// not inside mem.
func (v GuestStringView) AsString(mem Memory) string {
	b := reconstruct(mem, v.ptr, v.len)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// AsSlice returns the referenced bytes. The result aliases guest memory and
// must not be retained past the current call.
//
// It panics with ErrRangeOverflow or ErrOutOfBounds when [ptr, ptr+len) is
// not inside mem.
func (v GuestMemoryView) AsSlice(mem Memory) []byte {
	return reconstruct(mem, v.ptr, v.len)
}

// reconstruct fetches [ptr, ptr+n) from mem. The end is computed in 64 bits
// so that a sum past 2^32 is reported instead of wrapping.
func reconstruct(mem Memory, ptr, n uint32) []byte {
	end := uint64(ptr) + uint64(n)
	if end > math.MaxUint32 {
		fault(ErrRangeOverflow, map[string]any{"ptr": ptr, "len": n})
	}

	size := mem.Size()
	if end > uint64(size) {
		fault(ErrOutOfBounds, map[string]any{"ptr": ptr, "len": n, "size": size})
	}

	b, ok := mem.Read(ptr, n)
	if !ok || uint64(len(b)) != uint64(n) {
		fault(ErrOutOfBounds, map[string]any{"ptr": ptr, "len": n, "size": size})
	}
	return b
}

// AppendWire appends the 8-byte wire layout of v to b.
func (v GuestStringView) AppendWire(b []byte) []byte {
	return appendWire(b, v.len, v.ptr)
}

// AppendWire appends the 8-byte wire layout of v to b.
func (v GuestMemoryView) AppendWire(b []byte) []byte {
	return appendWire(b, v.len, v.ptr)
}

// ReadStringView decodes a view from its 8-byte wire layout.
func ReadStringView(b []byte) (GuestStringView, error) {
	n, p, err := readWire(b)
	return GuestStringView{len: n, ptr: p}, err
}

// ReadMemoryView decodes a view from its 8-byte wire layout.
func ReadMemoryView(b []byte) (GuestMemoryView, error) {
	n, p, err := readWire(b)
	return GuestMemoryView{len: n, ptr: p}, err
}

// LoadStringView reads a view the guest stored at addr, for views passed
// by reference. It faults like AsString when the 8 bytes are out of bounds.
func LoadStringView(mem Memory, addr uint32) GuestStringView {
	v, _ := ReadStringView(reconstruct(mem, addr, ViewSize))
	return v
}

// LoadMemoryView reads a view the guest stored at addr, for views passed
// by reference. It faults like AsSlice when the 8 bytes are out of bounds.
func LoadMemoryView(mem Memory, addr uint32) GuestMemoryView {
	v, _ := ReadMemoryView(reconstruct(mem, addr, ViewSize))
	return v
}

// The guest is wasm32, whose memory is little endian; so are all hosts
// wazero supports, which makes this the native order on both sides.
func appendWire(b []byte, length, ptr uint32) []byte {
	b = binary.LittleEndian.AppendUint32(b, length)
	return binary.LittleEndian.AppendUint32(b, ptr)
}

func readWire(b []byte) (length, ptr uint32, err error) {
	if len(b) < ViewSize {
		return 0, 0, errors.Invalid(errors.PhaseLift, "view needs %d bytes, got %d", ViewSize, len(b))
	}
	return binary.LittleEndian.Uint32(b[0:4]), binary.LittleEndian.Uint32(b[4:8]), nil
}

func (v GuestStringView) String() string {
	return fmt.Sprintf("GuestStringView{len: %d, ptr: %#x}", v.len, v.ptr)
}

func (v GuestMemoryView) String() string {
	return fmt.Sprintf("GuestMemoryView{len: %d, ptr: %#x}", v.len, v.ptr)
}
