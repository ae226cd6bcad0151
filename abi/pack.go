package abi

// PtrHighBits is the shift of the pointer inside a packed view.
const PtrHighBits = 32

// Pack encodes the view as a single 64-bit word so it can cross as one i64.
// The pointer is stored in the high 32 bits, the length in the low 32 bits.
func (v GuestStringView) Pack() uint64 {
	return packPtrLen(v.ptr, v.len)
}

// Pack encodes the view as a single 64-bit word so it can cross as one i64.
// The pointer is stored in the high 32 bits, the length in the low 32 bits.
func (v GuestMemoryView) Pack() uint64 {
	return packPtrLen(v.ptr, v.len)
}

// UnpackStringView decodes a view produced by GuestStringView.Pack.
func UnpackStringView(packed uint64) GuestStringView {
	ptr, length := unpackPtrLen(packed)
	return GuestStringView{len: length, ptr: ptr}
}

// UnpackMemoryView decodes a view produced by GuestMemoryView.Pack.
func UnpackMemoryView(packed uint64) GuestMemoryView {
	ptr, length := unpackPtrLen(packed)
	return GuestMemoryView{len: length, ptr: ptr}
}

func packPtrLen(ptr, length uint32) uint64 {
	return (uint64(ptr) << PtrHighBits) | uint64(length)
}

func unpackPtrLen(packed uint64) (ptr, length uint32) {
	ptr = uint32(packed >> PtrHighBits)
	length = uint32(packed)
	return ptr, length
}
