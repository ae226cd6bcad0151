package abi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/internal/testutil"
)

// roundTrip checks both directions of a codec for every value.
func roundTrip[G comparable, A comparable](t *testing.T, p abi.Parameter[G, A], h abi.ABI[A, G], values ...G) {
	t.Helper()
	for _, v := range values {
		wire := p.IntoABI(v)
		assert.Equal(t, v, p.FromABI(wire), "guest round trip of %v", v)
		assert.Equal(t, v, h.IntoHost(wire), "host sees %v", v)
		assert.Equal(t, wire, h.FromHost(v), "host lowers %v", v)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	roundTrip(t, abi.U8, abi.U8, 0, 1, 42, math.MaxUint8)
	roundTrip(t, abi.U16, abi.U16, 0, 1, 42, math.MaxUint16)
	roundTrip(t, abi.U32, abi.U32, 0, 1, 42, math.MaxUint32)
	roundTrip(t, abi.U64, abi.U64, 0, 1, 42, math.MaxUint64)
	roundTrip(t, abi.I8, abi.I8, 0, -1, 42, math.MinInt8, math.MaxInt8)
	roundTrip(t, abi.I16, abi.I16, 0, -1, 42, math.MinInt16, math.MaxInt16)
	roundTrip(t, abi.I32, abi.I32, 0, -1, 42, math.MinInt32, math.MaxInt32)
	roundTrip(t, abi.I64, abi.I64, 0, -1, 42, math.MinInt64, math.MaxInt64)
}

func TestWidening(t *testing.T) {
	assert.Equal(t, uint32(250), abi.U8.IntoABI(250))
	assert.Equal(t, uint32(math.MaxUint16), abi.U16.IntoABI(math.MaxUint16))

	// Signed sub-word values are sign-extended into the 32-bit word.
	assert.Equal(t, int32(-1), abi.I8.IntoABI(-1))
	assert.Equal(t, int32(math.MinInt16), abi.I16.IntoABI(math.MinInt16))

	// The way back truncates to the guest width.
	assert.Equal(t, uint8(0x34), abi.U8.FromABI(0x1234))
	assert.Equal(t, int8(-1), abi.I8.IntoHost(0xFF))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, uint32(42), abi.U32.IntoABI(42))
	assert.Equal(t, int64(math.MinInt64), abi.I64.IntoABI(math.MinInt64))
	assert.Equal(t, uint64(math.MaxUint64), abi.U64.IntoHost(math.MaxUint64))
}

// addressRoundTrip checks a pointer codec at the edges of the 32-bit
// address space.
func addressRoundTrip[P ~uintptr](t *testing.T, c abi.Address[P]) {
	t.Helper()
	roundTrip(t, c, c, P(0), P(8), P(0x1000), P(0xFFFFFFF8), P(math.MaxUint32))
	assert.Equal(t, uint32(0x1000), c.IntoABI(P(0x1000)))
	assert.Equal(t, P(0x1000), c.IntoHost(0x1000))
}

func TestPointerRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"ConstPtrU8", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrU8) }},
		{"ConstPtrU16", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrU16) }},
		{"ConstPtrU32", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrU32) }},
		{"ConstPtrU64", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrU64) }},
		{"ConstPtrI8", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrI8) }},
		{"ConstPtrI16", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrI16) }},
		{"ConstPtrI32", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrI32) }},
		{"ConstPtrI64", func(t *testing.T) { addressRoundTrip(t, abi.ConstPtrI64) }},
		{"MutPtrU8", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrU8) }},
		{"MutPtrU16", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrU16) }},
		{"MutPtrU32", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrU32) }},
		{"MutPtrU64", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrU64) }},
		{"MutPtrI8", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrI8) }},
		{"MutPtrI16", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrI16) }},
		{"MutPtrI32", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrI32) }},
		{"MutPtrI64", func(t *testing.T) { addressRoundTrip(t, abi.MutPtrI64) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}

	assert.Equal(t, uintptr(0x1000), abi.ConstPtrU32.IntoHost(0x1000).Addr())
}

func TestPointerOverflow(t *testing.T) {
	if ^uintptr(0) == math.MaxUint32 {
		t.Skip("addresses always fit on 32-bit hosts")
	}

	var wide uint64 = math.MaxUint32 + 1
	testutil.RequireFault(t, abi.ErrPtrOverflow, func() {
		abi.ConstPtrU8.IntoABI(abi.ConstPtr[uint8](wide))
	})
	testutil.RequireFault(t, abi.ErrPtrOverflow, func() {
		abi.MutPtrI64.FromHost(abi.MutPtr[int64](wide))
	})
}

func TestPointerOf(t *testing.T) {
	x := int32(7)
	c := abi.ConstPtrOf(&x)
	m := abi.MutPtrOf(&x)

	assert.NotZero(t, c.Addr())
	assert.Equal(t, c.Addr(), m.Addr())
	assert.Equal(t, c, m.Const())
}

func TestViewDirectionality(t *testing.T) {
	// Views can be lowered by the guest and lifted by the host, never the
	// other way round.
	var str any = abi.Str
	var bytes any = abi.Bytes
	var strABI any = abi.StrABI
	var bytesABI any = abi.BytesABI

	_, ok := str.(abi.Lowerer[string, abi.GuestStringView])
	assert.True(t, ok)
	_, ok = str.(abi.Parameter[string, abi.GuestStringView])
	assert.False(t, ok, "a string view cannot be turned back into a guest string")

	_, ok = bytes.(abi.Lowerer[[]byte, abi.GuestMemoryView])
	assert.True(t, ok)
	_, ok = bytes.(abi.Parameter[[]byte, abi.GuestMemoryView])
	assert.False(t, ok)

	_, ok = strABI.(abi.HostLifter[abi.GuestStringView, abi.GuestStringView])
	assert.True(t, ok)
	_, ok = strABI.(abi.ABI[abi.GuestStringView, abi.GuestStringView])
	assert.False(t, ok, "the host cannot originate a string view")

	_, ok = bytesABI.(abi.HostLifter[abi.GuestMemoryView, abi.GuestMemoryView])
	assert.True(t, ok)
	_, ok = bytesABI.(abi.ABI[abi.GuestMemoryView, abi.GuestMemoryView])
	assert.False(t, ok)
}

func TestViewLiftIsIdentity(t *testing.T) {
	sv := abi.StringViewOf(5, 64)
	mv := abi.MemoryViewOf(3, 128)

	assert.Equal(t, sv, abi.StrABI.IntoHost(sv))
	assert.Equal(t, mv, abi.BytesABI.IntoHost(mv))
}
