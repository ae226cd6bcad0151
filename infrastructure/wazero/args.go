package wazero

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/errors"
)

// Args reads the parameters of one host call off the wazero value stack, in
// declaration order. Each scalar takes one word, each view two (len, ptr).
//
// An Args is only valid during the call it was created for.
type Args struct {
	stack  []uint64
	pos    int
	mod    api.Module
	memory string
}

// NewArgs returns an Args over stack. memory names the guest export views
// are reconstructed against; an empty name selects the default memory.
func NewArgs(mod api.Module, stack []uint64, memory string) *Args {
	return &Args{stack: stack, mod: mod, memory: memory}
}

// Words returns the number of wire words of the call.
func (a *Args) Words() int {
	return len(a.stack)
}

// Remaining returns the number of wire words not read yet.
func (a *Args) Remaining() int {
	return len(a.stack) - a.pos
}

// Module returns the calling guest module.
func (a *Args) Module() api.Module {
	return a.mod
}

// Memory returns the guest memory views are reconstructed against.
// It panics when the guest exports no such memory.
func (a *Args) Memory() abi.Memory {
	mem := GuestMemory(a.mod, a.memory)
	if mem == nil {
		panic(errors.New(errors.PhaseLift, errors.KindNotFound).
			Detail("guest exports no memory %q", a.memory).
			Build())
	}
	return mem
}

// Word returns the next raw wire word.
func (a *Args) Word() uint64 {
	if a.pos >= len(a.stack) {
		panic(errors.New(errors.PhaseLift, errors.KindArity).
			Detail("read of word %d past the %d received", a.pos, len(a.stack)).
			Build())
	}
	w := a.stack[a.pos]
	a.pos++
	return w
}

// StringView lifts the next two words as a string view.
func (a *Args) StringView() abi.GuestStringView {
	n := api.DecodeU32(a.Word())
	p := api.DecodeU32(a.Word())
	return abi.StrABI.IntoHost(abi.StringViewOf(n, p))
}

// MemoryView lifts the next two words as a memory view.
func (a *Args) MemoryView() abi.GuestMemoryView {
	n := api.DecodeU32(a.Word())
	p := api.DecodeU32(a.Word())
	return abi.BytesABI.IntoHost(abi.MemoryViewOf(n, p))
}

// Str lifts the next view and reconstructs it against guest memory. The
// result aliases guest memory; clone it to keep it past the call.
func (a *Args) Str() string {
	return a.StringView().AsString(a.Memory())
}

// Bytes lifts the next view and reconstructs it against guest memory. The
// result aliases guest memory; copy it to keep it past the call.
func (a *Args) Bytes() []byte {
	return a.MemoryView().AsSlice(a.Memory())
}

// Lift reads the next word and converts it with c.
//
//	n := wazero.Lift(args, abi.U16) // uint16
func Lift[A abi.Word, H any](a *Args, c abi.HostLifter[A, H]) H {
	return c.IntoHost(Decode[A](a.Word()))
}

// Decode reads a wire word from its wazero stack slot. 32-bit words live in
// the low half of the slot.
func Decode[A abi.Word](w uint64) A {
	return A(w)
}

// Encode stores a wire word in a wazero stack slot.
func Encode[A abi.Word](a A) uint64 {
	switch v := any(a).(type) {
	case int32:
		return api.EncodeI32(v)
	case uint32:
		return api.EncodeU32(v)
	case int64:
		return api.EncodeI64(v)
	default:
		return uint64(a)
	}
}

// Lower converts a guest value with p and encodes the wire word, the way a
// guest would push it.
func Lower[G any, A abi.Word](p abi.Lowerer[G, A], g G) uint64 {
	return Encode(p.IntoABI(g))
}

// ViewWords returns the two stack words of a view.
func ViewWords(length, ptr uint32) []uint64 {
	return []uint64{api.EncodeU32(length), api.EncodeU32(ptr)}
}
