// Package abi marshals function arguments across the boundary between a
// wasm32 guest and its native host.
//
// Two contracts split every conversion. Parameter takes a guest value to the
// raw wire word that crosses the boundary and back; ABI takes that wire word
// to the value the host works with and back. For every integer and pointer
// in the table the host type is the guest type, so ABI is the identity
// except for the width of the word:
//
//	32/64-bit integers     wire = the integer itself
//	8/16-bit integers      wire = 32-bit word of matching signedness
//	ConstPtr[T], MutPtr[T] wire = uint32 address, through uintptr
//
// The table lives in params.yaml and is expanded by go generate into
// params_gen.go and signature_gen.go, so both directions of every row come
// from the same source.
//
// Strings and byte slices cross as views: a (len, ptr) pair of 32-bit words
// referring into guest linear memory. A view is produced by the guest and
// reconstructed by the host against a Memory handle; the host can never
// produce one, which is why StringParam and BytesParam implement only
// Lowerer and not Parameter.
//
//	// guest
//	v := abi.Str.IntoABI("hello")
//
//	// host, inside the import handler, during the same call
//	s := v.AsString(mod.Memory())
//
// A function whose parameters all come from the table is boundary-eligible.
// The generic types Func1 through Func8 state that at compile time:
//
//	var recv abi.Func2[uint8, string] = func(b uint8, s string) {}
//	sig := abi.Describe2(recv) // func(uint8, string), wire i32 i32 i32
//
// # Failure model
//
// Boundary violations are not errors a caller can handle: a length or
// address that does not fit 32 bits, a range that overflows, or a range past
// the end of memory aborts the call with a panic carrying an *errors.Error
// that matches ErrLenOverflow, ErrPtrOverflow, ErrRangeOverflow or
// ErrOutOfBounds. No partial value is ever returned.
//
// # Concurrency
//
// Every conversion is a pure, synchronous value transformation. The only
// shared resource is guest memory, read through the caller's handle and
// never retained past one reconstruction; the runtime must guarantee that
// nobody writes the range while the host uses the result.
package abi

//go:generate go run ../internal/tools/genparams --table params.yaml --params params_gen.go --signature signature_gen.go
