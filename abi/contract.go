package abi

// Word is the set of raw values that physically cross the boundary.
// The wire is a 32-bit-word ABI; 64-bit integers are the only wider values.
type Word interface {
	uint32 | int32 | uint64 | int64
}

// Integer is the set of primitive integers in the conversion surface.
type Integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// SubWord is the set of integers narrower than the 32-bit wire word.
type SubWord interface {
	uint8 | uint16 | int8 | int16
}

// Word32 is the set of 32-bit wire words sub-word integers widen into.
type Word32 interface {
	uint32 | int32
}

// Lowerer converts a guest value of type G into its wire form A.
type Lowerer[G, A any] interface {
	IntoABI(g G) A
}

// Parameter is a guest value that can cross the boundary and be restored.
// For every representable g, FromABI(IntoABI(g)) == g bit for bit.
type Parameter[G, A any] interface {
	Lowerer[G, A]
	FromABI(a A) G
}

// HostLifter converts a wire value A into the host's logical type H.
type HostLifter[A, H any] interface {
	IntoHost(a A) H
}

// ABI mediates between a wire value A and its logical host type H.
type ABI[A, H any] interface {
	HostLifter[A, H]
	FromHost(h H) A
}

// Identity is the conversion for types whose wire form is the type itself.
type Identity[T Word] struct{}

func (Identity[T]) IntoABI(g T) T  { return g }
func (Identity[T]) FromABI(a T) T  { return a }
func (Identity[T]) IntoHost(a T) T { return a }
func (Identity[T]) FromHost(h T) T { return h }

// Widen carries a sub-word integer G in the 32-bit wire word A.
// Signed values are sign-extended on the way out and truncated on the way
// back, which restores every value of G exactly.
type Widen[G SubWord, A Word32] struct{}

func (Widen[G, A]) IntoABI(g G) A  { return A(g) }
func (Widen[G, A]) FromABI(a A) G  { return G(a) }
func (Widen[G, A]) IntoHost(a A) G { return G(a) }
func (Widen[G, A]) FromHost(h G) A { return A(h) }

// Address carries a guest pointer P as a 32-bit address, casting through
// uintptr. Addresses that do not fit in 32 bits abort with ErrPtrOverflow.
type Address[P ~uintptr] struct{}

func (Address[P]) IntoABI(p P) uint32  { return narrowAddr(uintptr(p)) }
func (Address[P]) FromABI(a uint32) P  { return P(uintptr(a)) }
func (Address[P]) IntoHost(a uint32) P { return P(uintptr(a)) }
func (Address[P]) FromHost(h P) uint32 { return narrowAddr(uintptr(h)) }
