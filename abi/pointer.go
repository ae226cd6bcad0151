package abi

import "unsafe"

// ConstPtr is the address of a read-only guest value of type T.
type ConstPtr[T Integer] uintptr

// MutPtr is the address of a mutable guest value of type T.
type MutPtr[T Integer] uintptr

// ConstPtrOf returns the address of *p. The garbage collector does not
// track the result; p must stay reachable until the call completes.
func ConstPtrOf[T Integer](p *T) ConstPtr[T] {
	return ConstPtr[T](uintptr(unsafe.Pointer(p)))
}

// MutPtrOf returns the address of *p. The garbage collector does not
// track the result; p must stay reachable until the call completes.
func MutPtrOf[T Integer](p *T) MutPtr[T] {
	return MutPtr[T](uintptr(unsafe.Pointer(p)))
}

// Addr returns the raw address.
func (p ConstPtr[T]) Addr() uintptr { return uintptr(p) }

// Addr returns the raw address.
func (p MutPtr[T]) Addr() uintptr { return uintptr(p) }

// Const drops write access.
func (p MutPtr[T]) Const() ConstPtr[T] { return ConstPtr[T](p) }
