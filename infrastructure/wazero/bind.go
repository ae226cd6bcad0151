package wazero

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/errors"
)

// lifter reads one parameter of a given Kind from the stack.
type lifter func(a *Args) reflect.Value

func liftWith[A abi.Word, H any](c abi.HostLifter[A, H]) lifter {
	return func(a *Args) reflect.Value {
		return reflect.ValueOf(Lift(a, c))
	}
}

var lifters = map[abi.Kind]lifter{
	abi.KindU8:  liftWith(abi.U8),
	abi.KindU16: liftWith(abi.U16),
	abi.KindU32: liftWith(abi.U32),
	abi.KindU64: liftWith(abi.U64),
	abi.KindI8:  liftWith(abi.I8),
	abi.KindI16: liftWith(abi.I16),
	abi.KindI32: liftWith(abi.I32),
	abi.KindI64: liftWith(abi.I64),

	abi.KindConstPtrU8:  liftWith(abi.ConstPtrU8),
	abi.KindConstPtrU16: liftWith(abi.ConstPtrU16),
	abi.KindConstPtrU32: liftWith(abi.ConstPtrU32),
	abi.KindConstPtrU64: liftWith(abi.ConstPtrU64),
	abi.KindConstPtrI8:  liftWith(abi.ConstPtrI8),
	abi.KindConstPtrI16: liftWith(abi.ConstPtrI16),
	abi.KindConstPtrI32: liftWith(abi.ConstPtrI32),
	abi.KindConstPtrI64: liftWith(abi.ConstPtrI64),

	abi.KindMutPtrU8:  liftWith(abi.MutPtrU8),
	abi.KindMutPtrU16: liftWith(abi.MutPtrU16),
	abi.KindMutPtrU32: liftWith(abi.MutPtrU32),
	abi.KindMutPtrU64: liftWith(abi.MutPtrU64),
	abi.KindMutPtrI8:  liftWith(abi.MutPtrI8),
	abi.KindMutPtrI16: liftWith(abi.MutPtrI16),
	abi.KindMutPtrI32: liftWith(abi.MutPtrI32),
	abi.KindMutPtrI64: liftWith(abi.MutPtrI64),

	abi.KindString: func(a *Args) reflect.Value { return reflect.ValueOf(a.Str()) },
	abi.KindBytes:  func(a *Args) reflect.Value { return reflect.ValueOf(a.Bytes()) },
}

// Bind builds an Import that lifts every parameter of fn and calls it.
// fn must be boundary-eligible: see abi.SignatureOf. Strings and byte slices
// passed to fn alias guest memory and must not be retained.
func Bind(name string, fn any) (Import, error) {
	sig, err := abi.SignatureOf(fn)
	if err != nil {
		return Import{}, err
	}

	params := sig.Params()
	lift := make([]lifter, len(params))
	for i, k := range params {
		lift[i] = lifters[k]
	}

	target := reflect.ValueOf(fn)
	if target.IsNil() {
		return Import{}, fmt.Errorf("import %q: nil function", name)
	}
	return Import{
		Name:      name,
		Signature: sig,
		Handler: func(_ context.Context, args *Args) {
			in := make([]reflect.Value, len(lift))
			for i, l := range lift {
				in[i] = l(args)
			}
			target.Call(in)
		},
	}, nil
}

// MustBind is like Bind but panics on error.
func MustBind(name string, fn any) Import {
	imp, err := Bind(name, fn)
	if err != nil {
		panic(err)
	}
	return imp
}

// Value lifts the next parameter as kind k. Scalars keep their table type;
// views are reconstructed and alias guest memory.
func (a *Args) Value(k abi.Kind) any {
	l, ok := lifters[k]
	if !ok {
		panic(errors.Unsupported(errors.PhaseLift, k.String()))
	}
	return l(a).Interface()
}
