package abi

import (
	"reflect"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/ruwak-dev/ruwak/errors"
)

// Signature is the runtime description of a boundary-eligible function:
// between one and MaxArity parameters, each a table Kind, and no results.
//
// The FuncN markers prove eligibility at compile time; Signature carries the
// same fact to binding code that only sees values.
type Signature struct {
	params []Kind
}

// NewSignature validates params and returns their signature.
func NewSignature(params ...Kind) (Signature, error) {
	if len(params) == 0 || len(params) > MaxArity {
		return Signature{}, errors.New(errors.PhaseSignature, errors.KindArity).
			Detail("boundary functions take 1 to %d parameters, got %d", MaxArity, len(params)).
			Build()
	}
	for i, k := range params {
		if !k.Valid() {
			return Signature{}, errors.New(errors.PhaseSignature, errors.KindUnsupported).
				Detail("parameter %d has invalid kind %d", i, k).
				Build()
		}
	}
	return signatureOf(params...), nil
}

// SignatureOf inspects a function value. It fails unless fn is a func with
// no results whose parameters are all table types.
func SignatureOf(fn any) (Signature, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return Signature{}, errors.New(errors.PhaseSignature, errors.KindInvalid).
			GoType(typeName(t)).
			Detail("not a function").
			Build()
	}
	if t.IsVariadic() {
		return Signature{}, errors.New(errors.PhaseSignature, errors.KindUnsupported).
			GoType(t.String()).
			Detail("variadic functions cannot cross the boundary").
			Build()
	}
	if t.NumOut() != 0 {
		return Signature{}, errors.New(errors.PhaseSignature, errors.KindUnsupported).
			GoType(t.String()).
			Detail("results are not marshaled").
			Build()
	}

	params := make([]Kind, t.NumIn())
	for i := range params {
		k, ok := KindOf(t.In(i))
		if !ok {
			return Signature{}, errors.New(errors.PhaseSignature, errors.KindUnsupported).
				GoType(t.In(i).String()).
				Detail("parameter %d is not a boundary parameter", i).
				Build()
		}
		params[i] = k
	}
	return NewSignature(params...)
}

// MustSignatureOf is like SignatureOf but panics on error.
func MustSignatureOf(fn any) Signature {
	s, err := SignatureOf(fn)
	if err != nil {
		panic(err)
	}
	return s
}

// signatureOf builds a signature from kinds already known to be valid.
func signatureOf(params ...Kind) Signature {
	return Signature{params: params}
}

func kindFor[T Param]() Kind {
	k, _ := KindOf(reflect.TypeFor[T]())
	return k
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return len(s.params)
}

// Params returns the parameter kinds in order.
func (s Signature) Params() []Kind {
	return append([]Kind(nil), s.params...)
}

// WireTypes returns the flattened core wasm parameter list: one value per
// scalar, (i32 len, i32 ptr) per view.
func (s Signature) WireTypes() []api.ValueType {
	var out []api.ValueType
	for _, k := range s.params {
		out = append(out, k.WireTypes()...)
	}
	return out
}

// FlatCount returns the number of wire words a call carries.
func (s Signature) FlatCount() int {
	n := 0
	for _, k := range s.params {
		n += k.FlatCount()
	}
	return n
}

// Equal reports whether both signatures have the same parameters.
func (s Signature) Equal(o Signature) bool {
	if len(s.params) != len(o.params) {
		return false
	}
	for i := range s.params {
		if s.params[i] != o.params[i] {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	names := make([]string, len(s.params))
	for i, k := range s.params {
		names[i] = k.GoType()
	}
	return "func(" + strings.Join(names, ", ") + ")"
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
