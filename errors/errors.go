// Package errors provides structured error types for the guest/host boundary.
//
// Every fatal boundary violation is raised as a panic carrying an *Error, so a
// runtime that recovers host-function panics (wazero does) can still match the
// failure with errors.Is against the sentinels exported by package abi.
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in the boundary crossing the error occurred.
type Phase string

const (
	PhaseLower       Phase = "lower"       // guest value to wire
	PhaseLift        Phase = "lift"        // wire to host value
	PhaseReconstruct Phase = "reconstruct" // view to host slice
	PhaseSignature   Phase = "signature"   // function marker checks
	PhaseTable       Phase = "table"       // conversion table loading
	PhaseInspect     Phase = "inspect"     // guest module inspection
)

// Kind categorizes the error.
type Kind string

const (
	KindOverflow    Kind = "overflow"
	KindOutOfBounds Kind = "out_of_bounds"
	KindDirection   Kind = "direction"
	KindUnsupported Kind = "unsupported"
	KindArity       Kind = "arity"
	KindInvalid     Kind = "invalid"
	KindNotFound    Kind = "not_found"
)

// Error is the structured error type used throughout the module.
type Error struct {
	Cause   error          `json:"-"`
	Details map[string]any `json:"details,omitempty"`
	Phase   Phase          `json:"phase"`
	Kind    Kind           `json:"kind"`
	GoType  string         `json:"go_type,omitempty"`
	Detail  string         `json:"detail,omitempty"`
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("abi: [")
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Phase and kind must match;
// the detail must match too when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Phase != t.Phase || e.Kind != t.Kind {
		return false
	}
	return t.Detail == "" || t.Detail == e.Detail
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// GoType sets the Go type name.
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// With records a named value describing the failure (offsets, lengths, sizes).
func (b *Builder) With(key string, value any) *Builder {
	if b.err.Details == nil {
		b.err.Details = make(map[string]any)
	}
	b.err.Details[key] = value
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	e := b.err
	return &e
}

// Unsupported creates an error for a Go type outside the conversion surface.
func Unsupported(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		GoType: goType,
		Detail: "type is not a boundary parameter",
	}
}

// Invalid creates an invalid-input error.
func Invalid(phase Phase, detail string, args ...any) *Error {
	return New(phase, KindInvalid).Detail(detail, args...).Build()
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stdErrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// FromRecovered converts a recovered panic value into an error.
// Values that are not errors are wrapped so that no information is lost.
func FromRecovered(v any) error {
	switch r := v.(type) {
	case nil:
		return nil
	case error:
		return r
	case string:
		return stdErrors.New(r)
	default:
		return fmt.Errorf("%v", r)
	}
}
