package abi

import (
	"reflect"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/ruwak-dev/ruwak/errors"
)

// Kind identifies one entry of the conversion surface.
type Kind uint8

// KindInvalid is the zero Kind.
const KindInvalid Kind = 0

// View kinds follow the generated table kinds.
const (
	KindString Kind = kindTableEnd + iota
	KindBytes
	kindEnd
)

// Cast names the conversion chain of an entry.
type Cast string

const (
	CastIdentity Cast = "identity" // wire value is the guest value
	CastWiden    Cast = "widen"    // sub-word integer in a 32-bit word
	CastAddress  Cast = "address"  // pointer through uintptr to uint32
	CastView     Cast = "view"     // (len, ptr) pair, guest to host only
)

// Entry describes one row of the conversion table.
type Entry struct {
	Kind  Kind   `json:"-" yaml:"-"`
	Name  string `json:"name" yaml:"name"`
	Guest string `json:"guest" yaml:"guest"`
	Host  string `json:"host" yaml:"host"`
	Wire  string `json:"wire" yaml:"wire"`
	Cast  Cast   `json:"cast" yaml:"cast"`
	Alias string `json:"alias" yaml:"alias"`
}

var viewEntries = [...]Entry{
	{Kind: KindString, Name: "Str", Guest: "string", Host: "GuestStringView", Wire: "GuestStringView", Cast: CastView, Alias: "&str"},
	{Kind: KindBytes, Name: "Bytes", Guest: "[]byte", Host: "GuestMemoryView", Wire: "GuestMemoryView", Cast: CastView, Alias: "&[u8]"},
}

var (
	i32  = []api.ValueType{api.ValueTypeI32}
	i64  = []api.ValueType{api.ValueTypeI64}
	view = []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}
)

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, 4*len(tableEntries))
	for _, e := range Entries() {
		m[e.Guest] = e.Kind
		m[e.Alias] = e.Kind
		m[strings.ToLower(e.Name)] = e.Kind
	}
	return m
}()

// Entries returns the full conversion table, view kinds last.
func Entries() []Entry {
	out := make([]Entry, 0, len(tableEntries)+len(viewEntries))
	out = append(out, tableEntries[:]...)
	return append(out, viewEntries[:]...)
}

// Kinds returns every valid Kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindEnd-1)
	for k := KindInvalid + 1; k < kindEnd; k++ {
		out = append(out, k)
	}
	return out
}

// Entry returns the table row of k.
func (k Kind) Entry() (Entry, bool) {
	switch {
	case k > KindInvalid && k < kindTableEnd:
		return tableEntries[k-1], true
	case k >= KindString && k < kindEnd:
		return viewEntries[k-KindString], true
	}
	return Entry{}, false
}

// Valid reports whether k names a table entry.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindEnd
}

// IsView reports whether k crosses as a (len, ptr) view.
func (k Kind) IsView() bool {
	return k == KindString || k == KindBytes
}

// GoType returns the Go spelling of the guest type.
func (k Kind) GoType() string {
	if e, ok := k.Entry(); ok {
		return e.Guest
	}
	return ""
}

func (k Kind) String() string {
	if e, ok := k.Entry(); ok {
		return e.Name
	}
	return "Invalid"
}

// WireTypes returns the flattened core wasm value types k occupies on the
// wire: one word for scalars and addresses, two i32 words (len, ptr) for views.
func (k Kind) WireTypes() []api.ValueType {
	e, ok := k.Entry()
	if !ok {
		return nil
	}
	var vt []api.ValueType
	switch e.Wire {
	case "uint32", "int32":
		vt = i32
	case "uint64", "int64":
		vt = i64
	default:
		vt = view
	}
	return append([]api.ValueType(nil), vt...)
}

// FlatCount returns the number of wire words k occupies.
func (k Kind) FlatCount() int {
	return len(k.WireTypes())
}

// ParseKind resolves a type spelling. It accepts the Go guest type
// ("uint8", "ConstPtr[int32]", "string", "[]byte"), the entry name ("u8",
// "constptri32") and the short aliases ("u8", "*const i32", "&str").
func ParseKind(s string) (Kind, error) {
	key := strings.Join(strings.Fields(s), " ")
	if k, ok := kindsByName[key]; ok {
		return k, nil
	}
	if k, ok := kindsByName[strings.ToLower(key)]; ok {
		return k, nil
	}
	return KindInvalid, errors.Unsupported(errors.PhaseSignature, s)
}

// KindOf returns the Kind of a Go type. Only the exact types of the table
// qualify; named types derived from them do not.
func KindOf(t reflect.Type) (Kind, bool) {
	switch t {
	case nil:
		return KindInvalid, false
	case reflect.TypeFor[string]():
		return KindString, true
	case reflect.TypeFor[[]byte]():
		return KindBytes, true
	}
	k, ok := tableTypes[t]
	return k, ok
}
