// Package paramtable loads the declarative boundary conversion table and
// expands it into Go source. The table is the single source of truth for the
// identity, widening and address conversions: both conversion directions and
// the signature marker are rendered from the same rows.
package paramtable

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ruwak-dev/ruwak/errors"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = validator.New()

// Table is the root of a conversion table file.
type Table struct {
	Package    string  `yaml:"package" json:"package" validate:"required,alpha" jsonschema:"description=Go package the generated files belong to"`
	MaxArity   int     `yaml:"max_arity" json:"max_arity" validate:"required,min=1,max=16" jsonschema:"description=Largest parameter count of a boundary function,minimum=1,maximum=16"`
	Parameters []Entry `yaml:"parameters" json:"parameters" validate:"required,min=1,unique=Name,unique=Guest,dive" jsonschema:"description=One row per convertible guest type"`
}

// Entry is one row: a guest type, its wire type and the cast chain between them.
type Entry struct {
	Name  string `yaml:"name" json:"name" validate:"required,alphanum" jsonschema:"description=Exported identifier of the codec (Kind<Name> is derived from it)"`
	Guest string `yaml:"guest" json:"guest" validate:"required" jsonschema:"description=Go guest type; the host sees the same type"`
	Wire  string `yaml:"wire" json:"wire" validate:"required,oneof=uint32 int32 uint64 int64" jsonschema:"enum=uint32,enum=int32,enum=uint64,enum=int64"`
	Via   string `yaml:"via,omitempty" json:"via,omitempty" validate:"omitempty,eq=uintptr" jsonschema:"description=Address-sized intermediate of an address cast,enum=uintptr"`
	Cast  string `yaml:"cast" json:"cast" validate:"required,oneof=identity widen address" jsonschema:"enum=identity,enum=widen,enum=address"`
	Alias string `yaml:"alias" json:"alias" validate:"required" jsonschema:"description=Short spelling accepted by ParseKind and the CLI"`
}

var pointerGuest = regexp.MustCompile(`^(ConstPtr|MutPtr)\[(u?int(8|16|32|64))\]$`)

var widenTargets = map[string]string{
	"uint8":  "uint32",
	"uint16": "uint32",
	"int8":   "int32",
	"int16":  "int32",
}

// Load decodes and validates a table. Unknown keys are rejected.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, errors.New(errors.PhaseTable, errors.KindInvalid).
			Detail("failed to decode table").
			Cause(err).
			Build()
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile loads the table stored at path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Validate checks the struct tags and then the cast rules of every entry.
func (t *Table) Validate() error {
	if err := validate.Struct(t); err != nil {
		return errors.New(errors.PhaseTable, errors.KindInvalid).
			Detail("table validation failed").
			Cause(err).
			Build()
	}
	for _, e := range t.Parameters {
		if err := e.check(); err != nil {
			return err
		}
	}
	return nil
}

func (e Entry) check() error {
	switch e.Cast {
	case "identity":
		if e.Wire != e.Guest {
			return errors.Invalid(errors.PhaseTable, "%s: identity cast needs wire == guest, got %s -> %s", e.Name, e.Guest, e.Wire)
		}
	case "widen":
		want, ok := widenTargets[e.Guest]
		if !ok {
			return errors.Invalid(errors.PhaseTable, "%s: %s is not a sub-word integer", e.Name, e.Guest)
		}
		if e.Wire != want {
			return errors.Invalid(errors.PhaseTable, "%s: %s widens to %s, not %s", e.Name, e.Guest, want, e.Wire)
		}
	case "address":
		if !pointerGuest.MatchString(e.Guest) {
			return errors.Invalid(errors.PhaseTable, "%s: %s is not a ConstPtr or MutPtr of an integer", e.Name, e.Guest)
		}
		if e.Via != "uintptr" || e.Wire != "uint32" {
			return errors.Invalid(errors.PhaseTable, "%s: address cast must go through uintptr to uint32", e.Name)
		}
	}
	if e.Cast != "address" && e.Via != "" {
		return errors.Invalid(errors.PhaseTable, "%s: only address casts have an intermediate", e.Name)
	}
	return nil
}

// Chain returns the cast chain of e, guest first.
func (e Entry) Chain() []string {
	switch e.Cast {
	case "identity":
		return []string{e.Guest}
	case "address":
		return []string{e.Guest, e.Via, e.Wire}
	default:
		return []string{e.Guest, e.Wire}
	}
}
