package paramtable

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// Header marks files produced from the table.
const Header = "// Code generated by genparams from params.yaml. DO NOT EDIT."

var funcs = template.FuncMap{
	"codec":     codecType,
	"castConst": castConst,
	"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
}

var (
	paramsTmpl    = template.Must(template.New("params").Funcs(funcs).Parse(paramsSource))
	signatureTmpl = template.Must(template.New("signature").Funcs(funcs).Parse(signatureSource))
)

// arity is the template view of one FuncN marker.
type arity struct {
	N          int
	TypeParams string
	Kinds      string
}

// RenderParams expands the table into the Kind constants, the codec values
// and the runtime lookup tables.
func (t *Table) RenderParams() ([]byte, error) {
	return render(paramsTmpl, t)
}

// RenderSignature expands the table into the Param constraint and the
// Func1..FuncN markers.
func (t *Table) RenderSignature() ([]byte, error) {
	data := struct {
		Package    string
		MaxArity   int
		Parameters []Entry
		Arities    []arity
	}{
		Package:    t.Package,
		MaxArity:   t.MaxArity,
		Parameters: t.Parameters,
	}

	for n := 1; n <= t.MaxArity; n++ {
		params := make([]string, n)
		kinds := make([]string, n)
		for i := range params {
			params[i] = fmt.Sprintf("T%d", i+1)
			kinds[i] = fmt.Sprintf("kindFor[T%d]()", i+1)
		}
		data.Arities = append(data.Arities, arity{
			N:          n,
			TypeParams: strings.Join(params, ", "),
			Kinds:      strings.Join(kinds, ", "),
		})
	}
	return render(signatureTmpl, data)
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", tmpl.Name(), err)
	}
	return src, nil
}

func codecType(e Entry) string {
	switch e.Cast {
	case "widen":
		return fmt.Sprintf("Widen[%s, %s]", e.Guest, e.Wire)
	case "address":
		return fmt.Sprintf("Address[%s]", e.Guest)
	default:
		return fmt.Sprintf("Identity[%s]", e.Guest)
	}
}

func castConst(cast string) string {
	switch cast {
	case "widen":
		return "CastWiden"
	case "address":
		return "CastAddress"
	default:
		return "CastIdentity"
	}
}

const paramsSource = Header + `

package {{.Package}}

import "reflect"

const (
{{- range $i, $e := .Parameters}}
	Kind{{$e.Name}}{{if eq $i 0}} Kind = iota + 1{{end}}
{{- end}}
	kindTableEnd
)
{{range .Parameters}}
// {{.Name}} converts {{.Guest}} parameters{{if ne .Guest .Wire}}; the wire value is {{.Wire}}{{end}}.
var {{.Name}} = {{codec .}}{}
{{end}}
var (
{{- range .Parameters}}
	_ Parameter[{{.Guest}}, {{.Wire}}] = {{.Name}}
	_ ABI[{{.Wire}}, {{.Guest}}] = {{.Name}}
{{- end}}
)

var tableEntries = [...]Entry{
{{- range .Parameters}}
	{Kind: Kind{{.Name}}, Name: {{quote .Name}}, Guest: {{quote .Guest}}, Host: {{quote .Guest}}, Wire: {{quote .Wire}}, Cast: {{castConst .Cast}}, Alias: {{quote .Alias}}},
{{- end}}
}

var tableTypes = map[reflect.Type]Kind{
{{- range .Parameters}}
	reflect.TypeFor[{{.Guest}}](): Kind{{.Name}},
{{- end}}
}
`

const signatureSource = Header + `

package {{.Package}}

// MaxArity is the largest parameter count of a boundary function.
const MaxArity = {{.MaxArity}}

// Param is satisfied by every guest type that may appear in a boundary
// function signature.
type Param interface {
{{- range .Parameters}}
	{{.Guest}} |
{{- end}}
	string | []byte
}
{{range .Arities}}
// Func{{.N}} marks a boundary-eligible function of {{.N}} parameter{{if gt .N 1}}s{{end}}.
type Func{{.N}}[{{.TypeParams}} Param] func({{.TypeParams}})

// Describe{{.N}} returns the signature of a Func{{.N}}.
func Describe{{.N}}[{{.TypeParams}} Param](Func{{.N}}[{{.TypeParams}}]) Signature {
	return signatureOf({{.Kinds}})
}
{{end}}`
