package host

import (
	"context"
	stdErrors "errors"
	"fmt"
	"slices"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/ruwak-dev/ruwak/errors"
	adapter "github.com/ruwak-dev/ruwak/infrastructure/wazero"
)

// ImportInfo describes one function import of a guest module.
type ImportInfo struct {
	Module   string   `json:"module" yaml:"module"`
	Name     string   `json:"name" yaml:"name"`
	Params   []string `json:"params" yaml:"params"`
	Results  []string `json:"results,omitempty" yaml:"results,omitempty"`
	Eligible bool     `json:"eligible" yaml:"eligible"`
	Reason   string   `json:"reason,omitempty" yaml:"reason,omitempty"`

	wire []api.ValueType
}

// Report is the result of inspecting a guest module.
type Report struct {
	Imports []ImportInfo `json:"imports" yaml:"imports"`
	Exports []string     `json:"exports" yaml:"exports"`
}

// Inspect compiles wasm without instantiating it and reports its function
// imports, each marked with whether its shape could be a boundary call:
// no results, only i32/i64 parameters, and a wire list that at most
// MaxArity parameters can produce (a view takes two i32 words).
func Inspect(ctx context.Context, wasm []byte, opts ...InspectOption) (*Report, error) {
	cfg := defaultInspectConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.New(errors.PhaseInspect, errors.KindInvalid).
			Detail("failed to compile module").
			Cause(err).
			Build()
	}

	report := &Report{}
	for _, def := range compiled.ImportedFunctions() {
		module, name, _ := def.Import()
		if cfg.module != "" && module != cfg.module {
			continue
		}
		info := ImportInfo{
			Module:  module,
			Name:    name,
			Params:  typeNames(def.ParamTypes()),
			Results: typeNames(def.ResultTypes()),
			wire:    def.ParamTypes(),
		}
		info.Eligible, info.Reason = eligibility(def.ParamTypes(), def.ResultTypes(), cfg.maxArity)
		report.Imports = append(report.Imports, info)
	}
	for name := range compiled.ExportedFunctions() {
		report.Exports = append(report.Exports, name)
	}
	slices.Sort(report.Exports)

	return report, nil
}

func eligibility(params, results []api.ValueType, maxArity int) (bool, string) {
	if len(results) != 0 {
		return false, "has results"
	}
	if len(params) == 0 {
		return false, "has no parameters"
	}
	for i, p := range params {
		if p != api.ValueTypeI32 && p != api.ValueTypeI64 {
			return false, fmt.Sprintf("parameter %d is %s", i, api.ValueTypeName(p))
		}
	}
	if n := minArity(params); n > maxArity {
		return false, fmt.Sprintf("%d wire words need at least %d parameters, more than %d", len(params), n, maxArity)
	}
	return true, ""
}

// minArity returns the fewest parameters that lower to params: every i64
// is a scalar, and a run of i32 words packs into (len, ptr) views two at a
// time.
func minArity(params []api.ValueType) int {
	n, run := 0, 0
	for _, p := range params {
		if p == api.ValueTypeI32 {
			run++
			continue
		}
		n += (run+1)/2 + 1
		run = 0
	}
	return n + (run+1)/2
}

// Eligible returns the imports that could be boundary calls.
func (r *Report) Eligible() []ImportInfo {
	var out []ImportInfo
	for _, info := range r.Imports {
		if info.Eligible {
			out = append(out, info)
		}
	}
	return out
}

// Verify checks every reported import against imports: each must be
// provided, and with the wire types of its signature.
func (r *Report) Verify(imports []adapter.Import) error {
	byName := make(map[string]adapter.Import, len(imports))
	for _, imp := range imports {
		byName[imp.Name] = imp
	}

	var errs []error
	for _, info := range r.Imports {
		imp, ok := byName[info.Name]
		if !ok {
			errs = append(errs, errors.New(errors.PhaseInspect, errors.KindNotFound).
				Detail("guest imports %s.%s, which the host does not provide", info.Module, info.Name).
				Build())
			continue
		}
		if want := imp.Signature.WireTypes(); !slices.Equal(want, info.wire) {
			errs = append(errs, errors.New(errors.PhaseInspect, errors.KindInvalid).
				Detail("guest imports %s.%s as (%v), host provides %s as (%v)",
					info.Module, info.Name, info.Params, imp.Signature, typeNames(want)).
				Build())
		}
	}
	return stdErrors.Join(errs...)
}

func typeNames(types []api.ValueType) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = api.ValueTypeName(t)
	}
	return names
}
