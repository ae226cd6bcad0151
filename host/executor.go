package host

import (
	"context"
	"fmt"
	"slices"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/ruwak-dev/ruwak/host/registry"
	adapter "github.com/ruwak-dev/ruwak/infrastructure/wazero"
)

// Executor owns a wazero runtime whose host module serves the imports of a
// registry to the guests it loads.
type Executor struct {
	runtime    wazero.Runtime
	registry   *registry.Registry
	logger     *zap.Logger
	moduleName string
	trace      bool
	wasi       bool

	// served is the registry snapshot the host module was built from.
	served []adapter.Import
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		moduleName: "env",
		wasi:       true,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		e.registry = registry.NewRegistry()
	}
	if e.logger == nil {
		e.logger = adapter.Logger()
	}

	rt := wazero.NewRuntime(ctx)
	if e.wasi {
		wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	}
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

func (e *Executor) registerHostFunctions(ctx context.Context) error {
	opts := []adapter.AdapterOption{
		adapter.WithModuleName(e.moduleName),
		adapter.WithLogger(e.logger),
	}
	if e.trace {
		opts = append(opts, adapter.WithMiddleware(adapter.Trace(e.logger)))
	}
	imports := e.registry.Imports()
	if _, err := adapter.RegisterWithRuntime(ctx, e.runtime, imports, opts...); err != nil {
		return err
	}
	e.served = imports
	return nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Runtime returns the underlying wazero runtime.
func (e *Executor) Runtime() wazero.Runtime {
	return e.runtime
}

// GuestInstance represents an instantiated guest module.
type GuestInstance struct {
	module api.Module
}

// LoadGuest instantiates a guest module under name.
//
// Imports from the executor's host module are checked first against the
// imports it serves, so a guest that declares a different signature is
// rejected with a descriptive error instead of a link failure. Imports added
// to the registry after NewExecutor are not served.
func (e *Executor) LoadGuest(ctx context.Context, wasm []byte, name string) (*GuestInstance, error) {
	report, err := Inspect(ctx, wasm, WithImportModule(e.moduleName))
	if err != nil {
		return nil, err
	}
	if err := report.Verify(e.served); err != nil {
		return nil, err
	}

	cfg := wazero.NewModuleConfig().WithName(name).WithStartFunctions()
	mod, err := e.runtime.InstantiateWithConfig(ctx, wasm, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if initFn := mod.ExportedFunction("_initialize"); initFn != nil {
		if _, err := initFn.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	e.logger.Debug("guest loaded", zap.String("guest", name), zap.Int("imports", len(report.Imports)))
	return &GuestInstance{module: mod}, nil
}

// Call invokes a parameterless guest export. A boundary fault raised by a
// host import during the call is returned as the error.
func (g *GuestInstance) Call(ctx context.Context, export string) error {
	f := g.module.ExportedFunction(export)
	if f == nil {
		return fmt.Errorf("export %q not found", export)
	}
	if n := len(f.Definition().ParamTypes()); n != 0 {
		return fmt.Errorf("export %q takes %d parameters, want none", export, n)
	}
	_, err := f.Call(ctx)
	return err
}

// Exports returns the names of the guest's exported functions, sorted.
func (g *GuestInstance) Exports() []string {
	defs := g.module.ExportedFunctionDefinitions()
	out := make([]string, 0, len(defs))
	for name := range defs {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Module returns the underlying wazero module.
func (g *GuestInstance) Module() api.Module {
	return g.module
}
