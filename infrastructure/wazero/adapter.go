package wazero

import (
	"context"
	"fmt"
	"reflect"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/ruwak-dev/ruwak/abi"
)

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// ModuleName is the host module name guests import from (default: "env").
	ModuleName string

	// MemoryName is the guest memory export views are reconstructed against.
	// Empty selects the guest's default memory.
	MemoryName string

	// Logger receives boundary faults. Defaults to Logger().
	Logger *zap.Logger

	// Middleware wraps every handler, outermost first.
	Middleware []Middleware
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "env").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithMemoryName sets the guest memory export used to reconstruct views.
func WithMemoryName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.MemoryName = name
	}
}

// WithLogger sets the logger boundary faults are reported to.
func WithLogger(l *zap.Logger) AdapterOption {
	return func(c *AdapterConfig) {
		c.Logger = l
	}
}

// WithMiddleware appends handler middleware.
func WithMiddleware(mws ...Middleware) AdapterOption {
	return func(c *AdapterConfig) {
		c.Middleware = append(c.Middleware, mws...)
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName: "env",
	}
}

func newAdapterConfig(opts []AdapterOption) AdapterConfig {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = Logger()
	}
	return cfg
}

// Handler serves one boundary import. It reads its parameters from args;
// boundary faults raised while doing so abort the guest call.
type Handler func(ctx context.Context, args *Args)

// Import binds a Handler to the name and signature a guest imports.
type Import struct {
	Name      string
	Signature abi.Signature
	Handler   Handler
}

func (imp Import) validate() error {
	if imp.Name == "" {
		return fmt.Errorf("import has no name")
	}
	if imp.Handler == nil {
		return fmt.Errorf("import %q has no handler", imp.Name)
	}
	if _, err := abi.NewSignature(imp.Signature.Params()...); err != nil {
		return fmt.Errorf("import %q: %w", imp.Name, err)
	}
	return nil
}

// RegisterWithRuntime exports imports from a host module on runtime and
// instantiates it.
//
// Each import is wrapped to:
//   - Resolve the guest memory views are reconstructed against
//   - Run the configured middleware and the handler
//   - Log a boundary fault and re-raise it, which aborts the guest call
//
// Example:
//
//	recv := wazero.MustBind("receive_u8", func(v uint8) { ... })
//	_, err := wazero.RegisterWithRuntime(ctx, runtime, []wazero.Import{recv},
//	    wazero.WithModuleName("env"),
//	)
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, imports []Import, opts ...AdapterOption) (api.Module, error) {
	cfg := newAdapterConfig(opts)

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)
	for _, imp := range imports {
		if err := imp.validate(); err != nil {
			return nil, err
		}
		builder.NewFunctionBuilder().
			WithGoModuleFunction(goModuleFunc(imp, cfg), imp.Signature.WireTypes(), nil).
			WithName(imp.Name).
			Export(imp.Name)
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate host module %q: %w", cfg.ModuleName, err)
	}

	cfg.Logger.Debug("host module registered",
		zap.String("module", cfg.ModuleName),
		zap.Int("imports", len(imports)),
	)
	return mod, nil
}

// GoModuleFunc returns the wazero function serving imp, for callers that
// assemble their own host module.
func GoModuleFunc(imp Import, opts ...AdapterOption) api.GoModuleFunc {
	return goModuleFunc(imp, newAdapterConfig(opts))
}

func goModuleFunc(imp Import, cfg AdapterConfig) api.GoModuleFunc {
	mws := append([]Middleware{logFaults(cfg.Logger)}, cfg.Middleware...)
	h := chain(imp.Handler, mws)
	name := imp.Name
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		ctx = WithFunctionName(ctx, name)
		ctx = WithGuestName(ctx, GetGuestName(ctx, mod))
		h(ctx, NewArgs(mod, stack[:imp.Signature.FlatCount()], cfg.MemoryName))
	}
}

// GuestMemory returns the memory of mod that views are reconstructed
// against, or nil if there is none. An empty name selects the default memory.
func GuestMemory(mod api.Module, name string) abi.Memory {
	if mod == nil {
		return nil
	}
	var mem api.Memory
	if name == "" {
		mem = mod.Memory()
	} else {
		mem = mod.ExportedMemory(name)
	}
	if isNilMemory(mem) {
		return nil
	}
	return mem
}

// isNilMemory reports whether mem is nil or wraps a nil pointer, which is
// what wazero returns for a module that defines no memory.
func isNilMemory(mem api.Memory) bool {
	if mem == nil {
		return true
	}
	v := reflect.ValueOf(mem)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
