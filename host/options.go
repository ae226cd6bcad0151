package host

import (
	"go.uber.org/zap"

	"github.com/ruwak-dev/ruwak/abi"
	"github.com/ruwak-dev/ruwak/host/registry"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithRegistry configures the executor with the imports it offers guests.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Executor) {
		e.registry = reg
	}
}

// WithLogger sets the logger for host calls and boundary faults.
func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) {
		e.logger = l
	}
}

// WithModuleName sets the host module name guests import from (default: "env").
func WithModuleName(name string) Option {
	return func(e *Executor) {
		e.moduleName = name
	}
}

// WithTrace logs every host call at debug level.
func WithTrace(enabled bool) Option {
	return func(e *Executor) {
		e.trace = enabled
	}
}

// WithWASI instantiates wasi_snapshot_preview1 for guests built for wasip1
// (default: true).
func WithWASI(enabled bool) Option {
	return func(e *Executor) {
		e.wasi = enabled
	}
}

// inspectConfig holds configuration for Inspect.
type inspectConfig struct {
	module   string
	maxArity int
}

func defaultInspectConfig() inspectConfig {
	return inspectConfig{
		maxArity: abi.MaxArity,
	}
}

// InspectOption configures Inspect.
type InspectOption func(*inspectConfig)

// WithImportModule restricts the report to imports from module.
// Empty (the default) reports every module.
func WithImportModule(module string) InspectOption {
	return func(c *inspectConfig) {
		c.module = module
	}
}

// WithMaxArity overrides the largest parameter count considered eligible.
// A view takes two wire words, so up to 2*n words are accepted.
func WithMaxArity(n int) InspectOption {
	return func(c *inspectConfig) {
		c.maxArity = n
	}
}
