// Package abitest provides a test harness for code on either side of the
// guest/host boundary.
package abitest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// GuestName is the module name guests are instantiated under.
const GuestName = "guest"

// LinkFunc registers the host modules a guest imports.
type LinkFunc func(ctx context.Context, rt wazero.Runtime) error

// Guest is an instantiated guest module and the runtime that owns it.
type Guest struct {
	Runtime wazero.Runtime
	Module  api.Module
}

// NewGuest creates a runtime, lets link register host modules on it and
// instantiates wasm. The runtime is closed when the test ends.
func NewGuest(t testing.TB, wasm []byte, link LinkFunc) *Guest {
	t.Helper()

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() {
		_ = rt.Close(context.Background())
	})

	if link != nil {
		require.NoError(t, link(ctx, rt), "failed to link host modules")
	}

	mod, err := rt.InstantiateWithConfig(ctx, wasm, wazero.NewModuleConfig().WithName(GuestName))
	require.NoError(t, err, "failed to instantiate guest")

	return &Guest{Runtime: rt, Module: mod}
}

// Call invokes a guest export that takes no parameters.
func (g *Guest) Call(ctx context.Context, export string) error {
	fn := g.Module.ExportedFunction(export)
	if fn == nil {
		return &missingExportError{name: export}
	}
	_, err := fn.Call(ctx)
	return err
}

// MustCall invokes export and fails the test on error.
func (g *Guest) MustCall(t testing.TB, export string) {
	t.Helper()
	require.NoError(t, g.Call(context.Background(), export))
}

// Memory returns the guest's exported memory.
func (g *Guest) Memory() api.Memory {
	return g.Module.Memory()
}

type missingExportError struct {
	name string
}

func (e *missingExportError) Error() string {
	return "abitest: guest does not export " + e.name
}
