package wazero

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// contextKey is a private type for context keys.
type contextKey struct {
	name string
}

var (
	guestNameKey    = &contextKey{name: "guest_name"}
	functionNameKey = &contextKey{name: "function_name"}
)

// WithGuestName adds the calling guest's name to the context.
func WithGuestName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, guestNameKey, name)
}

// GuestNameFromContext retrieves the guest name from the context.
func GuestNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(guestNameKey).(string)
	return name, ok
}

// GetGuestName extracts the guest name from context, falling back to the module name.
func GetGuestName(ctx context.Context, mod api.Module) string {
	if name, ok := GuestNameFromContext(ctx); ok {
		return name
	}
	if mod == nil {
		return ""
	}
	return mod.Name()
}

// WithFunctionName adds the name of the import being served to the context.
func WithFunctionName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, functionNameKey, name)
}

// FunctionNameFromContext retrieves the import name from the context.
func FunctionNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(functionNameKey).(string)
	return name, ok
}
