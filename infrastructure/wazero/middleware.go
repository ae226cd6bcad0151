package wazero

import (
	"context"

	"go.uber.org/zap"

	"github.com/ruwak-dev/ruwak/errors"
)

// Middleware wraps a Handler. Middlewares run outermost first, in the order
// they were configured.
type Middleware func(next Handler) Handler

// Trace logs every call at debug level with the import name, the guest name
// and the number of wire words received.
func Trace(log *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args *Args) {
			if ce := log.Check(zap.DebugLevel, "host call"); ce != nil {
				name, _ := FunctionNameFromContext(ctx)
				guest, _ := GuestNameFromContext(ctx)
				ce.Write(
					zap.String("function", name),
					zap.String("guest", guest),
					zap.Int("words", args.Words()),
				)
			}
			next(ctx, args)
		}
	}
}

// logFaults logs a boundary fault raised by next and re-raises it, so the
// runtime still aborts the guest call.
func logFaults(log *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, args *Args) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				err := errors.FromRecovered(r)
				name, _ := FunctionNameFromContext(ctx)
				guest, _ := GuestNameFromContext(ctx)
				fields := []zap.Field{
					zap.String("function", name),
					zap.String("guest", guest),
					zap.Error(err),
				}
				if e, ok := errors.As(err); ok && len(e.Details) > 0 {
					fields = append(fields, zap.Any("details", e.Details))
				}
				log.Error("boundary fault", fields...)
				panic(r)
			}()
			next(ctx, args)
		}
	}
}

// chain applies mws to h so that mws[0] is the outermost.
func chain(h Handler, mws []Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
