package wazero

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the adapter's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the adapter's logger. A nil logger restores the
// no-op default. It is safe to call while host functions are running.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
