package kernels

import (
	"log/slog"
	"sync/atomic"
)

var kernelLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for configure-time diagnostics.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	kernelLogger.Store(l)
}

func logger() *slog.Logger {
	if l := kernelLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
