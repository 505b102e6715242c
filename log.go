package distplot

import (
	"fmt"
	"log/slog"
)

var logger = slog.Default()

// SetLogger sets the logger used for warnings and debug output of this
// package. A nil l restores slog.Default(). SetLogger is meant to be
// called once during start-up.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Logger returns the logger in use.
func Logger() *slog.Logger { return logger }

// Warnf logs a formatted warning.
func Warnf(f string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(f, args...))
}

// LevelFromFlags returns the log level for the usual verbosity flags:
// very verbose (debug), verbose (info), quiet (errors only). The
// default is warnings.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
