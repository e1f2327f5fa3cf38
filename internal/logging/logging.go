// Package logging holds the logger shared by the generator packages.
// cmd/wiregen installs one at startup; until then logging is a no-op.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

// Logger returns the installed logger, or a no-op logger.
func Logger() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger installs l for every generator package. Nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	current.Store(l)
}
