// Package xlog is the package-level logging seam every other package in
// this module calls through, rather than importing zap directly: a
// library has no business deciding where its logs go, only what to say.
// SetLogger lets an embedding program redirect output; the default is a
// no-op logger so tests and library consumers who never call SetLogger
// see silence, not stderr noise.
package xlog

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs l as the logger every package in this module writes
// through. Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// L returns the currently installed logger.
func L() *zap.Logger {
	return logger
}
