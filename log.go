package splithash

import "go.uber.org/zap"

// log is the package-level diagnostics logger. It defaults to a no-op
// logger so that importing splithash never forces log output on a caller;
// SetLogger lets a host application wire it up the same way
// massifs/logdircache.go wires up logger.Sugar — a single package-level
// logger swapped in by the embedding application, not threaded through
// every call.
var log = zap.NewNop()

// SetLogger installs l as the package's diagnostics logger. Passing nil
// restores the no-op default. Debug-level logging is used sparingly: the
// bit-scan loops in merge rounds and fringe detection run per-bit, so log
// statements there are guarded by log.Core().Enabled(zap.DebugLevel) to
// avoid paying for string formatting on the hot path when logging is off.
func SetLogger(l *zap.Logger) {
	if l == nil {
		log = zap.NewNop()
		return
	}
	log = l
}
