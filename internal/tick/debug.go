package tick

import "sync/atomic"

// verbose gates the per-tick debug records written by the loop and the
// population controller. Read on every tick, written once at startup.
var verbose atomic.Bool

// EnableDebugLogging switches the per-tick debug records on or off.
// cmd/hitsquads sets it from log_level before the loop starts.
func EnableDebugLogging(enabled bool) {
	verbose.Store(enabled)
}

// IsDebugEnabled reports whether per-tick debug records should be built.
// Check it before assembling slog attributes inside the tick path.
func IsDebugEnabled() bool {
	return verbose.Load()
}
