package query

import "sync/atomic"

// debugQueries controls whether every query and reply is logged.
var debugQueries atomic.Bool

// SetDebugLogging enables/disables verbose per-query logs.
func SetDebugLogging(enabled bool) {
	debugQueries.Store(enabled)
}

// debugEnabled reports whether per-query logs are enabled.
func debugEnabled() bool {
	return debugQueries.Load()
}
