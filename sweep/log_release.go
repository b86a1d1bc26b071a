//go:build !debug

package sweep

// logDebugf is a no-op in a normal build; see log_debug.go for the -tags
// debug counterpart that actually writes to stderr.
func logDebugf(format string, v ...interface{}) {}
