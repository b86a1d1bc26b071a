//go:build !debug

package polyclip2d

// logDebugf is a no-op in a normal build; see log_debug.go for the -tags
// debug counterpart that writes to stderr.
func logDebugf(format string, v ...interface{}) {}
