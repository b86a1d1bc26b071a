//go:build debug

package sweep

import (
	"log"
	"os"
)

// Debug logger instance, compiled in only with -tags debug, mirroring the
// teacher package's root log_debug.go.
var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// logDebugf logs a debug message when the debug build tag is set.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
