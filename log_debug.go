//go:build debug

package polyclip2d

import (
	"log"
	"os"
)

// Debug logger instance.
var logger = log.New(os.Stderr, "[polyclip2d DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages if the debug build tag is set.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
