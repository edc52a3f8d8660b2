package logger

import (
	"github.com/fatih/color" // Colored console output for the status-line protocol
)

// Colorized printing functions for the status lines autoisys emits.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the message kind. The textual prefixes
// ([INFO], [WARN], [RUN], [SERVICE], [INSTALL], [OK], [CONFIG]) are written by the
// callers; the color only signals severity to the operator.

// Info logs informational and progress messages in green color.
// This covers the [INFO], [RUN], [SERVICE], [INSTALL], [OK] and [CONFIG] lines.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs degraded-but-continuing conditions in bright magenta color,
// such as a package manager with no command mapping for the requested action.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs fatal conditions in red color. The caller decides whether to
// exit; this function only prints.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is assigned dynamically during Init based on the --debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger package, enabling or disabling debug logging.
// When enableDebug is false, Debug is a no-op function that silently ignores
// all debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Packages may log before cmd calls Init (e.g. config loading in tests).
	Init(false)
}
