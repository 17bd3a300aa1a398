package cli

import (
	"fmt"
	"io"
	"os"
)

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(stdout, "✓ %s\n", msg)
		} else {
			fmt.Fprintf(stdout, "OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(stdout, "ℹ %s\n", msg)
		} else {
			fmt.Fprintf(stdout, "INFO: %s\n", msg)
		}
	}
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "ERROR: %s\n", msg)
	}
}

// Global flags (will be set from cmd package)
var (
	quiet   bool
	noColor bool
	verbose bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, v bool) {
	quiet = q
	noColor = nc
	verbose = v
}

// SetOutput redirects the Print helpers, mainly for tests
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// Verbose reports whether --verbose was given
func Verbose() bool {
	return verbose
}
