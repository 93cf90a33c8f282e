package errors

import (
	"fmt"
	"os"

	"github.com/tmalley/focusboard/internal/logger"
)

// Format renders err for the terminal with the "Error: " prefix the
// CLI uses everywhere. Nil yields an empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format over a format string.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal writes err to stderr and the log, then exits with status 1.
// A nil err is a no-op so call sites can pass errors through unchecked.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal over a format string. Unlike Fatal it always exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
