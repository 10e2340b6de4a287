package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hollowmere/fieldguide/internal/paths"
)

// getDebugLogPath returns the debug log path, configurable via environment variable
func getDebugLogPath() string {
	// FIELDGUIDE_DEBUG_LOG may itself be a path
	debugEnv := os.Getenv("FIELDGUIDE_DEBUG_LOG")
	if debugEnv != "" && (filepath.IsAbs(debugEnv) || filepath.Dir(debugEnv) != ".") {
		return debugEnv
	}

	logDir := paths.Default().LogDir
	if err := os.MkdirAll(logDir, 0755); err != nil {
		// Fallback to temp directory if the log dir can't be created
		return filepath.Join(os.TempDir(), "fieldguide_debug.log")
	}
	return filepath.Join(logDir, "fieldguide_debug.log")
}

// LogToFile writes a debug message to the debug log file
func LogToFile(message string) {
	// Only log if debug logging is enabled (any non-empty value)
	debugEnv := os.Getenv("FIELDGUIDE_DEBUG_LOG")
	if debugEnv == "" || debugEnv == "0" || debugEnv == "false" {
		return
	}

	if f, err := os.OpenFile(getDebugLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
		defer func() { _ = f.Close() }()
		_, _ = f.WriteString(message)
	}
}

// LogToFilef writes a formatted debug message to the debug log file
func LogToFilef(format string, args ...interface{}) {
	LogToFile(fmt.Sprintf(format, args...))
}

// LogToFileWithTimestamp writes a debug message with timestamp prefix
func LogToFileWithTimestamp(message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	LogToFile(fmt.Sprintf("[%s] %s", timestamp, message))
}

// LogToFileWithTimestampf writes a formatted debug message with timestamp prefix
func LogToFileWithTimestampf(format string, args ...interface{}) {
	LogToFileWithTimestamp(fmt.Sprintf(format, args...))
}
