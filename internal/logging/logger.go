package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is nil until Init succeeds; the helpers below are no-ops until then.
	Logger *log.Logger

	logFile *os.File
)

// Init opens a dated log file under dir. The terminal belongs to the TUI, so
// nothing is ever written to stderr.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	name := fmt.Sprintf("campusnews-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	Logger = newLogger(f, level)
	return nil
}

// InitWriter routes logs to w.
func InitWriter(w io.Writer, level string) {
	Logger = newLogger(w, level)
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
		Prefix:          "campusnews",
	})
}

func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
