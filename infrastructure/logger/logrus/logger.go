// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Structured JSON or text output with level filtering and optional rotating log files

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, adds a rotating log file next to stdout
	File string

	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int

	// MaxBackups is how many rotated files are kept
	MaxBackups int

	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
	file  *lumberjack.Logger
}

// New creates a logger writing to stdout and, if configured, a rotating file
func New(opts Options) *Logger {
	l := logrus.New()
	l.SetLevel(parseLevel(opts.Level))

	if strings.EqualFold(opts.Format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := &Logger{entry: l}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		logger.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, logger.file)
	}
	l.SetOutput(out)

	return logger
}

// NewWithWriter creates a logger writing JSON to w
func NewWithWriter(w io.Writer, level string) *Logger {
	l := logrus.New()
	l.SetLevel(parseLevel(level))
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(w)
	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Writer returns a writer that logs each line at the error level, for
// plugging into http.Server.ErrorLog
func (l *Logger) Writer() *io.PipeWriter {
	return l.entry.WriterLevel(logrus.ErrorLevel)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
