package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Level returns the slog level
func (l LogLevel) Level() slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case INFO:
		return slog.LevelInfo
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseLogLevel parses a string log level
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return WARN, fmt.Errorf("invalid log level: %s", level)
	}
}

// LoggingConfig describes where and how the process logs.
type LoggingConfig struct {
	Level  string
	Format string // text or json
	File   string

	// MaxSizeMB rotates File once it grows past this size. Zero disables
	// rotation.
	MaxSizeMB  int
	MaxBackups int
}

// NewLogger creates a slog logger writing to output in the given format.
func NewLogger(level LogLevel, format string, output io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level.Level()}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(output, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(output, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

// SetupLogging builds the process logger and installs it as the slog
// default. Logs go to fallback unless a file is configured. The returned
// closer releases the file and is never nil.
func SetupLogging(cfg LoggingConfig, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		output io.Writer = fallback
		closer io.Closer = nopCloser{}
	)
	if output == nil {
		output = os.Stderr
	}

	if cfg.File != "" {
		path, err := ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		file, err := OpenRotatingFile(path, int64(cfg.MaxSizeMB)*1024*1024, cfg.MaxBackups)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output, closer = file, file
	}

	logger, err := NewLogger(level, cfg.Format, output)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	slog.SetDefault(logger)
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
