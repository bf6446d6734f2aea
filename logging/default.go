package logging

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"sort"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// DefaultLogger is a colored logger over Go's standard log package.
// Debug/Info go to the out writer (no color), Warn/Error/Fatal to the
// err writer (yellow/red/bold red).
type DefaultLogger struct {
	outLogger *log.Logger
	errLogger *log.Logger
	level     Level
	fields    Fields
	useColors bool
}

// NewDefaultLogger creates a default logger writing to stdout/stderr,
// with colors enabled when stdout is a terminal.
func NewDefaultLogger() *DefaultLogger {
	return NewLoggerTo(os.Stdout, os.Stderr, isTerminal())
}

// NewLoggerTo creates a default logger writing to the given writers.
// Tests use this to capture output deterministically.
func NewLoggerTo(out, errOut io.Writer, colors bool) *DefaultLogger {
	return &DefaultLogger{
		outLogger: log.New(out, "", log.LstdFlags),
		errLogger: log.New(errOut, "", log.LstdFlags),
		level:     InfoLevel,
		fields:    make(Fields),
		useColors: colors,
	}
}

func isTerminal() bool {
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil {
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// formatMessage renders "[LEVEL] msg: err key=value ...". Fields print in
// sorted key order so log lines stay stable across runs.
func (d *DefaultLogger) formatMessage(level Level, err error, msg string, fields ...Fields) string {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}

	logMsg := fmt.Sprintf("[%s] %s", level.String(), msg)
	if err != nil {
		logMsg += fmt.Sprintf(": %v", err)
	}

	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			logMsg += fmt.Sprintf(" %s=%v", k, merged[k])
		}
	}

	if d.useColors {
		switch level {
		case WarnLevel:
			logMsg = colorYellow + logMsg + colorReset
		case ErrorLevel:
			logMsg = colorRed + logMsg + colorReset
		case FatalLevel:
			logMsg = colorBold + colorRed + logMsg + colorReset
		}
	}

	return logMsg
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < d.level {
		return
	}

	formatted := d.formatMessage(level, err, msg, fields...)

	switch level {
	case DebugLevel, InfoLevel:
		d.outLogger.Println(formatted)
	case WarnLevel, ErrorLevel:
		d.errLogger.Println(formatted)
	case FatalLevel:
		d.errLogger.Println(formatted)
		os.Exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.log(FatalLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)

	return &DefaultLogger{
		outLogger: d.outLogger,
		errLogger: d.errLogger,
		level:     d.level,
		fields:    merged,
		useColors: d.useColors,
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// NoOpLogger discards everything. Useful when embedding the engine in a
// host that does its own logging.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
