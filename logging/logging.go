// Package logging provides the structured logging facade used by the
// vox-prisma orchestration layer and CLI. The analysis packages themselves
// never log; keeping the facade library-owned lets an embedding application
// swap in its own logger without the engine taking a logging dependency.
package logging

// Level represents log levels.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if l < DebugLevel || l > FatalLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Fields represents structured logging fields.
type Fields map[string]any

// Logger defines the interface the library expects for logging.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields.
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum log level.
	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance. Passing nil installs a
// no-op logger.
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		globalLogger = &NoOpLogger{}
		return
	}
	globalLogger = logger
}

// GetGlobalLogger returns the current global logger.
func GetGlobalLogger() Logger {
	return globalLogger
}

// Package-level logging functions that use the global logger.

func Debug(msg string, fields ...Fields) {
	globalLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...Fields) {
	globalLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...Fields) {
	globalLogger.Warn(msg, fields...)
}

func Error(err error, msg string, fields ...Fields) {
	globalLogger.Error(err, msg, fields...)
}

func Fatal(err error, msg string, fields ...Fields) {
	globalLogger.Fatal(err, msg, fields...)
}

func WithFields(fields Fields) Logger {
	return globalLogger.WithFields(fields)
}

func SetLevel(level Level) {
	globalLogger.SetLevel(level)
}
