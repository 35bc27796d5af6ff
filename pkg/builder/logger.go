package builder

import (
	"io"

	internalLogger "github.com/joeydtaylor/arraysaver/pkg/internal/internallogger"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

type Logger = types.Logger

type LoggerOption = internalLogger.LoggerOption

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = types.FileSink
	StdoutSink SinkType = types.StdoutSink
)

// NewLogger builds a zap-backed logger; JSON to stdout at info level by default.
func NewLogger(options ...LoggerOption) Logger {
	return internalLogger.NewLogger(options...)
}

// DefaultLogger returns the console logger used when no logger is configured.
func DefaultLogger() Logger {
	return internalLogger.Default()
}

// LoggerWithLevel configures the logger to use the specified log level
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithDevelopment enables or disables development mode
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}

// LoggerWithConsole switches to the human-readable console encoder.
func LoggerWithConsole() LoggerOption {
	return internalLogger.LoggerWithConsole()
}

// LoggerWithWriter sends log lines to w instead of stdout.
func LoggerWithWriter(w io.Writer) LoggerOption {
	return internalLogger.LoggerWithWriter(w)
}

// Log schema constants for the standard arraysaver log format.
const (
	LogSchemaID    = logschema.SchemaID
	LogSchemaField = logschema.FieldSchema
)

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

// Export log levels to be accessible under the builder package
const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)
