package internallogger

import (
	"io"

	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

// LoggerWithLevel sets the minimum level ("debug", "info", "warn", "error", ...).
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.level = ConvertLevel(parseLogLevel(levelStr))
	}
}

// LoggerWithDevelopment turns on caller annotation.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.development = dev
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(cfg *loggerConfig) {
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.fields[key] = value
		}
	}
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.fields[logschema.FieldSchema] = schema
	}
}

// LoggerWithConsole switches to zap's human-readable console encoding.
func LoggerWithConsole() LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.encoding = "console"
	}
}

// LoggerWithWriter sends the base output to w instead of stdout.
func LoggerWithWriter(w io.Writer) LoggerOption {
	return func(cfg *loggerConfig) {
		if w != nil {
			cfg.output = w
		}
	}
}

// ZapAdapterWithCallerSkip skips extra caller frames.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.callerSkip += skip
	}
}
