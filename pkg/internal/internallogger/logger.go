package internallogger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/joeydtaylor/arraysaver/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption adjusts the logger before it is built.
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	level       zapcore.Level
	development bool
	encoding    string // "json" or "console"
	output      io.Writer
	fields      map[string]interface{}
	callerSkip  int
}

// ZapLoggerAdapter implements types.Logger on top of zap.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerDepth int
	callerOn    bool
	sinks       map[string]sinkEntry
}

// NewLogger builds a logger writing JSON lines to stdout at info level unless
// options say otherwise.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	cfg := loggerConfig{
		level:      zapcore.InfoLevel,
		encoding:   "json",
		output:     os.Stdout,
		fields:     map[string]interface{}{logschema.FieldSchema: logschema.SchemaID},
		callerSkip: 2,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	encConfig := standardEncoderConfig()
	var enc zapcore.Encoder
	if cfg.encoding == "console" {
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encConfig)
	} else {
		enc = zapcore.NewJSONEncoder(encConfig)
	}

	atomicLevel := zap.NewAtomicLevelAt(cfg.level)
	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(cfg.output)), atomicLevel),
		baseFields:  fieldsFromMap(cfg.fields),
		callerDepth: cfg.callerSkip,
		callerOn:    cfg.development,
		sinks:       make(map[string]sinkEntry),
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()
	return z
}

func fieldsFromMap(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if key != "" {
			out = append(out, zap.Any(key, value))
		}
	}
	return out
}

// standardEncoderConfig maps zap's entry keys onto logschema field names and
// stamps entries in UTC.
func standardEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       logschema.FieldTimestamp,
		LevelKey:      logschema.FieldLevel,
		NameKey:       logschema.FieldLogger,
		CallerKey:     logschema.FieldCaller,
		MessageKey:    logschema.FieldMessage,
		StacktraceKey: logschema.FieldStack,
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

var defaultLogger = sync.OnceValue(func() *ZapLoggerAdapter {
	return NewLogger(LoggerWithConsole())
})

// Default returns the process-wide console logger used when a caller does not
// supply one. It is created on first use.
func Default() *ZapLoggerAdapter {
	return defaultLogger()
}
