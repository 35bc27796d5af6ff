package internallogger

import (
	"strings"

	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

var levelNames = map[string]types.LogLevel{
	"debug":  types.DebugLevel,
	"info":   types.InfoLevel,
	"warn":   types.WarnLevel,
	"error":  types.ErrorLevel,
	"dpanic": types.DPanicLevel,
	"panic":  types.PanicLevel,
	"fatal":  types.FatalLevel,
}

// parseLogLevel maps a level name to types.LogLevel; unknown names mean info.
func parseLogLevel(levelStr string) types.LogLevel {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(levelStr))]; ok {
		return lvl
	}
	return types.InfoLevel
}

// ConvertLevel converts a types.LogLevel to a zap level.
func ConvertLevel(level types.LogLevel) zapcore.Level {
	switch level {
	case types.DebugLevel:
		return zapcore.DebugLevel
	case types.InfoLevel:
		return zapcore.InfoLevel
	case types.WarnLevel:
		return zapcore.WarnLevel
	case types.ErrorLevel:
		return zapcore.ErrorLevel
	case types.DPanicLevel:
		return zapcore.DPanicLevel
	case types.PanicLevel:
		return zapcore.PanicLevel
	case types.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func convertZapLevel(level zapcore.Level) types.LogLevel {
	if level < zapcore.DebugLevel || level > zapcore.FatalLevel {
		return types.InfoLevel
	}
	return types.LogLevel(level - zapcore.DebugLevel)
}
