package saver

import (
	"github.com/joeydtaylor/arraysaver/pkg/internal/internallogger"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

var componentMetadata = types.ComponentMetadata{Type: "FILE_SAVER", Name: "saver"}

// notifyLoggers sends msg to the configured loggers, or to the default
// console logger when none were given.
func notifyLoggers(o types.CodecOptions, level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if o.Quiet {
		return
	}
	loggers := o.Loggers
	if len(loggers) == 0 {
		loggers = []types.Logger{internallogger.Default()}
	}

	keysAndValues = append(keysAndValues, logschema.FieldComponent, componentMetadata)
	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		default:
			logger.Error(msg, keysAndValues...)
		}
	}
}
