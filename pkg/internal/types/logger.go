package types

// LogLevel orders log severities; higher is more severe.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	DPanicLevel
	PanicLevel
	FatalLevel
)

// SinkType names where a logger sink writes.
type SinkType string

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

// SinkConfig describes an additional logger output.
type SinkConfig struct {
	Type   string                 // "file" or "stdout"
	Config map[string]interface{} // per-type settings, e.g. {"path": "/var/log/saver.log"}
}

// Logger is the structured logger every component reports through.
type Logger interface {
	GetLevel() LogLevel
	SetLevel(LogLevel)
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	DPanic(msg string, keysAndValues ...interface{})
	Panic(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
	Flush() error
	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}
