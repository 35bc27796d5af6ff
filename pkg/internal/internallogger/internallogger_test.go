package internallogger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeydtaylor/arraysaver/pkg/internal/internallogger"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	logger := internallogger.NewLogger()
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected InfoLevel, got %v", got)
	}
}

func TestNewLogger_WithLevel(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))
	if got := logger.GetLevel(); got != types.DebugLevel {
		t.Fatalf("expected DebugLevel, got %v", got)
	}

	logger = internallogger.NewLogger(internallogger.LoggerWithLevel("unknown"))
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected InfoLevel on unknown level, got %v", got)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := internallogger.NewLogger(internallogger.LoggerWithWriter(&buf))
	logger.SetLevel(types.ErrorLevel)
	if got := logger.GetLevel(); got != types.ErrorLevel {
		t.Fatalf("expected ErrorLevel, got %v", got)
	}

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := internallogger.NewLogger(
		internallogger.LoggerWithWriter(&buf),
		internallogger.LoggerWithFields(map[string]interface{}{"service": "saver"}),
	)

	logger.Info("The file m.csv has been saved", logschema.FieldPath, "m.csv", logschema.FieldRows, 2)

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if rec[logschema.FieldMessage] != "The file m.csv has been saved" {
		t.Fatalf("unexpected message: %v", rec[logschema.FieldMessage])
	}
	if rec[logschema.FieldPath] != "m.csv" || rec[logschema.FieldRows] != float64(2) {
		t.Fatalf("missing fields: %v", rec)
	}
	if rec["service"] != "saver" || rec[logschema.FieldSchema] != logschema.SchemaID {
		t.Fatalf("missing base fields: %v", rec)
	}
}

func TestLogger_ConsoleEncoding(t *testing.T) {
	var buf bytes.Buffer
	logger := internallogger.NewLogger(
		internallogger.LoggerWithWriter(&buf),
		internallogger.LoggerWithConsole(),
	)
	logger.Info("The file out.csv has been saved")

	line := buf.String()
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "The file out.csv has been saved") {
		t.Fatalf("unexpected console line %q", line)
	}
}

func TestLogger_AddRemoveListSinks(t *testing.T) {
	logger := internallogger.NewLogger(
		internallogger.LoggerWithLevel("debug"),
		internallogger.LoggerWithWriter(&bytes.Buffer{}),
	)

	path := filepath.Join(t.TempDir(), "logs", "saver.log")
	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{"path": path}}); err != nil {
		t.Fatalf("AddSink(file) error: %v", err)
	}
	if err := logger.AddSink("stdout", types.SinkConfig{Type: "stdout"}); err != nil {
		t.Fatalf("AddSink(stdout) error: %v", err)
	}

	sinks, err := logger.ListSinks()
	if err != nil {
		t.Fatalf("ListSinks error: %v", err)
	}
	if len(sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(sinks))
	}

	if err := logger.RemoveSink("stdout"); err != nil {
		t.Fatalf("RemoveSink error: %v", err)
	}

	logger.Debug("to file")
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("expected entry in file sink, got %q", data)
	}

	if err := logger.RemoveSink("missing"); err == nil {
		t.Fatalf("expected error removing missing sink")
	}
	if err := logger.RemoveSink("file"); err != nil {
		t.Fatalf("RemoveSink(file) error: %v", err)
	}
}

func TestLogger_AddSinkInvalidConfig(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithWriter(&bytes.Buffer{}))

	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{}}); err == nil {
		t.Fatalf("expected error for missing file path")
	}
	if err := logger.AddSink("network", types.SinkConfig{Type: "network"}); err == nil {
		t.Fatalf("expected error for unsupported sink type")
	}
}

func TestLogger_LogHandlesOddKeys(t *testing.T) {
	logger := internallogger.NewLogger(
		internallogger.LoggerWithLevel("debug"),
		internallogger.LoggerWithWriter(&bytes.Buffer{}),
	)

	logger.Log(types.InfoLevel, "odd keys", "key", "value", "orphan")
	logger.Log(types.InfoLevel, "non-string key", 123, "value")
}

func TestLogger_OptionsCoverage(t *testing.T) {
	logger := internallogger.NewLogger(
		internallogger.LoggerWithDevelopment(true),
		internallogger.ZapAdapterWithCallerSkip(1),
		internallogger.LoggerWithSchema("custom.v1"),
		internallogger.LoggerWithWriter(&bytes.Buffer{}),
	)
	logger.Info("options")
}
