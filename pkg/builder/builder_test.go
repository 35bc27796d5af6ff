package builder_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/joeydtaylor/arraysaver/pkg/builder"
)

func TestSaveLoadThroughBuilder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.csv")
	m := builder.Matrix[float32]{{1.5, 2, 3}, {4, 5, 6.25}}

	if err := builder.Save(path, m, 2, 3, builder.WithQuiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "1,5;2;3\n4;5;6,25\n" {
		t.Fatalf("unexpected file contents %q", raw)
	}

	got, row, col, err := builder.Load[float32](path, builder.WithQuiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if row != 2 || col != 3 || got[1][2] != 6.25 {
		t.Fatalf("unexpected load result %v (%d x %d)", got, row, col)
	}
}

func TestBuilderLoggerReceivesConfirmation(t *testing.T) {
	var buf bytes.Buffer
	logger := builder.NewLogger(builder.LoggerWithWriter(&buf), builder.LoggerWithLevel("debug"))
	path := filepath.Join(t.TempDir(), "v.csv")

	if err := builder.SaveVector(path, builder.Vector[int]{1, 2}, 2, builder.WithLogger(logger)); err != nil {
		t.Fatalf("SaveVector: %v", err)
	}
	if !strings.Contains(buf.String(), "has been saved") {
		t.Fatalf("expected confirmation in log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), builder.LogSchemaID) {
		t.Fatalf("expected schema id in log, got %q", buf.String())
	}
}

func TestBuilderShapes(t *testing.T) {
	dir := t.TempDir()
	arr := [2][2]int{{1, 2}, {3, 4}}

	if err := builder.SaveArray[int](filepath.Join(dir, "a.csv"), &arr, builder.WithQuiet()); err != nil {
		t.Fatalf("SaveArray: %v", err)
	}
	if err := builder.SaveFlat(filepath.Join(dir, "f.csv"), []int{1, 2, 3, 4}, 2, 2, builder.WithQuiet()); err != nil {
		t.Fatalf("SaveFlat: %v", err)
	}
	a, _ := os.ReadFile(filepath.Join(dir, "a.csv"))
	f, _ := os.ReadFile(filepath.Join(dir, "f.csv"))
	if !bytes.Equal(a, f) {
		t.Fatalf("array and flat outputs differ: %q vs %q", a, f)
	}

	if err := builder.SaveDense(filepath.Join(dir, "d.csv"), mat.NewDense(2, 2, []float64{1, 2, 3, 4}), builder.WithQuiet()); err != nil {
		t.Fatalf("SaveDense: %v", err)
	}
	d, _ := os.ReadFile(filepath.Join(dir, "d.csv"))
	if !bytes.Equal(a, d) {
		t.Fatalf("array and dense outputs differ: %q vs %q", a, d)
	}
}

func TestBuilderOpenFailure(t *testing.T) {
	_, _, _, err := builder.Load[int](filepath.Join(t.TempDir(), "missing.csv"), builder.WithQuiet())
	if !errors.Is(err, builder.ErrFileNotOpened) {
		t.Fatalf("expected ErrFileNotOpened, got %v", err)
	}
	var ioErr *builder.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "open" {
		t.Fatalf("expected *IOError open, got %#v", err)
	}
}

func TestObjectStoreNotConfigured(t *testing.T) {
	store := builder.ObjectStoreWithClientAndBucket[int](nil, "", builder.WithQuiet())
	err := store.Save(context.Background(), "k", builder.Matrix[int]{{1}}, 1, 1)
	if !errors.Is(err, builder.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFormatAndParseElement(t *testing.T) {
	if got := builder.FormatElement(0.5, true); got != "0,5" {
		t.Fatalf("expected 0,5, got %q", got)
	}
	v, err := builder.ParseElement[float64]("0,5")
	if err != nil || v != 0.5 {
		t.Fatalf("expected 0.5, got %v (%v)", v, err)
	}
	if builder.DetectCompression("x.csv.gz") != builder.CompressionGzip {
		t.Fatalf("expected gzip detection")
	}
}
