package output

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_WritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.Write(model.BestLR{Dataset: "scala-fi", Model: "TurkuNLP/bert", Language: "fi", BestLR: "5e-5", MeanF1: 72}))
	require.NoError(t, w.Write(model.BestLR{Dataset: "Å<&>", Model: "m", Language: "sv", BestLR: "1e-5", MeanF1: 1.5}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"dataset":"scala-fi","model":"TurkuNLP/bert","language":"fi","best_lr":"5e-5","mean_f1":72}`, lines[0])
	assert.Contains(t, lines[1], `"dataset":"Å<&>"`)
}

func TestCSVWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Write(model.BestLR{Dataset: "d", Model: "m", Language: "fi", BestLR: "5e-5", MeanF1: 72.123456}))

	assert.Equal(t, "dataset,model,language,best_lr,mean_f1\nd,m,fi,5e-5,72.1235\n", buf.String())
}

func TestWriteFileAtomic_ReplacesTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "tables.tex")

	require.NoError(t, WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	}))
	require.NoError(t, WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "second")
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFileAtomic_KeepsOldContentOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.tex")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be cleaned up")
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "json", slog.LevelInfo).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	l := NewLogger(&buf, "text", slog.LevelWarn)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
