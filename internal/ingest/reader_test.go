package ingest

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/euroeval-report/internal/output"
)

const sampleJSONL = `{"model":"org/a","dataset":"d1","dataset_languages":["fi"],"results":{"total":{"test_f1":80}}}

this is not json
{"model":"org/b-failed","dataset":"d1","dataset_languages":["fi"],"results":{"total":{"test_f1":99}}}
{"model":"org/c","dataset":"d2","dataset_languages":["sv"],"results":{"total":{"test_f1":70}}}
`

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.Logger
	output.SetLogger(output.NewLogger(&buf, "text", slog.LevelDebug))
	t.Cleanup(func() { output.SetLogger(prev) })
	return &buf
}

func TestReader_SkipsBadLinesAndFailedRuns(t *testing.T) {
	logs := captureLogs(t)
	r := &Reader{FailedMarker: "failed"}

	records, stats, err := r.Read(strings.NewReader(sampleJSONL), "results.jsonl")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "org/a", records[0].Model)
	assert.Equal(t, "org/c", records[1].Model)
	assert.Equal(t, Stats{Lines: 5, Parsed: 2, Skipped: 1, Failed: 1}, stats)

	assert.Contains(t, logs.String(), "Skipping unparsable line")
	assert.Contains(t, logs.String(), "results.jsonl:3")
}

func TestReader_EmptyMarkerKeepsEverything(t *testing.T) {
	captureLogs(t)
	records, _, err := (&Reader{}).Read(strings.NewReader(sampleJSONL), "x")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func writeCompressed(t *testing.T, path string, wrap func(io.Writer) io.WriteCloser) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	w := wrap(f)
	_, err = io.WriteString(w, sampleJSONL)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestLoad_Compressed(t *testing.T) {
	captureLogs(t)
	dir := t.TempDir()

	gzPath := filepath.Join(dir, "results.jsonl.gz")
	writeCompressed(t, gzPath, func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) })

	zstPath := filepath.Join(dir, "results.jsonl.zst")
	writeCompressed(t, zstPath, func(w io.Writer) io.WriteCloser {
		enc, err := zstd.NewWriter(w)
		require.NoError(t, err)
		return enc
	})

	plainPath := filepath.Join(dir, "results.jsonl")
	require.NoError(t, os.WriteFile(plainPath, []byte(sampleJSONL), 0o644))

	r := &Reader{FailedMarker: "failed"}
	for _, p := range []string{gzPath, zstPath, plainPath} {
		records, stats, err := r.Load(p)
		require.NoError(t, err, p)
		assert.Len(t, records, 2, p)
		assert.Equal(t, 1, stats.Skipped, p)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := (&Reader{}).Load(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err) || strings.Contains(err.Error(), "failed to open"))
}

func TestReader_ReadRawKeepsLinesVerbatim(t *testing.T) {
	captureLogs(t)
	in := "{\"model\":\"a\",\"dataset\":\"d\",\"results\":{\"total\":{\"test_f1_se\":NaN,\"test_f1\":1}}}\nbroken\n"

	lines, stats, err := (&Reader{}).ReadRaw(strings.NewReader(in), "x")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, `{"model":"a","dataset":"d","results":{"total":{"test_f1_se":NaN,"test_f1":1}}}`, string(lines[0]))
	assert.Equal(t, 1, stats.Skipped)
}

func TestLoadBestLRs(t *testing.T) {
	captureLogs(t)
	path := filepath.Join(t.TempDir(), "best_lrs.jsonl")
	content := `{"dataset":"scala-fi","model":"org/m","language":"fi","best_lr":"5e-5","mean_f1":72}
not json
{"dataset":"suc3","model":"org/m","language":"sv","best_lr":"1e-5","mean_f1":60.5}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadBestLRs(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "scala-fi", got[0].Dataset)
	assert.Equal(t, "5e-5", got[0].BestLR)
	assert.Equal(t, 60.5, got[1].MeanF1)
}
