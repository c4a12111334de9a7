package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/daryltucker/euroeval-report/internal/output"
)

// maxLineSize bounds a single record; raw per-example scores make lines long.
const maxLineSize = 64 << 20

// Stats summarises one read.
type Stats struct {
	Lines   int
	Parsed  int
	Skipped int
	Failed  int
}

// Reader reads result records from JSONL input.
type Reader struct {
	// FailedMarker excludes records whose model contains it. Empty disables the filter.
	FailedMarker string
}

// Read parses every line of src. Unparsable lines are logged and skipped.
// name is only used in log messages and errors.
func (r *Reader) Read(src io.Reader, name string) ([]model.ResultRecord, Stats, error) {
	var records []model.ResultRecord
	stats, err := r.scan(src, name, func(_ []byte, rec *model.ResultRecord) {
		records = append(records, *rec)
	})
	return records, stats, err
}

// ReadRaw is Read but returns the accepted lines verbatim, for re-writing
// results without re-encoding them.
func (r *Reader) ReadRaw(src io.Reader, name string) ([][]byte, Stats, error) {
	var lines [][]byte
	stats, err := r.scan(src, name, func(line []byte, _ *model.ResultRecord) {
		lines = append(lines, line)
	})
	return lines, stats, err
}

func (r *Reader) scan(src io.Reader, name string, keep func(line []byte, rec *model.ResultRecord)) (Stats, error) {
	var stats Stats

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		stats.Lines++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		line = bytes.Clone(line)

		rec, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Source, pe.Line = name, stats.Lines
			}
			output.Logger.Warn("Skipping unparsable line", "file", name, "line", stats.Lines, "error", err)
			stats.Skipped++
			continue
		}

		if r.FailedMarker != "" && strings.Contains(rec.Model, r.FailedMarker) {
			output.Logger.Debug("Skipping failed run", "file", name, "line", stats.Lines, "model", rec.Model)
			stats.Failed++
			continue
		}

		keep(line, rec)
		stats.Parsed++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return stats, nil
}

// Load opens path (see Open) and reads it.
func (r *Reader) Load(path string) ([]model.ResultRecord, Stats, error) {
	f, err := Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()

	records, stats, err := r.Read(f, path)
	if err != nil {
		return nil, stats, err
	}
	output.Logger.Info("Loaded results",
		"file", path,
		"records", stats.Parsed,
		"skipped", stats.Skipped,
		"failed_runs", stats.Failed,
	)
	return records, stats, nil
}

// Open returns a reader for path. "-" is stdin; .gz and .zst files are
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open zstd stream %s: %w", path, err)
		}
		rc := zr.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
