package engine

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/euroeval-report/internal/ingest"
	"github.com/daryltucker/euroeval-report/internal/output"
)

// Merge concatenates the valid records of inputs into out, in argument order.
// Lines are copied verbatim; unparsable lines are dropped with a warning.
func Merge(ctx context.Context, inputs []string, out string) error {
	perFile := make([][][]byte, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := ingest.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			lines, stats, err := (&ingest.Reader{}).ReadRaw(f, path)
			if err != nil {
				return err
			}
			output.Logger.Info("Read results", "file", path, "records", stats.Parsed, "skipped", stats.Skipped)
			perFile[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	if err := output.WriteFileAtomic(out, func(w io.Writer) error {
		for _, lines := range perFile {
			for _, line := range lines {
				if _, err := w.Write(line); err != nil {
					return err
				}
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				total++
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	output.Logger.Info("Merged results", "file", out, "inputs", len(inputs), "records", total)
	return nil
}
