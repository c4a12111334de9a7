package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/daryltucker/euroeval-report/internal/model"
	"github.com/daryltucker/euroeval-report/internal/output"
)

// LoadBestLRs reads a best learning rate hand-off file. Bad lines are skipped
// with a warning, like result records.
func LoadBestLRs(path string) ([]model.BestLR, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []model.BestLR
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec model.BestLR
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			output.Logger.Warn("Skipping unparsable line", "file", path, "line", n, "error", err)
			continue
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return out, nil
}
