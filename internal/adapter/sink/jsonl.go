package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"edgeneuro/internal/domain"
)

// JSONLSink writes a dataset as newline-delimited JSON, one record per line.
// The target file is overwritten on every run.
type JSONLSink struct {
	path string
}

// NewJSONLSink returns a sink targeting path.
func NewJSONLSink(path string) *JSONLSink {
	return &JSONLSink{path: path}
}

// Path returns the sink's target file.
func (s *JSONLSink) Path() string { return s.path }

// Write persists records in order and returns the number written.
func (s *JSONLSink) Write(ctx context.Context, runID string, records []domain.TrainingRecord) (int, error) {
	f, err := os.Create(s.path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	written := 0
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			f.Close()
			return written, fmt.Errorf("encode record %d: %w", written, err)
		}
		written++
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return written, fmt.Errorf("flush %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return written, fmt.Errorf("close %s: %w", s.path, err)
	}
	return written, nil
}

// ReadJSONL loads a previously written dataset, one record per line.
// Blank lines are skipped.
func ReadJSONL(path string) ([]domain.TrainingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []domain.TrainingRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec domain.TrainingRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return records, nil
}
