// Package telemetry writes sweep results as CSV for offline analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// SweepRecord is one row of a cooling-rate sweep.
type SweepRecord struct {
	Width       int     `csv:"width"`
	Height      int     `csv:"height"`
	CoolingRate float64 `csv:"cooling_rate"`
	Steps       int     `csv:"steps"`
	MeanHeat    float64 `csv:"mean_heat"`
	LitFraction float64 `csv:"lit_fraction"`
	FlameHeight int     `csv:"flame_height"`
}

// Output appends CSV records to a single file, writing the header once.
// A nil Output discards everything, so callers can skip the disabled check.
type Output struct {
	file          *os.File
	headerWritten bool
}

// New creates the output file, making parent directories as needed.
// Returns nil if path is empty (output disabled).
func New(path string) (*Output, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Output{file: f}, nil
}

// Write appends a batch of records. The first call emits the CSV header,
// later calls emit rows only.
func (o *Output) Write(records []SweepRecord) error {
	if o == nil || len(records) == 0 {
		return nil
	}

	if !o.headerWritten {
		if err := gocsv.Marshal(records, o.file); err != nil {
			return fmt.Errorf("writing records: %w", err)
		}
		o.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, o.file); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (o *Output) Close() error {
	if o == nil || o.file == nil {
		return nil
	}
	return o.file.Close()
}
