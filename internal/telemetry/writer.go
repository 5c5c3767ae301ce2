// Package telemetry appends per-tick population reports to CSV for offline
// balance analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/udisondev/hitsquads/internal/population"
)

// FileName is the CSV file created inside the telemetry directory.
const FileName = "population.csv"

// Record is one CSV row.
type Record struct {
	Encounter        string `csv:"encounter"`
	Tick             uint64 `csv:"tick"`
	Time             string `csv:"time"`
	Ceiling          int    `csv:"ceiling"`
	Registered       int    `csv:"registered"`
	Engageable       int    `csv:"engageable"`
	Stuck            int    `csv:"stuck"`
	CulledDead       int    `csv:"culled_dead"`
	CulledOutOfRange int    `csv:"culled_out_of_range"`
	SpawnAttempted   bool   `csv:"spawn_attempted"`
	SpawnKind        string `csv:"spawn_kind"`
	Spawned          int    `csv:"spawned"`
	SpawnFailure     string `csv:"spawn_failure"`
}

// NewRecord flattens a tick report.
func NewRecord(encounterID string, r population.TickReport) Record {
	rec := Record{
		Encounter:        encounterID,
		Tick:             r.Tick,
		Time:             r.Time.UTC().Format(time.RFC3339Nano),
		Ceiling:          r.Ceiling,
		Registered:       r.Registered,
		Engageable:       r.Engageable,
		Stuck:            r.Stuck,
		CulledDead:       r.CulledDead,
		CulledOutOfRange: r.CulledOutOfRange,
		SpawnAttempted:   r.SpawnAttempted,
		Spawned:          r.Spawned,
		SpawnFailure:     r.SpawnFailure,
	}
	if r.SpawnAttempted {
		rec.SpawnKind = r.SpawnKind.String()
	}
	return rec
}

// Writer appends records to <dir>/population.csv. A nil *Writer discards.
type Writer struct {
	file          *os.File
	headerWritten bool
}

// NewWriter opens the CSV in dir, creating both as needed.
// Returns nil if dir is empty (telemetry disabled).
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return &Writer{file: f, headerWritten: info.Size() > 0}, nil
}

// Write appends one tick report.
func (w *Writer) Write(encounterID string, r population.TickReport) error {
	if w == nil {
		return nil
	}

	records := []Record{NewRecord(encounterID, r)}

	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Path returns the CSV file path.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.file.Name()
}

// Close closes the CSV file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	return w.file.Close()
}
