// Package store is the SQLite run archive. Every generation run is
// persisted as one runs row plus its test cases (full JSON documents)
// and validation findings, so past runs can be listed and inspected
// without re-running the pipeline.
package store

import (
	"github.com/google/uuid"

	"wifgen/internal/synth"
	"wifgen/internal/validate"
)

// DefaultDBPath is the default relative path for the SQLite run archive.
// Resolve against cwd; Open() creates the parent dir (e.g. .wifgen).
const DefaultDBPath = ".wifgen/wifgen.db"

// Run is the summary record of one generation run.
type Run struct {
	ID           string
	StartedAt    string
	FinishedAt   string
	Source       string
	Requirements int
	TestCases    int
	Criticals    int
	Warnings     int
	CoveragePct  float64
	Complete     bool
	Status       string
}

// NewRun starts a run record with a fresh id and start timestamp.
// The caller fills the tallies and final status before SaveRun.
func NewRun(source string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		StartedAt: nowUTC(),
		Source:    source,
	}
}

// RunDetail is one archived run with its test cases and findings.
type RunDetail struct {
	Run       *Run
	TestCases []*synth.TestCase
	Errors    []validate.Error
}

// Archive is the run persistence facade. The engine and CLI use only
// this interface; the implementation is SQLite.
type Archive interface {
	SaveRun(run *Run, tcs []*synth.TestCase, errs []validate.Error) error
	ListRuns() ([]*Run, error)
	GetRun(id string) (*RunDetail, error)
	Close() error
}
