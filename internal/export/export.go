// Package export writes the artifact set for a generation run: the
// category-partitioned test case collections, the combined collection,
// the traceability matrix, the coverage report and the validation error
// log. Artifacts render in parallel into a staging directory and are
// published only when the whole set succeeded, so consumers never see a
// partial set.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"wifgen/internal/coverage"
	"wifgen/internal/logging"
	"wifgen/internal/req"
	"wifgen/internal/synth"
	"wifgen/internal/validate"
)

// Artifact file names, fixed per run.
const (
	FileSystemTestCases     = "test_cases_system.json"
	FileSoftwareTestCases   = "test_cases_software.json"
	FileDiagnosticTestCases = "test_cases_diagnostic.json"
	FileAllTestCases        = "test_cases_all.json"
	FileMatrixCSV           = "traceability_matrix.csv"
	FileMatrixMarkdown      = "traceability_matrix.md"
	FileCoverageReport      = "coverage_report.md"
	FileErrorLog            = "validation_errors.log"
)

// Bundle is everything a run produced that the artifact set records.
// Coverage must be non-nil; the remaining fields may be empty.
type Bundle struct {
	Source    string
	Store     *req.Store
	TestCases []*synth.TestCase
	Coverage  *coverage.Report
	Errors    []validate.Error
}

type artifact struct {
	name   string
	render func(b *Bundle) ([]byte, error)
}

func artifacts() []artifact {
	return []artifact{
		{FileSystemTestCases, renderCategory(req.System)},
		{FileSoftwareTestCases, renderCategory(req.Software)},
		{FileDiagnosticTestCases, renderCategory(req.Diagnostic)},
		{FileAllTestCases, renderAll},
		{FileMatrixCSV, renderMatrix(matrixCSV)},
		{FileMatrixMarkdown, renderMatrix(matrixMarkdown)},
		{FileCoverageReport, renderCoverage},
		{FileErrorLog, renderErrorLog},
	}
}

// Files lists every artifact name in the set.
func Files() []string {
	set := artifacts()
	names := make([]string, len(set))
	for i, a := range set {
		names[i] = a.name
	}
	return names
}

// Write renders the full artifact set into dir. Artifacts are staged in
// a temporary directory inside dir and renamed into place only after
// every render and write succeeded; on failure the staging directory is
// removed and dir keeps whatever it held before.
func Write(dir string, b *Bundle) error {
	log := logging.New("export")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	stage, err := os.MkdirTemp(dir, ".stage-")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(stage)

	set := artifacts()

	var g errgroup.Group
	g.SetLimit(4)
	for _, a := range set {
		g.Go(func() error {
			data, err := a.render(b)
			if err != nil {
				return fmt.Errorf("render %s: %w", a.name, err)
			}
			if err := os.WriteFile(filepath.Join(stage, a.name), data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", a.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range set {
		if err := os.Rename(filepath.Join(stage, a.name), filepath.Join(dir, a.name)); err != nil {
			return fmt.Errorf("publish %s: %w", a.name, err)
		}
	}
	log.Info("artifact set written", "dir", dir, "files", len(set))
	return nil
}
