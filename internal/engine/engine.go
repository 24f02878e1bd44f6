// Package engine drives the generation pipeline end to end: load the
// requirements workbook, synthesize test cases, validate them, compute
// coverage, export the artifact set and archive the run. The CLI
// commands are thin wrappers over Run.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"wifgen/internal/a2l"
	"wifgen/internal/coverage"
	"wifgen/internal/export"
	"wifgen/internal/format"
	"wifgen/internal/logging"
	"wifgen/internal/req"
	"wifgen/internal/store"
	"wifgen/internal/synth"
	"wifgen/internal/validate"
	"wifgen/internal/workbook"
)

// Run archive status values.
const (
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Config controls one pipeline run.
type Config struct {
	Input      string        // requirements workbook: CSV directory or YAML/JSON file
	OutputDir  string        // artifact directory
	A2LPath    string        // optional A2L file for calibration reference checks
	DBPath     string        // run archive path; store.DefaultDBPath when empty
	NoArchive  bool          // skip the run archive
	SkipExport bool          // check only: no artifacts and no archive
	Archive    store.Archive // preopened archive; nil means open DBPath
}

// Check is one line of the final checklist.
type Check struct {
	Passed bool
	Name   string
}

// Result is the outcome of a pipeline run.
type Result struct {
	RunID        string // empty unless the run was archived
	Requirements int
	TestCases    []*synth.TestCase
	Errors       []validate.Error
	Criticals    int
	Warnings     int
	Coverage     *coverage.Report
	Valid        bool // zero CRITICAL findings from validation
	Checklist    []Check
	Success      bool
	Report       string // rendered checklist and verdict
}

// Run executes the pipeline. A workbook that yields zero requirements
// is the only fatal input condition; everything downstream degrades to
// a failed Result instead.
func Run(cfg Config) (*Result, error) {
	log := logging.New("engine")

	var run *store.Run
	if !cfg.SkipExport && !cfg.NoArchive {
		run = store.NewRun(cfg.Input)
	}

	wb, err := workbook.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("load requirements: %w", err)
	}
	loaded := req.FromWorkbook(wb)
	for _, w := range loaded.Warnings {
		log.Warn("requirements load", "detail", w)
	}
	if loaded.Store.Len() == 0 {
		log.Error("no requirements loaded", "input", cfg.Input)
		return nil, errors.New("no requirements loaded")
	}
	log.Info("requirements loaded",
		"total", loaded.Store.Len(),
		"system", loaded.Counts[req.System],
		"software", loaded.Counts[req.Software],
		"diagnostic", loaded.Counts[req.Diagnostic],
		"calibration_params", loaded.CalCount)

	if cfg.A2LPath != "" {
		names, err := a2l.Scan(cfg.A2LPath)
		if err != nil {
			log.Warn("a2l scan failed", "path", cfg.A2LPath, "err", err)
		} else {
			for _, n := range names {
				loaded.Store.AddCalibrationName(n)
			}
			log.Info("a2l references loaded", "path", cfg.A2LPath, "count", len(names))
		}
	}

	tcs := synth.New().All(loaded.Store)
	log.Info("test cases generated", "count", len(tcs))

	valid, verrs := validate.New(loaded.Store).All(tcs)

	rep := coverage.Compute(loaded.Store, tcs)
	log.Info("coverage computed",
		"requirements", rep.TotalRequirements,
		"covered", rep.CoveredRequirements,
		"test_cases", rep.TotalTestCases,
		"coverage", format.FmtPercent(rep.Percentage))
	if !rep.IsComplete() {
		for _, id := range rep.Uncovered {
			log.Error("requirement uncovered", "requirement", id)
		}
		verrs = append(verrs, rep.UncoveredErrors()...)
	}

	criticals, warnings := validate.Tally(verrs)

	artifactsOK := false
	if !cfg.SkipExport {
		b := &export.Bundle{
			Source:    cfg.Input,
			Store:     loaded.Store,
			TestCases: tcs,
			Coverage:  rep,
			Errors:    verrs,
		}
		if err := export.Write(cfg.OutputDir, b); err != nil {
			log.Error("artifact export failed", "dir", cfg.OutputDir, "err", err)
		} else {
			artifactsOK = true
		}
	}

	res := &Result{
		Requirements: loaded.Store.Len(),
		TestCases:    tcs,
		Errors:       verrs,
		Criticals:    criticals,
		Warnings:     warnings,
		Coverage:     rep,
		Valid:        valid,
	}

	checks := []Check{
		{categoryCovered(loaded.Store, tcs, req.System), "Every SYS_WIF_XXX has ≥1 test case"},
		{categoryCovered(loaded.Store, tcs, req.Software), "Every SW_WIF_XXX has ≥1 test case"},
		{categoryCovered(loaded.Store, tcs, req.Diagnostic), "Every DIAG_WIF_XXX has ≥1 test case"},
		{valid, "All test case IDs follow naming convention"},
		{valid, "All ASIL levels match source requirements"},
		{rep.IsComplete(), "Traceability matrix shows 100% coverage"},
		{criticals == 0, "No critical validation errors"},
	}
	if !cfg.SkipExport {
		checks = append(checks, Check{artifactsOK, "JSON files are valid (parseable)"})
	}
	res.Checklist = checks

	allPassed := true
	for _, c := range checks {
		if !c.Passed {
			allPassed = false
		}
	}
	res.Success = allPassed && rep.IsComplete()

	if run != nil {
		if err := archiveRun(cfg, run, res, log); err != nil {
			// Archive failure never fails the run; the artifacts on disk
			// are the primary output.
			log.Warn("run archive failed", "err", err)
		}
	}

	res.Report = renderReport(res)
	if res.Success {
		log.Info("generation complete", "test_cases", len(tcs), "run", res.RunID)
	} else {
		log.Error("generation failed", "criticals", criticals, "warnings", warnings)
	}
	return res, nil
}

// categoryCovered reports whether the category has at least one test
// case, or has no requirements to cover.
func categoryCovered(store *req.Store, tcs []*synth.TestCase, c req.Category) bool {
	for _, tc := range tcs {
		if tc.Category == c {
			return true
		}
	}
	return len(store.ByCategory(c)) == 0
}

// archiveRun persists the finished run and records its id on the Result.
func archiveRun(cfg Config, run *store.Run, res *Result, log *slog.Logger) error {
	arch := cfg.Archive
	if arch == nil {
		path := cfg.DBPath
		if path == "" {
			path = store.DefaultDBPath
		}
		s, err := store.Open(path)
		if err != nil {
			return err
		}
		defer s.Close()
		arch = s
	}

	run.Requirements = res.Requirements
	run.TestCases = len(res.TestCases)
	run.Criticals = res.Criticals
	run.Warnings = res.Warnings
	run.CoveragePct = res.Coverage.Percentage
	run.Complete = res.Coverage.IsComplete()
	run.Status = StatusFailed
	if res.Success {
		run.Status = StatusComplete
	}

	if err := arch.SaveRun(run, res.TestCases, res.Errors); err != nil {
		return err
	}
	res.RunID = run.ID
	log.Info("run archived", "run", run.ID, "status", run.Status)
	return nil
}

var reportRule = strings.Repeat("=", 70)

// renderReport renders the final checklist and verdict as plain text.
func renderReport(res *Result) string {
	var b strings.Builder
	b.WriteString(reportRule + "\n")
	b.WriteString("FINAL CHECKLIST\n")
	b.WriteString(reportRule + "\n")
	if res.Warnings > 0 {
		fmt.Fprintf(&b, "  Note: %d non-blocking warnings logged\n", res.Warnings)
	}
	for _, c := range res.Checklist {
		fmt.Fprintf(&b, "  [%s] %s\n", format.BoolMark(c.Passed), c.Name)
	}
	b.WriteString(reportRule + "\n")
	if res.Success {
		b.WriteString("SUCCESS: All checks passed. Tool completed successfully.\n")
	} else {
		b.WriteString("FAILURE: Not all checks passed. Review errors above.\n")
	}
	return b.String()
}
