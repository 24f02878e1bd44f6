// Package coverage computes the requirement-coverage closure for a set
// of generated test cases. Full coverage is the contractual deliverable:
// a run only succeeds when every loaded requirement is exercised by at
// least one test case.
package coverage

import (
	"fmt"

	"wifgen/internal/req"
	"wifgen/internal/synth"
	"wifgen/internal/validate"
)

// Report is the coverage analysis for one generation run.
type Report struct {
	TotalRequirements   int      `json:"total_requirements"`
	CoveredRequirements int      `json:"covered_requirements"`
	TotalTestCases      int      `json:"total_test_cases"`
	SystemTestCases     int      `json:"system_test_cases"`
	SoftwareTestCases   int      `json:"software_test_cases"`
	DiagnosticTestCases int      `json:"diagnostic_test_cases"`
	Uncovered           []string `json:"uncovered_requirements"`
	Percentage          float64  `json:"coverage_percentage"`
}

// Compute derives the coverage report. The covered count tallies the
// distinct requirement ids the test cases claim, whether or not the
// store knows them; the uncovered list is the authoritative gap record,
// so a phantom reference can never mask a missing requirement.
func Compute(store *req.Store, tcs []*synth.TestCase) *Report {
	rep := &Report{
		TotalRequirements: store.Len(),
		TotalTestCases:    len(tcs),
	}

	covered := make(map[string]struct{})
	for _, tc := range tcs {
		covered[tc.RequirementID] = struct{}{}
		switch tc.Category {
		case req.System:
			rep.SystemTestCases++
		case req.Software:
			rep.SoftwareTestCases++
		case req.Diagnostic:
			rep.DiagnosticTestCases++
		}
	}
	rep.CoveredRequirements = len(covered)

	for _, id := range store.IDs() {
		if _, ok := covered[id]; !ok {
			rep.Uncovered = append(rep.Uncovered, id)
		}
	}

	if rep.TotalRequirements > 0 {
		rep.Percentage = float64(rep.CoveredRequirements) / float64(rep.TotalRequirements) * 100.0
	} else {
		rep.Percentage = 100.0
	}
	return rep
}

// IsComplete reports whether full coverage was reached.
func (r *Report) IsComplete() bool {
	return r.Percentage >= 100.0 && len(r.Uncovered) == 0
}

// UncoveredErrors converts each gap into a CRITICAL validation finding.
// The test-case id slot carries the N/A sentinel since no test case is
// at fault.
func (r *Report) UncoveredErrors() []validate.Error {
	var errs []validate.Error
	for _, id := range r.Uncovered {
		errs = append(errs, validate.Error{
			TestCaseID: "N/A",
			Type:       validate.UncoveredRequirement,
			Message:    fmt.Sprintf("Requirement '%s' has no test cases", id),
			Severity:   validate.Critical,
		})
	}
	return errs
}

// Gaps groups the uncovered requirement ids by owning category for the
// textual gap analysis.
func (r *Report) Gaps(store *req.Store) map[req.Category][]string {
	gaps := make(map[req.Category][]string)
	for _, id := range r.Uncovered {
		if rq, ok := store.Get(id); ok {
			gaps[rq.Category] = append(gaps[rq.Category], id)
		}
	}
	return gaps
}
