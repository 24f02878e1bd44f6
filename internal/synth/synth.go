package synth

import (
	"fmt"
	"log/slog"

	"wifgen/internal/logging"
	"wifgen/internal/req"
)

// Baseline fixture state shared by every generated test case.
var (
	defaultPreconditions = []string{
		"ECM powered ON",
		"CAN bus active at 500kbps",
		"Diagnostic session 0x10 0x01 (Default)",
	}
	defaultPostconditions = []string{
		"ECM reset",
		"DTCs cleared",
	}
	defaultTools = []string{"CANoe", "INCA", "CAPL", "Python"}

	// Diagnostic tests additionally need the extended session up and a
	// clean fault memory before the fault is injected.
	diagnosticPreconditions = []string{
		"Extended diagnostic session 0x10 0x03 active",
		"No pending DTCs",
	}
)

// Synthesizer generates test cases from requirements. Each Synthesizer
// owns an id allocator, so one instance corresponds to one generation
// run; reusing it across runs would continue the sequence numbers.
type Synthesizer struct {
	alloc *Allocator
	log   *slog.Logger
}

func New() *Synthesizer {
	return &Synthesizer{
		alloc: NewAllocator(),
		log:   logging.New("synth"),
	}
}

// TestCase builds the test case for a single requirement.
func (s *Synthesizer) TestCase(r *req.Requirement) *TestCase {
	tc := &TestCase{
		ID:                     s.alloc.TestCaseID(r.Category, r.ID),
		Category:               r.Category,
		RequirementID:          r.ID,
		RequirementDescription: r.Description,
		Objective:              fmt.Sprintf("Verify that %s", r.Description),
		Preconditions:          append([]string(nil), defaultPreconditions...),
		Steps:                  BuildSteps(r),
		Postconditions:         append([]string(nil), defaultPostconditions...),
		PassCriteria:           BuildPassCriteria(r),
		Traceability:           BuildTrace(r),
		Environment:            HIL,
		Tools:                  append([]string(nil), defaultTools...),
		ASIL:                   r.ASIL,
		DTCCode:                r.DTCCode,
	}
	if r.Category == req.Diagnostic {
		tc.Preconditions = append(tc.Preconditions, diagnosticPreconditions...)
	}
	s.log.Debug("generated test case",
		"test_case", tc.ID,
		"requirement", r.ID,
		"rule", ClassifyStepRule(r),
		"steps", len(tc.Steps))
	return tc
}

// All generates one test case per stored requirement, walking the
// categories in declaration order and requirements in load order, so the
// output and its id sequence are deterministic for a given input.
func (s *Synthesizer) All(store *req.Store) []*TestCase {
	var out []*TestCase
	for _, c := range req.Categories() {
		reqs := store.ByCategory(c)
		for _, r := range reqs {
			out = append(out, s.TestCase(r))
		}
		if len(reqs) > 0 {
			s.log.Info("category generated", "category", c.String(), "test_cases", len(reqs))
		}
	}
	return out
}
