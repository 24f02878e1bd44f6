package validate

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"wifgen/internal/logging"
	"wifgen/internal/req"
	"wifgen/internal/synth"
)

var (
	systemIDRe     = regexp.MustCompile(`^TC_SYS_SYS_WIF_\d{3}_\d{3}$`)
	softwareIDRe   = regexp.MustCompile(`^TC_SW_SW_WIF_\d{3}_\d{3}$`)
	diagnosticIDRe = regexp.MustCompile(`^TC_DIAG_DIAG_WIF_\d{3}_\d{3}$`)

	// P followed by four hex digits, e.g. P242F.
	dtcRe = regexp.MustCompile(`^P[0-9A-Fa-f]{4}$`)
	a2lRe = regexp.MustCompile(`^CAL_WIF_\w+$`)

	// Step text that names no concrete action or observation.
	vagueRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*check\s*$`),
		regexp.MustCompile(`(?i)^\s*verify\s*$`),
		regexp.MustCompile(`(?i)^\s*test\s*$`),
		regexp.MustCompile(`(?i)^\s*confirm\s*$`),
		regexp.MustCompile(`(?i)if\s+working`),
		regexp.MustCompile(`(?i)working\s+correctly`),
		regexp.MustCompile(`(?i)as\s+expected`),
	}

	// Comparison operators, numbers, booleans or hex literals make an
	// expected result quantifiable.
	measurableRe = regexp.MustCompile(`(?i)[<>=≤≥]|\d+|true|false|0x[0-9A-Fa-f]+`)
)

func idPattern(c req.Category) *regexp.Regexp {
	switch c {
	case req.System:
		return systemIDRe
	case req.Software:
		return softwareIDRe
	case req.Diagnostic:
		return diagnosticIDRe
	}
	return nil
}

// Validator evaluates the compliance rules against a requirement store.
// The store supplies both the requirements for cross-reference checks
// and the loaded calibration names for A2L reference checks.
type Validator struct {
	store *req.Store
	log   *slog.Logger
}

func New(store *req.Store) *Validator {
	return &Validator{store: store, log: logging.New("validate")}
}

// TestCase validates a single test case. It reports valid iff the test
// case produced zero CRITICAL findings; WARNING findings are returned
// but do not affect validity.
func (v *Validator) TestCase(tc *synth.TestCase) (bool, []Error) {
	var errs []Error

	r, found := v.store.Get(tc.RequirementID)
	if !found {
		errs = append(errs, critical(tc.ID, InvalidRequirementRef,
			fmt.Sprintf("Requirement '%s' not found in requirements", tc.RequirementID)))
	} else {
		if tc.ASIL != r.ASIL {
			errs = append(errs, critical(tc.ID, ASILMismatch,
				fmt.Sprintf("Req ASIL=%s, TC ASIL=%s", r.ASIL, tc.ASIL)))
		}
		if tc.Category != r.Category {
			errs = append(errs, critical(tc.ID, TypeMismatch,
				fmt.Sprintf("Req Type=%s, TC Type=%s", r.Category, tc.Category)))
		}
	}

	if p := idPattern(tc.Category); p == nil || !p.MatchString(tc.ID) {
		errs = append(errs, critical(tc.ID, InvalidIDFormat,
			fmt.Sprintf("ID '%s' does not match expected format for %s tests", tc.ID, tc.Category)))
	}

	if tc.Category == req.Diagnostic || strings.Contains(tc.RequirementID, "DIAG") {
		if tc.DTCCode != "" && !dtcRe.MatchString(tc.DTCCode) {
			errs = append(errs, critical(tc.ID, InvalidDTCCode,
				fmt.Sprintf("DTC code '%s' does not match format P[0-9A-F]{4}", tc.DTCCode)))
		}
	}

	if ref := tc.Traceability.A2LReference; ref != "" {
		if !a2lRe.MatchString(ref) {
			errs = append(errs, critical(tc.ID, InvalidA2LFormat,
				fmt.Sprintf("A2L reference '%s' does not match CAL_WIF_* format", ref)))
		} else if v.store.HasCalibrationNames() && !v.store.HasCalibrationName(ref) {
			errs = append(errs, critical(tc.ID, InvalidA2LRef,
				fmt.Sprintf("A2L reference '%s' not found in calibration parameters", ref)))
		}
	}

	errs = append(errs, v.checkSteps(tc)...)
	errs = append(errs, v.checkTrace(tc)...)

	if len(tc.PassCriteria) < 10 {
		errs = append(errs, critical(tc.ID, VaguePassCriteria,
			"Pass criteria must be specific and unambiguous (min 10 chars)"))
	}

	for _, e := range errs {
		if e.Severity == Warning {
			v.log.Warn("validation finding", "test_case", e.TestCaseID, "type", e.Type, "message", e.Message)
		} else {
			v.log.Error("validation finding", "test_case", e.TestCaseID, "type", e.Type, "message", e.Message)
		}
	}

	criticals, _ := Tally(errs)
	return criticals == 0, errs
}

func (v *Validator) checkSteps(tc *synth.TestCase) []Error {
	if len(tc.Steps) == 0 {
		return []Error{critical(tc.ID, NoTestSteps, "Test case must have at least one test step")}
	}

	var errs []Error
	for _, step := range tc.Steps {
		for _, re := range vagueRes {
			if re.MatchString(step.Action) {
				errs = append(errs, critical(tc.ID, VagueAction,
					fmt.Sprintf("Step %d: Action is too vague: '%s'", step.StepNo, step.Action)))
				break
			}
		}
		for _, re := range vagueRes {
			if re.MatchString(step.ExpectedResult) {
				errs = append(errs, critical(tc.ID, VagueExpectedResult,
					fmt.Sprintf("Step %d: Expected result is too vague: '%s'", step.StepNo, step.ExpectedResult)))
				break
			}
		}
		if !measurableRe.MatchString(step.ExpectedResult) {
			errs = append(errs, warning(tc.ID, NonMeasurableResult,
				fmt.Sprintf("Step %d: Expected result should be quantifiable", step.StepNo)))
		}
	}
	return errs
}

func (v *Validator) checkTrace(tc *synth.TestCase) []Error {
	var errs []Error
	trace := tc.Traceability

	if tc.Category == req.System && trace.SystemReq == "" {
		errs = append(errs, critical(tc.ID, MissingSystemTrace,
			"System test must have system_req in traceability"))
	}

	if tc.Category == req.Software {
		if trace.SoftwareReq == "" {
			errs = append(errs, critical(tc.ID, MissingSoftwareTrace,
				"Software test must have software_req in traceability"))
		}
		if r, found := v.store.Get(tc.RequirementID); found {
			if r.ParentSystemReq != "" && trace.SystemReq == "" {
				errs = append(errs, critical(tc.ID, MissingParentTrace,
					fmt.Sprintf("Requirement has parent '%s' but not traced", r.ParentSystemReq)))
			}
		}
	}

	if tc.Category == req.Diagnostic && trace.DiagnosticReq == "" {
		errs = append(errs, critical(tc.ID, MissingDiagnosticTrace,
			"Diagnostic test must have diagnostic_req in traceability"))
	}
	return errs
}

// All validates every test case and aggregates the findings. Overall
// validity requires each test case individually valid.
func (v *Validator) All(tcs []*synth.TestCase) (bool, []Error) {
	var all []Error
	valid := true
	for _, tc := range tcs {
		ok, errs := v.TestCase(tc)
		if !ok {
			valid = false
		}
		all = append(all, errs...)
	}

	criticals, warnings := Tally(all)
	switch {
	case criticals > 0:
		v.log.Error("validation failed", "critical", criticals, "warnings", warnings)
	case warnings > 0:
		v.log.Info("validation passed with warnings", "warnings", warnings)
	default:
		v.log.Info("validation passed", "test_cases", len(tcs))
	}
	return valid, all
}
