// Package validate checks generated test cases against the compliance
// rules: requirement cross-references, id and code formats, step
// quality, and traceability completeness. Rules are evaluated per test
// case without shared state; a test case is valid iff it produced zero
// CRITICAL findings.
package validate

import "fmt"

// Severity grades a finding. Only CRITICAL findings fail validation;
// WARNING findings are advisory.
type Severity string

const (
	Critical Severity = "CRITICAL"
	Warning  Severity = "WARNING"
)

// Finding categories.
const (
	InvalidRequirementRef  = "INVALID_REQUIREMENT_REF"
	ASILMismatch           = "ASIL_MISMATCH"
	TypeMismatch           = "TYPE_MISMATCH"
	InvalidIDFormat        = "INVALID_ID_FORMAT"
	InvalidDTCCode         = "INVALID_DTC_CODE"
	InvalidA2LFormat       = "INVALID_A2L_FORMAT"
	InvalidA2LRef          = "INVALID_A2L_REF"
	NoTestSteps            = "NO_TEST_STEPS"
	VagueAction            = "VAGUE_ACTION"
	VagueExpectedResult    = "VAGUE_EXPECTED_RESULT"
	NonMeasurableResult    = "NON_MEASURABLE_RESULT"
	MissingSystemTrace     = "MISSING_SYSTEM_TRACE"
	MissingSoftwareTrace   = "MISSING_SOFTWARE_TRACE"
	MissingParentTrace     = "MISSING_PARENT_TRACE"
	MissingDiagnosticTrace = "MISSING_DIAGNOSTIC_TRACE"
	VaguePassCriteria      = "VAGUE_PASS_CRITERIA"
	UncoveredRequirement   = "UNCOVERED_REQUIREMENT"
)

// Error is a single validation finding against one test case.
type Error struct {
	TestCaseID string   `json:"test_case_id"`
	Type       string   `json:"error_type"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
}

func (e Error) String() string {
	return fmt.Sprintf("[%s] %s: %s - %s", e.Severity, e.TestCaseID, e.Type, e.Message)
}

func critical(tcID, errType, msg string) Error {
	return Error{TestCaseID: tcID, Type: errType, Message: msg, Severity: Critical}
}

func warning(tcID, errType, msg string) Error {
	return Error{TestCaseID: tcID, Type: errType, Message: msg, Severity: Warning}
}

// Tally counts findings by severity.
func Tally(errs []Error) (criticals, warnings int) {
	for _, e := range errs {
		switch e.Severity {
		case Warning:
			warnings++
		default:
			criticals++
		}
	}
	return criticals, warnings
}
