// Package synth turns requirements into test cases: deterministic id
// allocation, pattern-classified test steps, pass criteria, and the
// traceability linkage. One test case is produced per requirement; test
// cases are never mutated after creation.
package synth

import (
	"wifgen/internal/req"
)

// VerifyMethod is how a test step is verified.
type VerifyMethod string

const (
	Automated VerifyMethod = "Automated"
	Manual    VerifyMethod = "Manual"
)

// Environment tags where a test case runs.
type Environment string

const (
	HIL     Environment = "HIL"
	SIL     Environment = "SIL"
	MIL     Environment = "MIL"
	Vehicle Environment = "Vehicle"
)

// Step is a single atomic test step. Expected results carry a concrete
// quantifiable value; vague phrasing is the validator's concern.
type Step struct {
	StepNo         int          `json:"step_no"`
	Action         string       `json:"action"`
	ExpectedResult string       `json:"expected_result"`
	Verification   VerifyMethod `json:"verification_method"`
}

// Traceability links a test case back to the requirement hierarchy and
// calibration data it verifies. Every field is optional; completeness
// requirements depend on the category.
type Traceability struct {
	SystemReq     string `json:"system_req,omitempty"`
	SoftwareReq   string `json:"software_req,omitempty"`
	DiagnosticReq string `json:"diagnostic_req,omitempty"`
	A2LReference  string `json:"a2l_reference,omitempty"`
}

// TestCase is one complete generated test case.
type TestCase struct {
	ID                     string       `json:"test_case_id"`
	Category               req.Category `json:"type"`
	RequirementID          string       `json:"requirement_id"`
	RequirementDescription string       `json:"requirement_description"`
	Objective              string       `json:"test_objective"`
	Preconditions          []string     `json:"preconditions"`
	Steps                  []Step       `json:"test_steps"`
	Postconditions         []string     `json:"postconditions"`
	PassCriteria           string       `json:"pass_criteria"`
	Traceability           Traceability `json:"traceability"`
	Environment            Environment  `json:"test_environment"`
	Tools                  []string     `json:"test_tools"`
	ASIL                   req.ASIL     `json:"asil_level"`
	DTCCode                string       `json:"dtc_code,omitempty"`
}
