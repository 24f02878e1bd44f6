// Package display provides human-readable names for machine codes.
//
// Code is for machines, words are for humans: use these functions in
// CLI output and summaries. The JSON artifacts and the error log keep
// raw codes so downstream tooling can match on them.
package display

// --- Finding Types ---

var findingTypes = map[string]string{
	"INVALID_REQUIREMENT_REF":  "Invalid requirement reference",
	"ASIL_MISMATCH":            "ASIL mismatch",
	"TYPE_MISMATCH":            "Test type mismatch",
	"INVALID_ID_FORMAT":        "Invalid test case ID",
	"INVALID_DTC_CODE":         "Invalid DTC code",
	"INVALID_A2L_FORMAT":       "Invalid A2L reference format",
	"INVALID_A2L_REF":          "Unknown A2L reference",
	"NO_TEST_STEPS":            "No test steps",
	"VAGUE_ACTION":             "Vague action",
	"VAGUE_EXPECTED_RESULT":    "Vague expected result",
	"NON_MEASURABLE_RESULT":    "Non-measurable expected result",
	"MISSING_SYSTEM_TRACE":     "Missing system traceability",
	"MISSING_SOFTWARE_TRACE":   "Missing software traceability",
	"MISSING_PARENT_TRACE":     "Missing parent traceability",
	"MISSING_DIAGNOSTIC_TRACE": "Missing diagnostic traceability",
	"VAGUE_PASS_CRITERIA":      "Vague pass criteria",
	"UNCOVERED_REQUIREMENT":    "Uncovered requirement",
}

// FindingType returns the human-readable name for a validation finding
// code. Unknown codes are returned as-is.
func FindingType(code string) string {
	if name, ok := findingTypes[code]; ok {
		return name
	}
	return code
}

// FindingTypeWithCode returns "Invalid DTC code (INVALID_DTC_CODE)" format.
func FindingTypeWithCode(code string) string {
	if name, ok := findingTypes[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Severities ---

var severities = map[string]string{
	"CRITICAL": "Critical",
	"WARNING":  "Warning",
}

// Severity returns the human-readable name for a severity code.
// Unknown codes are returned as-is.
func Severity(code string) string {
	if name, ok := severities[code]; ok {
		return name
	}
	return code
}
