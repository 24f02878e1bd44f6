package export

import (
	"wifgen/internal/format"
)

type matrixMode int

const (
	matrixCSV matrixMode = iota
	matrixMarkdown
)

// renderMatrix renders the traceability matrix: one row per test case
// linking it to its requirement, the requirement hierarchy references
// and the calibration reference.
func renderMatrix(mode matrixMode) func(b *Bundle) ([]byte, error) {
	return func(b *Bundle) ([]byte, error) {
		fm := format.CSV
		if mode == matrixMarkdown {
			fm = format.Markdown
		}

		t := format.NewTable(fm)
		t.Header("Test Case ID", "Requirement ID", "System Req", "Software Req", "Diagnostic Req", "A2L Reference", "ASIL")
		for _, tc := range b.TestCases {
			tr := tc.Traceability
			t.Row(tc.ID, tc.RequirementID, tr.SystemReq, tr.SoftwareReq, tr.DiagnosticReq, tr.A2LReference, string(tc.ASIL))
		}
		return []byte(t.String() + "\n"), nil
	}
}
