package export

import (
	"fmt"
	"strings"

	"wifgen/internal/format"
	"wifgen/internal/req"
	"wifgen/internal/validate"
)

// renderCoverage produces coverage_report.md: a summary table followed
// by the gap analysis.
func renderCoverage(b *Bundle) ([]byte, error) {
	rep := b.Coverage

	var sb strings.Builder
	sb.WriteString("# Coverage Report\n\n")
	if b.Source != "" {
		fmt.Fprintf(&sb, "Source: `%s`\n\n", b.Source)
	}

	t := format.NewTable(format.Markdown)
	t.Header("Metric", "Value")
	t.Row("Total Requirements", rep.TotalRequirements)
	t.Row("Covered Requirements", rep.CoveredRequirements)
	t.Row("Total Test Cases", rep.TotalTestCases)
	t.Row("System Test Cases", rep.SystemTestCases)
	t.Row("Software Test Cases", rep.SoftwareTestCases)
	t.Row("Diagnostic Test Cases", rep.DiagnosticTestCases)
	t.Row("Coverage", format.FmtPercent(rep.Percentage))
	t.Row("Complete", format.BoolMark(rep.IsComplete()))
	sb.WriteString(t.String())

	sb.WriteString("\n\n## Gap Analysis\n\n")
	if rep.IsComplete() {
		sb.WriteString("All requirements are covered by at least one test case.\n")
	} else {
		gaps := rep.Gaps(b.Store)
		for _, c := range req.Categories() {
			if ids := gaps[c]; len(ids) > 0 {
				fmt.Fprintf(&sb, "- %s: %s\n", c, strings.Join(ids, ", "))
			}
		}
	}
	return []byte(sb.String()), nil
}

// renderErrorLog produces validation_errors.log, one line per finding,
// CRITICAL findings first, insertion order preserved within a severity.
func renderErrorLog(b *Bundle) ([]byte, error) {
	var sb strings.Builder
	for _, sev := range []validate.Severity{validate.Critical, validate.Warning} {
		for _, e := range b.Errors {
			if e.Severity != sev {
				continue
			}
			fmt.Fprintf(&sb, "%s %s tc=%s: %s\n", e.Severity, e.Type, e.TestCaseID, e.Message)
		}
	}
	return []byte(sb.String()), nil
}
