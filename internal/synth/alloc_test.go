package synth

import (
	"testing"

	"wifgen/internal/req"
)

func TestRequirementNumber(t *testing.T) {
	tests := []struct {
		reqID string
		want  string
	}{
		{"SYS_WIF_001", "001"},
		{"SW_WIF_042", "042"},
		{"DIAG_WIF_004", "004"},
		{"REQ_42", "042"},
		{"REQ_7", "007"},
		{"WIF_12_LEGACY", "012"},
		{"SYS_WIF_1234", "123"},
		{"NO_DIGITS", "001"},
	}
	for _, tt := range tests {
		if got := RequirementNumber(tt.reqID); got != tt.want {
			t.Errorf("RequirementNumber(%q) = %q, want %q", tt.reqID, got, tt.want)
		}
	}
}

func TestIDPrefix(t *testing.T) {
	tests := []struct {
		cat  req.Category
		want string
	}{
		{req.System, "TC_SYS_SYS_WIF"},
		{req.Software, "TC_SW_SW_WIF"},
		{req.Diagnostic, "TC_DIAG_DIAG_WIF"},
	}
	for _, tt := range tests {
		if got := IDPrefix(tt.cat); got != tt.want {
			t.Errorf("IDPrefix(%v) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestAllocator_PerRequirementSequence(t *testing.T) {
	a := NewAllocator()
	for i, want := range []string{"001", "002", "003"} {
		if got := a.Next(req.System, "SYS_WIF_001"); got != want {
			t.Fatalf("call %d: Next = %q, want %q", i+1, got, want)
		}
	}
	if got := a.Next(req.System, "SYS_WIF_002"); got != "001" {
		t.Errorf("new requirement should restart at 001, got %q", got)
	}
	if got := a.Next(req.Software, "SYS_WIF_001"); got != "001" {
		t.Errorf("categories should count independently, got %q", got)
	}
}

func TestAllocator_TestCaseID(t *testing.T) {
	a := NewAllocator()
	tests := []struct {
		cat   req.Category
		reqID string
		want  string
	}{
		{req.System, "SYS_WIF_001", "TC_SYS_SYS_WIF_001_001"},
		{req.System, "SYS_WIF_001", "TC_SYS_SYS_WIF_001_002"},
		{req.Software, "SW_WIF_003", "TC_SW_SW_WIF_003_001"},
		{req.Diagnostic, "DIAG_WIF_002", "TC_DIAG_DIAG_WIF_002_001"},
		{req.System, "LEGACY_7", "TC_SYS_SYS_WIF_007_001"},
	}
	for _, tt := range tests {
		if got := a.TestCaseID(tt.cat, tt.reqID); got != tt.want {
			t.Errorf("TestCaseID(%v, %q) = %q, want %q", tt.cat, tt.reqID, got, tt.want)
		}
	}
}
