package validate

import (
	"strings"
	"testing"

	"wifgen/internal/req"
	"wifgen/internal/synth"
)

func waterReq() *req.Requirement {
	return &req.Requirement{
		ID:                "SYS_WIF_001",
		Description:       "The ECM shall detect water in fuel when sensor resistance is below 1000 ohms",
		Category:          req.System,
		ASIL:              req.ASILA,
		CalibrationParams: []string{"CAL_WIF_Resistance_Threshold"},
	}
}

func storeWith(reqs ...*req.Requirement) *req.Store {
	s := req.NewStore()
	for _, r := range reqs {
		s.Add(r)
	}
	return s
}

func typeCount(errs []Error, errType string) int {
	n := 0
	for _, e := range errs {
		if e.Type == errType {
			n++
		}
	}
	return n
}

func TestValidator_CleanWaterTestCase(t *testing.T) {
	r := waterReq()
	store := storeWith(r)
	store.AddCalibrationName("CAL_WIF_Resistance_Threshold")

	tc := synth.New().TestCase(r)
	ok, errs := New(store).TestCase(tc)
	if !ok {
		t.Fatalf("expected valid test case, got findings: %v", errs)
	}

	criticals, warnings := Tally(errs)
	if criticals != 0 {
		t.Errorf("criticals = %d, want 0", criticals)
	}
	// The debounce-wait and final-reset steps have no quantifiable
	// expected result.
	if warnings != 2 || typeCount(errs, NonMeasurableResult) != 2 {
		t.Errorf("warnings = %d (%v), want two NON_MEASURABLE_RESULT", warnings, errs)
	}
}

func TestValidator_UnknownRequirement(t *testing.T) {
	r := waterReq()
	tc := synth.New().TestCase(r)
	tc.RequirementID = "SYS_WIF_999"

	ok, errs := New(storeWith(r)).TestCase(tc)
	if ok {
		t.Fatal("expected invalid test case")
	}
	if typeCount(errs, InvalidRequirementRef) != 1 {
		t.Errorf("want one INVALID_REQUIREMENT_REF, got %v", errs)
	}
	// Cross-checks against the missing requirement are skipped.
	if typeCount(errs, ASILMismatch)+typeCount(errs, TypeMismatch) != 0 {
		t.Errorf("mismatch checks should be skipped for unknown requirement: %v", errs)
	}
}

func TestValidator_ASILMismatch(t *testing.T) {
	r := waterReq()
	tc := synth.New().TestCase(r)
	tc.ASIL = req.QM

	ok, errs := New(storeWith(r)).TestCase(tc)
	if ok {
		t.Fatal("expected invalid test case")
	}
	if typeCount(errs, ASILMismatch) != 1 {
		t.Fatalf("want one ASIL_MISMATCH, got %v", errs)
	}
	for _, e := range errs {
		if e.Type == ASILMismatch && e.Message != "Req ASIL=ASIL-A, TC ASIL=QM" {
			t.Errorf("message = %q", e.Message)
		}
	}
}

func TestValidator_TypeMismatch(t *testing.T) {
	r := waterReq()
	tc := synth.New().TestCase(r)
	tc.Category = req.Software
	tc.ID = "TC_SW_SW_WIF_001_001"
	tc.Traceability.SoftwareReq = "SYS_WIF_001"

	ok, errs := New(storeWith(r)).TestCase(tc)
	if ok {
		t.Fatal("expected invalid test case")
	}
	if typeCount(errs, TypeMismatch) != 1 {
		t.Errorf("want one TYPE_MISMATCH, got %v", errs)
	}
	if typeCount(errs, InvalidIDFormat) != 0 {
		t.Errorf("id matches the software pattern, got %v", errs)
	}
}

func TestValidator_IDFormat(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		cat     req.Category
		wantBad bool
	}{
		{"valid system", "TC_SYS_SYS_WIF_001_001", req.System, false},
		{"valid software", "TC_SW_SW_WIF_003_002", req.Software, false},
		{"valid diagnostic", "TC_DIAG_DIAG_WIF_004_001", req.Diagnostic, false},
		{"wrong prefix for category", "TC_SW_SW_WIF_001_001", req.System, true},
		{"short requirement number", "TC_SYS_SYS_WIF_1_001", req.System, true},
		{"trailing junk", "TC_SYS_SYS_WIF_001_001X", req.System, true},
		{"lowercase", "tc_sys_sys_wif_001_001", req.System, true},
	}
	r := waterReq()
	store := storeWith(r)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := synth.New().TestCase(r)
			tc.ID = tt.id
			tc.Category = tt.cat
			_, errs := New(store).TestCase(tc)
			got := typeCount(errs, InvalidIDFormat) > 0
			if got != tt.wantBad {
				t.Errorf("INVALID_ID_FORMAT = %v, want %v (errs %v)", got, tt.wantBad, errs)
			}
		})
	}
}

func TestValidator_DTCCode(t *testing.T) {
	diag := &req.Requirement{
		ID:          "DIAG_WIF_001",
		Description: "The ECM shall store DTC P242F within the debounce window",
		Category:    req.Diagnostic,
		ASIL:        req.ASILA,
		DTCCode:     "P242F",
	}
	store := storeWith(diag)

	tests := []struct {
		name    string
		dtc     string
		wantBad bool
	}{
		{"valid", "P242F", false},
		{"valid lowercase hex", "P242f", false},
		{"lowercase prefix", "p242f", true},
		{"not hex", "P242G", true},
		{"too short", "P24F", true},
		{"empty tolerated", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := synth.New().TestCase(diag)
			tc.DTCCode = tt.dtc
			_, errs := New(store).TestCase(tc)
			got := typeCount(errs, InvalidDTCCode) > 0
			if got != tt.wantBad {
				t.Errorf("INVALID_DTC_CODE = %v, want %v (errs %v)", got, tt.wantBad, errs)
			}
		})
	}
}

func TestValidator_DTCCheckedByRequirementID(t *testing.T) {
	// A software test case referencing a DIAG requirement id still gets
	// its trouble code checked.
	r := &req.Requirement{
		ID:          "DIAG_WIF_002",
		Description: "The software shall expose the fault state",
		Category:    req.Software,
		ASIL:        req.ASILA,
	}
	tc := synth.New().TestCase(r)
	tc.DTCCode = "NOPE"

	_, errs := New(storeWith(r)).TestCase(tc)
	if typeCount(errs, InvalidDTCCode) != 1 {
		t.Errorf("want one INVALID_DTC_CODE, got %v", errs)
	}
}

func TestValidator_A2LReference(t *testing.T) {
	r := waterReq()

	tests := []struct {
		name     string
		ref      string
		calNames []string
		wantType string
	}{
		{"well formed and loaded", "CAL_WIF_Resistance_Threshold", []string{"CAL_WIF_Resistance_Threshold"}, ""},
		{"bad format", "WIF_Threshold", []string{"CAL_WIF_Resistance_Threshold"}, InvalidA2LFormat},
		{"unknown reference", "CAL_WIF_Missing", []string{"CAL_WIF_Resistance_Threshold"}, InvalidA2LRef},
		{"no loaded names skips lookup", "CAL_WIF_Missing", nil, ""},
		{"empty reference ignored", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storeWith(r)
			for _, n := range tt.calNames {
				store.AddCalibrationName(n)
			}
			tc := synth.New().TestCase(r)
			tc.Traceability.A2LReference = tt.ref

			_, errs := New(store).TestCase(tc)
			for _, errType := range []string{InvalidA2LFormat, InvalidA2LRef} {
				want := 0
				if errType == tt.wantType {
					want = 1
				}
				if got := typeCount(errs, errType); got != want {
					t.Errorf("%s count = %d, want %d (errs %v)", errType, got, want, errs)
				}
			}
		})
	}
}

func TestValidator_NoSteps(t *testing.T) {
	r := waterReq()
	tc := synth.New().TestCase(r)
	tc.Steps = nil

	ok, errs := New(storeWith(r)).TestCase(tc)
	if ok {
		t.Fatal("expected invalid test case")
	}
	if typeCount(errs, NoTestSteps) != 1 {
		t.Errorf("want one NO_TEST_STEPS, got %v", errs)
	}
	if typeCount(errs, NonMeasurableResult) != 0 {
		t.Errorf("step checks should stop after NO_TEST_STEPS: %v", errs)
	}
}

func TestValidator_VagueSteps(t *testing.T) {
	r := waterReq()
	tc := synth.New().TestCase(r)
	tc.Steps = []synth.Step{
		{StepNo: 1, Action: "  Check  ", ExpectedResult: "WIF_Status = 1", Verification: synth.Automated},
		{StepNo: 2, Action: "Read WIF_Status via service 0x22", ExpectedResult: "System works as expected", Verification: synth.Automated},
	}

	ok, errs := New(storeWith(r)).TestCase(tc)
	if ok {
		t.Fatal("expected invalid test case")
	}
	if typeCount(errs, VagueAction) != 1 {
		t.Errorf("want one VAGUE_ACTION, got %v", errs)
	}
	if typeCount(errs, VagueExpectedResult) != 1 {
		t.Errorf("want one VAGUE_EXPECTED_RESULT, got %v", errs)
	}
	// "System works as expected" also lacks quantifiable content.
	if typeCount(errs, NonMeasurableResult) != 1 {
		t.Errorf("want one NON_MEASURABLE_RESULT, got %v", errs)
	}
	for _, e := range errs {
		if e.Type == VagueAction && !strings.Contains(e.Message, "Step 1") {
			t.Errorf("vague action message should name the step: %q", e.Message)
		}
	}
}

func TestValidator_BarePassResultIsWarningOnly(t *testing.T) {
	r := waterReq()
	tc := synth.New().TestCase(r)
	tc.Steps = []synth.Step{
		{StepNo: 1, Action: "Read WIF_Status via service 0x22", ExpectedResult: "PASS", Verification: synth.Automated},
	}

	ok, errs := New(storeWith(r)).TestCase(tc)
	if !ok {
		t.Fatalf("a bare PASS result must not fail validation: %v", errs)
	}
	if typeCount(errs, NonMeasurableResult) != 1 {
		t.Errorf("want one NON_MEASURABLE_RESULT, got %v", errs)
	}
	if typeCount(errs, VagueExpectedResult) != 0 {
		t.Errorf("PASS is not on the vague blacklist, got %v", errs)
	}
}

func TestValidator_TraceCompleteness(t *testing.T) {
	system := waterReq()
	software := &req.Requirement{
		ID:              "SW_WIF_001",
		Description:     "The software shall sample the sensor every 10ms",
		Category:        req.Software,
		ASIL:            req.ASILA,
		ParentSystemReq: "SYS_WIF_001",
	}
	diag := &req.Requirement{
		ID:          "DIAG_WIF_001",
		Description: "The ECM shall store DTC P242F",
		Category:    req.Diagnostic,
		ASIL:        req.ASILA,
		DTCCode:     "P242F",
	}
	store := storeWith(system, software, diag)

	t.Run("system missing system_req", func(t *testing.T) {
		tc := synth.New().TestCase(system)
		tc.Traceability.SystemReq = ""
		_, errs := New(store).TestCase(tc)
		if typeCount(errs, MissingSystemTrace) != 1 {
			t.Errorf("want one MISSING_SYSTEM_TRACE, got %v", errs)
		}
	})

	t.Run("software missing software_req", func(t *testing.T) {
		tc := synth.New().TestCase(software)
		tc.Traceability.SoftwareReq = ""
		_, errs := New(store).TestCase(tc)
		if typeCount(errs, MissingSoftwareTrace) != 1 {
			t.Errorf("want one MISSING_SOFTWARE_TRACE, got %v", errs)
		}
	})

	t.Run("software missing parent trace", func(t *testing.T) {
		tc := synth.New().TestCase(software)
		tc.Traceability.SystemReq = ""
		_, errs := New(store).TestCase(tc)
		if typeCount(errs, MissingParentTrace) != 1 {
			t.Errorf("want one MISSING_PARENT_TRACE, got %v", errs)
		}
	})

	t.Run("diagnostic missing diagnostic_req", func(t *testing.T) {
		tc := synth.New().TestCase(diag)
		tc.Traceability.DiagnosticReq = ""
		_, errs := New(store).TestCase(tc)
		if typeCount(errs, MissingDiagnosticTrace) != 1 {
			t.Errorf("want one MISSING_DIAGNOSTIC_TRACE, got %v", errs)
		}
	})
}

func TestValidator_VaguePassCriteria(t *testing.T) {
	r := waterReq()
	for _, crit := range []string{"", "short"} {
		tc := synth.New().TestCase(r)
		tc.PassCriteria = crit
		ok, errs := New(storeWith(r)).TestCase(tc)
		if ok {
			t.Fatalf("criteria %q: expected invalid test case", crit)
		}
		if typeCount(errs, VaguePassCriteria) != 1 {
			t.Errorf("criteria %q: want one VAGUE_PASS_CRITERIA, got %v", crit, errs)
		}
	}
}

func TestValidator_All(t *testing.T) {
	r := waterReq()
	store := storeWith(r)
	s := synth.New()

	good := s.TestCase(r)
	bad := s.TestCase(r)
	bad.ASIL = req.QM

	valid, errs := New(store).All([]*synth.TestCase{good, bad})
	if valid {
		t.Fatal("batch with a critical finding must be invalid")
	}
	criticals, warnings := Tally(errs)
	if criticals != 1 {
		t.Errorf("criticals = %d, want 1", criticals)
	}
	// Two non-measurable-step warnings per water test case.
	if warnings != 4 {
		t.Errorf("warnings = %d, want 4", warnings)
	}
}

func TestErrorString(t *testing.T) {
	e := critical("TC_SYS_SYS_WIF_001_001", ASILMismatch, "Req ASIL=ASIL-A, TC ASIL=QM")
	want := "[CRITICAL] TC_SYS_SYS_WIF_001_001: ASIL_MISMATCH - Req ASIL=ASIL-A, TC ASIL=QM"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
