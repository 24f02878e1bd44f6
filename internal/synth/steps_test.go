package synth

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wifgen/internal/req"
)

func TestBuildSteps_WaterResistance(t *testing.T) {
	r := &req.Requirement{
		ID:          "SYS_WIF_001",
		Description: "The ECM shall detect water in fuel when sensor resistance is below 1000 ohms",
		Category:    req.System,
		ASIL:        req.ASILA,
	}

	got := BuildSteps(r)
	want := []Step{
		{StepNo: 1, Action: "Initialize ECM and establish CAN communication at 500kbps", ExpectedResult: "ECM responds to diagnostic requests, CAN bus status = OK", Verification: Automated},
		{StepNo: 2, Action: "Set WIF_Sensor_Resistance = 800 ohms via HIL", ExpectedResult: "HIL confirms resistance set to 800 ohms", Verification: Automated},
		{StepNo: 3, Action: "Wait for debounce time (200ms)", ExpectedResult: "Timer elapsed, ECM processing complete", Verification: Automated},
		{StepNo: 4, Action: "Read WIF_Status via CAN diagnostic service 0x22", ExpectedResult: "WIF_Status = 1 (Water Detected)", Verification: Automated},
		{StepNo: 5, Action: "Reset ECM and verify no residual faults", ExpectedResult: "ECM reset complete, no DTCs stored, system in default state", Verification: Automated},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSteps_WaterThresholdDefault(t *testing.T) {
	r := &req.Requirement{
		ID:          "SYS_WIF_005",
		Description: "The ECM shall flag water when the sensor resistance drops sharply",
		Category:    req.System,
	}
	got := BuildSteps(r)
	if len(got) != 5 {
		t.Fatalf("got %d steps, want 5", len(got))
	}
	if want := "Set WIF_Sensor_Resistance = 800 ohms via HIL"; got[1].Action != want {
		t.Errorf("step 2 action = %q, want default threshold %q", got[1].Action, want)
	}
}

func TestBuildSteps_WaterBeatsDTC(t *testing.T) {
	r := &req.Requirement{
		ID:          "DIAG_WIF_001",
		Description: "The ECM shall store a DTC when water is detected via sensor resistance",
		Category:    req.Diagnostic,
		DTCCode:     "P242F",
	}
	got := BuildSteps(r)
	for _, s := range got {
		if strings.Contains(s.Action, "0x19 02") {
			t.Fatalf("water rule should win over DTC rule, got action %q", s.Action)
		}
	}
	if want := "Read WIF_Status via CAN diagnostic service 0x22"; got[3].Action != want {
		t.Errorf("step 4 action = %q, want %q", got[3].Action, want)
	}
}

func TestBuildSteps_Diagnostic(t *testing.T) {
	tests := []struct {
		name    string
		r       *req.Requirement
		wantDTC string
	}{
		{
			name: "explicit dtc code",
			r: &req.Requirement{
				ID:          "DIAG_WIF_002",
				Description: "The ECM shall store DTC P242E when the sensor circuit is open",
				Category:    req.Diagnostic,
				DTCCode:     "P242E",
			},
			wantDTC: "P242E",
		},
		{
			name: "description keyword only",
			r: &req.Requirement{
				ID:          "SW_WIF_005",
				Description: "The software shall implement a DTC status handler callback",
				Category:    req.Software,
			},
			wantDTC: "P242F",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSteps(tt.r)
			if len(got) != 5 {
				t.Fatalf("got %d steps, want 5", len(got))
			}
			if want := "Read DTC status via service 0x19 02 " + tt.wantDTC; got[2].Action != want {
				t.Errorf("step 3 action = %q, want %q", got[2].Action, want)
			}
			if want := "DTC " + tt.wantDTC + " status byte = 0x2F (confirmed, pending, test failed)"; got[2].ExpectedResult != want {
				t.Errorf("step 3 expected = %q, want %q", got[2].ExpectedResult, want)
			}
			if want := "Clear DTCs via service 0x14 FFFFFF"; got[3].Action != want {
				t.Errorf("step 4 action = %q, want %q", got[3].Action, want)
			}
		})
	}
}

func TestBuildSteps_Calibration(t *testing.T) {
	tests := []struct {
		name    string
		r       *req.Requirement
		wantCal string
	}{
		{
			name: "first parameter used",
			r: &req.Requirement{
				ID:                "SW_WIF_003",
				Description:       "The software shall apply the calibration curve to raw readings",
				Category:          req.Software,
				CalibrationParams: []string{"CAL_WIF_Cal_Curve_A", "CAL_WIF_Cal_Curve_B"},
			},
			wantCal: "CAL_WIF_Cal_Curve_A",
		},
		{
			name: "placeholder without parameters",
			r: &req.Requirement{
				ID:          "SYS_WIF_004",
				Description: "The ECM shall act when the level exceeds the critical threshold",
				Category:    req.System,
			},
			wantCal: "CAL_WIF_Parameter",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSteps(tt.r)
			if len(got) != 4 {
				t.Fatalf("got %d steps, want 4", len(got))
			}
			if want := "Read current value of " + tt.wantCal + " via A2L interface"; got[1].Action != want {
				t.Errorf("step 2 action = %q, want %q", got[1].Action, want)
			}
			if want := "Modify " + tt.wantCal + " to test value via INCA"; got[2].Action != want {
				t.Errorf("step 3 action = %q, want %q", got[2].Action, want)
			}
		})
	}
}

func TestBuildSteps_Generic(t *testing.T) {
	r := &req.Requirement{
		ID:          "SYS_WIF_099",
		Description: "The ECM shall behave as described elsewhere",
		Category:    req.System,
	}
	got := BuildSteps(r)
	if len(got) != 5 {
		t.Fatalf("got %d steps, want 5", len(got))
	}
	if want := "Execute the behavior under test"; got[2].Action != want {
		t.Errorf("step 3 action = %q, want %q", got[2].Action, want)
	}
}

func TestBuildSteps_NumberingAndMethod(t *testing.T) {
	reqs := []*req.Requirement{
		{ID: "R1", Description: "water in fuel sensor resistance below 1000 ohms"},
		{ID: "R2", Description: "store dtc on fault"},
		{ID: "R3", Description: "apply calibration parameter"},
		{ID: "R4", Description: "do the generic thing"},
	}
	for _, r := range reqs {
		steps := BuildSteps(r)
		for i, s := range steps {
			if s.StepNo != i+1 {
				t.Errorf("%s: step %d numbered %d", r.ID, i+1, s.StepNo)
			}
			if s.Verification != Automated {
				t.Errorf("%s: step %d method = %q, want Automated", r.ID, i+1, s.Verification)
			}
		}
	}
}

func TestClassifyStepRule(t *testing.T) {
	tests := []struct {
		desc string
		dtc  string
		want string
	}{
		{"water detected when resistance drops", "", "water-resistance"},
		{"store dtc P242F", "", "diagnostic"},
		{"fault handling", "P242E", "diagnostic"},
		{"tune the threshold", "", "calibration"},
		{"anything else", "", "generic"},
	}
	for _, tt := range tests {
		r := &req.Requirement{ID: "R", Description: tt.desc, DTCCode: tt.dtc}
		if got := ClassifyStepRule(r); got != tt.want {
			t.Errorf("ClassifyStepRule(%q, dtc=%q) = %q, want %q", tt.desc, tt.dtc, got, tt.want)
		}
	}
}
