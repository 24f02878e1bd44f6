package synth

import (
	"wifgen/internal/req"
)

// BuildTrace derives the traceability links for a requirement. The
// requirement's own id lands in the slot for its category; software
// requirements additionally link their parent system requirement. The
// A2L reference is the first calibration parameter, with a synthesized
// CAL_WIF_Param_<num> fallback for system requirements that name none.
func BuildTrace(r *req.Requirement) Traceability {
	var t Traceability
	switch r.Category {
	case req.System:
		t.SystemReq = r.ID
	case req.Software:
		t.SoftwareReq = r.ID
		if r.ParentSystemReq != "" {
			t.SystemReq = r.ParentSystemReq
		}
	case req.Diagnostic:
		t.DiagnosticReq = r.ID
	}

	if len(r.CalibrationParams) > 0 {
		t.A2LReference = r.CalibrationParams[0]
	} else if r.Category == req.System {
		if num := digitsRe.FindString(r.ID); num != "" {
			t.A2LReference = "CAL_WIF_Param_" + num
		}
	}
	return t
}
