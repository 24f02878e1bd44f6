// Package req holds the typed requirement model and the in-memory
// Requirement Store populated from a workbook. Requirements are immutable
// once loaded; the store owns them for the lifetime of a run.
package req

import (
	"fmt"
	"strings"
)

// Category is the requirement category. It is a closed set: every switch
// over it must handle all three values, so a new category shows up as a
// compile-visible gap rather than a silent string mismatch.
type Category int

const (
	System Category = iota
	Software
	Diagnostic
)

// Categories returns all categories in canonical processing order.
func Categories() []Category {
	return []Category{System, Software, Diagnostic}
}

func (c Category) String() string {
	switch c {
	case System:
		return "System"
	case Software:
		return "Software"
	case Diagnostic:
		return "Diagnostic"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalText serializes the category as its canonical name.
func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case System, Software, Diagnostic:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("unknown category %d", int(c))
}

// UnmarshalText parses a canonical category name, case-insensitively.
func (c *Category) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "system":
		*c = System
	case "software":
		*c = Software
	case "diagnostic":
		*c = Diagnostic
	default:
		return fmt.Errorf("unknown category %q", string(b))
	}
	return nil
}

// ASIL is the ISO 26262 safety level, QM for non-safety-relevant.
type ASIL string

const (
	ASILA ASIL = "ASIL-A"
	ASILB ASIL = "ASIL-B"
	ASILC ASIL = "ASIL-C"
	ASILD ASIL = "ASIL-D"
	QM    ASIL = "QM"
)

// ParseASIL maps a cell value to a safety level. Hyphen and space forms
// are accepted case-insensitively; anything unrecognized is QM, silently.
func ParseASIL(s string) ASIL {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asil-a", "asil a":
		return ASILA
	case "asil-b", "asil b":
		return ASILB
	case "asil-c", "asil c":
		return ASILC
	case "asil-d", "asil d":
		return ASILD
	case "qm":
		return QM
	}
	return QM
}

// Requirement is one loaded safety requirement. All metadata needed for
// test case synthesis lives here.
type Requirement struct {
	ID                string   `json:"req_id"`
	Description       string   `json:"description"`
	Category          Category `json:"req_type"`
	ASIL              ASIL     `json:"asil_level"`
	ParentSystemReq   string   `json:"parent_system_req,omitempty"`
	DTCCode           string   `json:"dtc_code,omitempty"`
	CalibrationParams []string `json:"calibration_params"`
}
