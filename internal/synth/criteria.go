package synth

import (
	"fmt"
	"regexp"
	"strings"

	"wifgen/internal/req"
)

// CriteriaRule produces the pass criteria for a requirement. Like step
// rules, the list is ordered and the first match wins; the last rule is
// a catch-all.
type CriteriaRule struct {
	Name     string
	Match    func(r *req.Requirement) bool
	Criteria func(r *req.Requirement) string
}

var criteriaRules = []CriteriaRule{
	{Name: "water-detection", Match: matchWaterDetection, Criteria: waterDetectionCriteria},
	{Name: "dtc", Match: matchDTCCode, Criteria: dtcCriteria},
	{Name: "measured-value", Match: matchMeasuredValue, Criteria: measuredValueCriteria},
	{Name: "generic", Match: matchAny, Criteria: genericCriteria},
}

// measuredRe picks the first number in a description together with its
// unit when one directly follows. "ms" must sort before "s" so 200ms is
// not read as 200m + s.
var measuredRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(ohm|ms|s|v|ma|%|ω)?`)

func matchWaterDetection(r *req.Requirement) bool {
	desc := strings.ToLower(r.Description)
	return strings.Contains(desc, "water") && strings.Contains(desc, "detect")
}

func waterDetectionCriteria(*req.Requirement) string {
	return "WIF_Status flag = 1 when sensor resistance < threshold; DTC P242F stored within 200ms of detection"
}

func matchDTCCode(r *req.Requirement) bool { return r.DTCCode != "" }

func dtcCriteria(r *req.Requirement) string {
	return fmt.Sprintf("DTC %s correctly set with status byte 0x2F; DTC cleared successfully on request", r.DTCCode)
}

func matchMeasuredValue(r *req.Requirement) bool {
	return measuredRe.FindStringSubmatch(strings.ToLower(r.Description)) != nil
}

func measuredValueCriteria(r *req.Requirement) string {
	m := measuredRe.FindStringSubmatch(strings.ToLower(r.Description))
	value, unit := m[1], m[2]
	return fmt.Sprintf("System operates correctly with measured value = %s%s; All outputs within ±5%% tolerance", value, unit)
}

func genericCriteria(r *req.Requirement) string {
	return fmt.Sprintf("Requirement '%s' behavior verified; All test steps pass with expected results", r.ID)
}

// BuildPassCriteria evaluates the criteria rules for the requirement.
func BuildPassCriteria(r *req.Requirement) string {
	for _, rule := range criteriaRules {
		if rule.Match(r) {
			return rule.Criteria(r)
		}
	}
	return ""
}
