package synth

import (
	"fmt"
	"regexp"

	"wifgen/internal/req"
)

var (
	wifNumRe = regexp.MustCompile(`WIF_(\d{3})`)
	digitsRe = regexp.MustCompile(`\d+`)
)

// IDPrefix returns the test-case id prefix for a category. The
// requirement family (SYS/SW/DIAG) appears twice: once for the test
// level and once for the requirement level it traces to.
func IDPrefix(c req.Category) string {
	switch c {
	case req.System:
		return "TC_SYS_SYS_WIF"
	case req.Software:
		return "TC_SW_SW_WIF"
	case req.Diagnostic:
		return "TC_DIAG_DIAG_WIF"
	}
	panic(fmt.Sprintf("synth: unhandled category %d", int(c)))
}

// RequirementNumber extracts the three-digit requirement number used in
// test-case ids. WIF-style ids contribute their own number; other ids
// fall back to the first digit run, zero-padded, or 001.
func RequirementNumber(reqID string) string {
	if m := wifNumRe.FindStringSubmatch(reqID); m != nil {
		return m[1]
	}
	if d := digitsRe.FindString(reqID); d != "" {
		return pad3(d)
	}
	return "001"
}

func pad3(s string) string {
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// Allocator hands out sequential test-case ids. Sequence numbers are
// tracked per (category, requirement) pair, so a requirement's test
// cases number 001..NNN regardless of what other requirements received.
type Allocator struct {
	counters map[req.Category]map[string]int
}

func NewAllocator() *Allocator {
	return &Allocator{counters: make(map[req.Category]map[string]int)}
}

// Next reserves and returns the next sequence number for the pair.
func (a *Allocator) Next(c req.Category, reqID string) string {
	m := a.counters[c]
	if m == nil {
		m = make(map[string]int)
		a.counters[c] = m
	}
	m[reqID]++
	return fmt.Sprintf("%03d", m[reqID])
}

// TestCaseID reserves the next id for the requirement, e.g.
// TC_SYS_SYS_WIF_001_001.
func (a *Allocator) TestCaseID(c req.Category, reqID string) string {
	return fmt.Sprintf("%s_%s_%s", IDPrefix(c), RequirementNumber(reqID), a.Next(c, reqID))
}
