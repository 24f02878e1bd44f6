package export

import (
	"encoding/json"

	"wifgen/internal/coverage"
	"wifgen/internal/req"
	"wifgen/internal/synth"
)

// AllDocument is the combined collection written to test_cases_all.json.
type AllDocument struct {
	TestCases []*synth.TestCase `json:"test_cases"`
	Coverage  *coverage.Report  `json:"coverage"`
}

func renderCategory(c req.Category) func(b *Bundle) ([]byte, error) {
	return func(b *Bundle) ([]byte, error) {
		return marshalJSON(filterCategory(b.TestCases, c))
	}
}

func renderAll(b *Bundle) ([]byte, error) {
	doc := AllDocument{
		TestCases: nonNil(b.TestCases),
		Coverage:  b.Coverage,
	}
	return marshalJSON(doc)
}

// filterCategory keeps input order. The result is never nil so an empty
// category still serializes as [].
func filterCategory(tcs []*synth.TestCase, c req.Category) []*synth.TestCase {
	out := make([]*synth.TestCase, 0, len(tcs))
	for _, tc := range tcs {
		if tc.Category == c {
			out = append(out, tc)
		}
	}
	return out
}

func nonNil(tcs []*synth.TestCase) []*synth.TestCase {
	if tcs == nil {
		return []*synth.TestCase{}
	}
	return tcs
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
