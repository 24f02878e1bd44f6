// Package a2l extracts calibration parameter names from ASAP2 (.a2l)
// ECU description files. Only the block names are of interest here; the
// full measurement metadata is not parsed.
package a2l

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var beginRe = regexp.MustCompile(`^/begin\s+(?:MEASUREMENT|CHARACTERISTIC)\s+(\S+)`)

// Scan reads an A2L file and returns the sorted, de-duplicated names of
// all MEASUREMENT and CHARACTERISTIC blocks.
func Scan(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open a2l: %w", err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		m := beginRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		seen[m[1]] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read a2l: %w", err)
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
