// Package workbook models a multi-sheet tabular requirements source.
// A workbook is an ordered list of named sheets; each sheet is a header
// row plus data rows, all cells plain strings. Two on-disk forms are
// supported: a directory of CSV files (one per sheet) and a single YAML
// file. Sheet names are matched case-insensitively with spaces and
// underscores folded, so "System Requirements" finds
// system_requirements.csv.
package workbook

import (
	"fmt"
	"os"
	"strings"
)

// Sheet is one named table: a header row plus zero or more data rows.
// Rows may be ragged; Cell pads short rows with the empty string.
type Sheet struct {
	Name   string     `yaml:"name" json:"name"`
	Header []string   `yaml:"header" json:"header"`
	Rows   [][]string `yaml:"rows" json:"rows"`
}

// Cell returns the cell at (row, col), or "" when out of range.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Workbook is an ordered collection of sheets.
type Workbook struct {
	Sheets []Sheet `yaml:"sheets" json:"sheets"`
}

// Sheet returns the sheet matching name after folding, or nil.
func (w *Workbook) Sheet(name string) *Sheet {
	want := FoldName(name)
	for i := range w.Sheets {
		if FoldName(w.Sheets[i].Name) == want {
			return &w.Sheets[i]
		}
	}
	return nil
}

// Add appends a sheet, replacing any existing sheet with the same folded name.
func (w *Workbook) Add(s Sheet) {
	for i := range w.Sheets {
		if FoldName(w.Sheets[i].Name) == FoldName(s.Name) {
			w.Sheets[i] = s
			return
		}
	}
	w.Sheets = append(w.Sheets, s)
}

// FoldName normalizes a sheet name for matching: lower-cased, trimmed,
// spaces collapsed to underscores.
func FoldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// Open loads a workbook from path: a directory is read as CSV sheets,
// anything else as a YAML (or JSON) workbook file.
func Open(path string) (*Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}
