package req

import (
	"fmt"
	"strings"

	"wifgen/internal/workbook"
)

// Canonical sheet names in the requirements workbook.
const (
	SheetSystem      = "System Requirements"
	SheetSoftware    = "Software Requirements"
	SheetDiagnostic  = "Diagnostic Requirements"
	SheetCalibration = "Calibration Parameters"
)

// Column synonym tables, matched against lower-cased trimmed headers.
var (
	idCols     = []string{"req_id", "requirement_id", "id", "req id"}
	descCols   = []string{"description", "requirement_description", "desc", "text"}
	asilCols   = []string{"asil_level", "asil", "safety_level", "asil level"}
	parentCols = []string{"parent_system_req", "parent", "parent_req", "parent system req"}
	dtcCols    = []string{"dtc_code", "dtc", "diagnostic_code", "dtc code"}
	calCols    = []string{"calibration_params", "calibration", "a2l_params", "cal params"}
	paramCols  = []string{"parameter", "param_name", "name", "a2l_name"}
)

// LoadResult is the outcome of loading a workbook: the populated store
// plus any non-fatal warnings (missing sheets, unusable columns).
type LoadResult struct {
	Store    *Store
	Warnings []string
	Counts   map[Category]int
	CalCount int
}

// FromWorkbook builds the Requirement Store from a workbook. Missing
// sheets and a missing calibration sheet are warnings, never errors;
// rows without an id or description are skipped.
func FromWorkbook(wb *workbook.Workbook) *LoadResult {
	res := &LoadResult{
		Store:  NewStore(),
		Counts: make(map[Category]int),
	}

	sheets := []struct {
		name string
		cat  Category
	}{
		{SheetSystem, System},
		{SheetSoftware, Software},
		{SheetDiagnostic, Diagnostic},
	}
	for _, sc := range sheets {
		sheet := wb.Sheet(sc.name)
		if sheet == nil {
			res.warnf("sheet %q not found", sc.name)
			continue
		}
		res.loadSheet(sheet, sc.name, sc.cat)
	}

	if cal := wb.Sheet(SheetCalibration); cal != nil {
		res.loadCalibration(cal)
	}

	return res
}

func (res *LoadResult) warnf(format string, args ...any) {
	res.Warnings = append(res.Warnings, fmt.Sprintf(format, args...))
}

func (res *LoadResult) loadSheet(sheet *workbook.Sheet, name string, cat Category) {
	idCol := findColumn(sheet.Header, idCols)
	descCol := findColumn(sheet.Header, descCols)
	if idCol < 0 || descCol < 0 {
		res.warnf("sheet %q missing required columns (ID or Description)", name)
		return
	}
	asilCol := findColumn(sheet.Header, asilCols)
	parentCol := findColumn(sheet.Header, parentCols)
	dtcCol := findColumn(sheet.Header, dtcCols)
	calCol := findColumn(sheet.Header, calCols)

	for i := range sheet.Rows {
		id := sheet.Cell(i, idCol)
		desc := sheet.Cell(i, descCol)
		if id == "" || desc == "" {
			continue
		}

		r := &Requirement{
			ID:          id,
			Description: desc,
			Category:    cat,
			ASIL:        ParseASIL(sheet.Cell(i, asilCol)),
		}
		if parentCol >= 0 {
			r.ParentSystemReq = sheet.Cell(i, parentCol)
		}
		if dtcCol >= 0 {
			r.DTCCode = sheet.Cell(i, dtcCol)
		}
		if calCol >= 0 {
			r.CalibrationParams = splitParams(sheet.Cell(i, calCol))
		}

		res.Store.Add(r)
		res.Counts[cat]++
	}
}

func (res *LoadResult) loadCalibration(sheet *workbook.Sheet) {
	col := findColumn(sheet.Header, paramCols)
	if col < 0 {
		res.warnf("sheet %q has no parameter name column", SheetCalibration)
		return
	}
	for i := range sheet.Rows {
		if name := sheet.Cell(i, col); name != "" {
			res.Store.AddCalibrationName(name)
			res.CalCount++
		}
	}
}

// findColumn returns the index of the first header cell equal to any
// candidate after lower-casing and trimming, or -1.
func findColumn(header []string, candidates []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, c := range candidates {
			if h == c {
				return i
			}
		}
	}
	return -1
}

// splitParams comma-splits a calibration cell, dropping empties.
func splitParams(cell string) []string {
	if cell == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(cell, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
