package workbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir reads every *.csv file in dir as one sheet. The sheet name is
// the file stem; non-CSV files are ignored. An empty file yields a sheet
// with no header and no rows.
func LoadDir(dir string) (*Workbook, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read workbook dir: %w", err)
	}

	var wb Workbook
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		sheet, err := loadCSVSheet(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return &wb, nil
}

func loadCSVSheet(path string) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows tolerated
	records, err := r.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("parse sheet %s: %w", filepath.Base(path), err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s := Sheet{Name: name}
	if len(records) > 0 {
		s.Header = records[0]
		s.Rows = records[1:]
	}
	return s, nil
}

// SaveDir writes one <folded name>.csv per sheet into dir, creating it
// if needed.
func SaveDir(wb *Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create workbook dir: %w", err)
	}
	for i := range wb.Sheets {
		s := &wb.Sheets[i]
		path := filepath.Join(dir, FoldName(s.Name)+".csv")
		if err := saveCSVSheet(s, path); err != nil {
			return err
		}
	}
	return nil
}

func saveCSVSheet(s *Sheet, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(s.Header) > 0 {
		if err := w.Write(s.Header); err != nil {
			return fmt.Errorf("encode sheet header: %w", err)
		}
	}
	for _, row := range s.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("encode sheet row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode sheet %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}
