// Package format renders tabular output for the CLI and the export
// artifacts. One builder covers the three encodings the tool emits:
// box-drawn terminal tables, GitHub-flavoured Markdown, and RFC 4180
// CSV.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal tables
	Markdown             // GitHub-flavoured Markdown tables
	CSV                  // RFC 4180 rows for spreadsheet import
)

// ColumnAlign specifies the horizontal alignment for a column.
type ColumnAlign int

const (
	AlignDefault ColumnAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a ColumnAlign) pretty() text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignRight
	}
	return text.AlignDefault
}

// ColumnConfig controls per-column formatting.
type ColumnConfig struct {
	Number int         // 1-based column index
	Align  ColumnAlign // horizontal alignment
}

// Table accumulates a header and data rows, then renders them in the
// Mode set at creation. Header, Row and Columns may be called in any
// order; nothing is rendered until String.
type Table struct {
	mode    Mode
	header  []string
	rows    [][]any
	configs []ColumnConfig
}

// NewTable returns an empty Table that renders in the given Mode.
func NewTable(m Mode) *Table {
	return &Table{mode: m}
}

// Header sets the column headers, replacing any previous ones.
func (t *Table) Header(cols ...string) {
	t.header = append(t.header[:0], cols...)
}

// Row appends a data row. Values are rendered via fmt.Sprint.
func (t *Table) Row(vals ...any) {
	t.rows = append(t.rows, vals)
}

// Columns applies per-column configuration.
func (t *Table) Columns(cfgs ...ColumnConfig) {
	t.configs = cfgs
}

func (t *Table) String() string {
	w := table.NewWriter()
	if t.mode == ASCII {
		w.SetStyle(table.StyleLight)
	}
	if len(t.header) > 0 {
		hr := make(table.Row, len(t.header))
		for i, c := range t.header {
			hr[i] = c
		}
		w.AppendHeader(hr)
	}
	for _, r := range t.rows {
		w.AppendRow(table.Row(r))
	}
	if len(t.configs) > 0 {
		cfgs := make([]table.ColumnConfig, len(t.configs))
		for i, c := range t.configs {
			cfgs[i] = table.ColumnConfig{Number: c.Number, Align: c.Align.pretty()}
		}
		w.SetColumnConfigs(cfgs)
	}
	switch t.mode {
	case Markdown:
		return w.RenderMarkdown()
	case CSV:
		return w.RenderCSV()
	}
	return w.Render()
}
