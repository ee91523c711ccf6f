package table

import (
	"strconv"
	"strings"
)

// Column kinds inferred at construction.
const (
	KindNumeric = "numeric"
	KindText    = "text"
	KindUnknown = "unknown"
)

// naTokens are cell values treated as missing in addition to the empty cell.
var naTokens = map[string]bool{
	"na": true, "n/a": true, "nan": true, "null": true, "none": true,
}

type column struct {
	name    string
	raw     []string
	missing []bool
	nums    []float64
	numOK   []bool
	kind    string
	miss    int
}

// Table is an immutable, column-ordered view of a tabular dataset. Column
// types are classified once at construction; the analyzer queries them via
// IsNumeric rather than re-inspecting values.
type Table struct {
	cols []column
	rows int
}

// New builds a Table from a header and row records. Short records are padded
// with missing cells; long records are truncated to the header width.
func New(header []string, rows [][]string) *Table {
	ncol := len(header)
	t := &Table{rows: len(rows)}
	t.cols = make([]column, ncol)
	for i := range header {
		c := &t.cols[i]
		c.name = strings.TrimSpace(header[i])
		c.raw = make([]string, len(rows))
		c.missing = make([]bool, len(rows))
		c.nums = make([]float64, len(rows))
		c.numOK = make([]bool, len(rows))
	}
	for r, rec := range rows {
		for i := 0; i < ncol; i++ {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			c := &t.cols[i]
			c.raw[r] = v
			if isMissing(v) {
				c.missing[r] = true
				c.miss++
				continue
			}
			if x, ok := parseNumber(v); ok {
				c.nums[r] = x
				c.numOK[r] = true
			}
		}
	}
	for i := range t.cols {
		t.cols[i].kind = classify(&t.cols[i])
	}
	return t
}

// classify types a column from its values: numeric only when every present
// cell parses as a number.
func classify(c *column) string {
	present := 0
	numeric := 0
	for r := range c.raw {
		if c.missing[r] {
			continue
		}
		present++
		if c.numOK[r] {
			numeric++
		}
	}
	switch {
	case present == 0:
		return KindUnknown
	case numeric == present:
		return KindNumeric
	default:
		return KindText
	}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Name returns the name of column i.
func (t *Table) Name(i int) string { return t.cols[i].name }

// Names returns all column names in table order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i := range t.cols {
		out[i] = t.cols[i].name
	}
	return out
}

// Kind returns the inferred kind of column i.
func (t *Table) Kind(i int) string { return t.cols[i].kind }

// IsNumeric reports whether column i was classified numeric.
func (t *Table) IsNumeric(i int) bool { return t.cols[i].kind == KindNumeric }

// Missing reports whether the cell at (column i, row r) is missing.
func (t *Table) Missing(i, r int) bool { return t.cols[i].missing[r] }

// Value returns the numeric value at (column i, row r). ok is false for
// missing cells and cells that did not parse as numbers.
func (t *Table) Value(i, r int) (float64, bool) {
	c := &t.cols[i]
	if c.missing[r] || !c.numOK[r] {
		return 0, false
	}
	return c.nums[r], true
}

// Raw returns the original cell text at (column i, row r); empty for missing.
func (t *Table) Raw(i, r int) string {
	if t.cols[i].missing[r] {
		return ""
	}
	return t.cols[i].raw[r]
}

// MissingCount returns the number of missing cells in column i.
func (t *Table) MissingCount(i int) int { return t.cols[i].miss }

// MissingTotal returns the number of missing cells across the whole table.
func (t *Table) MissingTotal() int {
	total := 0
	for i := range t.cols {
		total += t.cols[i].miss
	}
	return total
}

// UniqueCount returns the number of distinct present values in column i.
func (t *Table) UniqueCount(i int) int {
	seen := make(map[string]bool)
	c := &t.cols[i]
	for r := range c.raw {
		if c.missing[r] {
			continue
		}
		seen[c.raw[r]] = true
	}
	return len(seen)
}

func isMissing(v string) bool {
	if v == "" {
		return true
	}
	return naTokens[strings.ToLower(v)]
}

// parseNumber parses a cell as a float, tolerating percent suffixes,
// non-breaking spaces, and comma decimals with autodetected thousands
// separators.
func parseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, "\u00a0", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	dec := byte('.')
	cpos := strings.LastIndexByte(raw, ',')
	dpos := strings.LastIndexByte(raw, '.')
	if cpos >= 0 && (dpos < 0 || cpos > dpos) {
		dec = ','
	}
	for _, sep := range []string{",", ".", " "} {
		if sep[0] != dec {
			raw = strings.ReplaceAll(raw, sep, "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
