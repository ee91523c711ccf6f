package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/wassima-azzouzi/data-agent/internal/analyzer"
	"github.com/wassima-azzouzi/data-agent/internal/table"
)

// FlaggedCSV renders the input table as CSV with one boolean "<col>_anomaly"
// column appended for each column that produced an AnomalyRecord. Flags are
// recomputed with the thresholds used during analysis, so they agree with
// the record counts.
func FlaggedCSV(tbl *table.Table, res *analyzer.Result, thr analyzer.Thresholds) ([]byte, error) {
	colIndex := make(map[string]int, tbl.NumCols())
	for i := 0; i < tbl.NumCols(); i++ {
		colIndex[tbl.Name(i)] = i
	}

	type flagCol struct {
		name string
		mask []bool
	}
	var flags []flagCol
	for _, a := range res.Anomalies {
		idx, ok := colIndex[a.Column]
		if !ok {
			return nil, fmt.Errorf("anomaly column %q not in table", a.Column)
		}
		flags = append(flags, flagCol{
			name: a.Column + "_anomaly",
			mask: analyzer.OutlierMask(tbl, idx, thr),
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{}, tbl.Names()...)
	for _, fc := range flags {
		header = append(header, fc.name)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for r := 0; r < tbl.NumRows(); r++ {
		row := make([]string, 0, len(header))
		for i := 0; i < tbl.NumCols(); i++ {
			row = append(row, tbl.Raw(i, r))
		}
		for _, fc := range flags {
			row = append(row, strconv.FormatBool(fc.mask[r]))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
