package analyzer

import (
	"fmt"
	"math"

	"github.com/wassima-azzouzi/data-agent/internal/table"
)

// trendWindow is the number of trailing rows compared against the preceding
// window of the same size. The boundary is a fixed policy, not a tunable.
const trendWindow = 5

// Analyze runs the full analysis over one table: overall statistics, the
// missing-data rule, per-numeric-column outlier detection, trend-change
// detection, and summary generation. It is a pure function of
// (table, thresholds); the input table is never mutated.
func Analyze(tbl *table.Table, thr Thresholds) (*Result, error) {
	if tbl == nil || tbl.NumRows() == 0 || tbl.NumCols() == 0 {
		return nil, fmt.Errorf("analyze: %w", ErrEmptyTable)
	}

	rows := tbl.NumRows()
	ncol := tbl.NumCols()
	f := &findings{level: Normal}

	missingTotal := tbl.MissingTotal()
	missingPercent := float64(missingTotal) / float64(rows*ncol) * 100

	// Missing-data rule. Comparisons are strict: exactly at the threshold is
	// not a violation.
	if missingPercent > thr.MissingCritical {
		f.reasonf("%.1f%% missing data (CRITICAL)", missingPercent)
		f.escalate(Critical)
		f.recommendf("STOP IMMEDIATELY - verify the data source")
	} else if missingPercent > thr.MissingWarning {
		f.reasonf("%.1f%% missing data", missingPercent)
		f.escalate(Warning)
		f.recommendf("Check the data quality")
	}

	var numericNames []string
	var colStats []ColumnStats
	for i := 0; i < ncol; i++ {
		if !tbl.IsNumeric(i) {
			continue
		}
		name := tbl.Name(i)
		numericNames = append(numericNames, name)

		vals := presentValues(tbl, i)
		mean, std := meanSampleStd(vals)
		cs := ColumnStats{
			Name:    name,
			Mean:    mean,
			Std:     std,
			Min:     minOf(vals),
			Max:     maxOf(vals),
			Missing: tbl.MissingCount(i),
		}

		// Outlier detection. Zero-variance columns (including a single
		// present value) are skipped entirely.
		if std > 0 {
			count := 0
			maxZ := 0.0
			for _, v := range vals {
				z := math.Abs(v-mean) / std
				if z > maxZ {
					maxZ = z
				}
				if z > thr.AnomalyZScore {
					count++
				}
			}
			if count > 0 {
				f.anomalies = append(f.anomalies, AnomalyRecord{
					Column:     name,
					Count:      count,
					Percentage: float64(count) / float64(rows) * 100,
					MaxZScore:  maxZ,
				})
				f.reasonf("%d anomalies in '%s' (max Z-score: %.2f)", count, name, maxZ)
				f.escalate(Warning)
				f.recommendf("Review the extreme values in '%s'", name)
			}
		}

		// Trend-change detection over the last window against the preceding
		// one (or the head of the column when fewer than two windows exist).
		if rows > trendWindow {
			recent, rok := windowMean(tbl, i, rows-trendWindow, rows)
			var previous float64
			var pok bool
			if rows >= 2*trendWindow {
				previous, pok = windowMean(tbl, i, rows-2*trendWindow, rows-trendWindow)
			} else {
				previous, pok = windowMean(tbl, i, 0, trendWindow)
			}
			if rok && pok && previous != 0 {
				change := (recent - previous) / math.Abs(previous) * 100
				cs.TrendChange = &change
				mag := math.Abs(change)
				if mag > thr.CriticalDrop {
					direction := "SPIKE"
					if change < 0 {
						direction = "DROP"
					}
					f.reasonf("%s of %.1f%% in '%s' (CRITICAL)", direction, mag, name)
					f.escalate(Critical)
					f.recommendf("URGENT: immediate investigation of '%s'", name)
				} else if mag > thr.WarningDrop {
					direction := "Increase"
					if change < 0 {
						direction = "Decrease"
					}
					f.reasonf("%s of %.1f%% in '%s'", direction, mag, name)
					f.escalate(Warning)
					f.recommendf("Monitor '%s' closely", name)
				}
			}
		}

		colStats = append(colStats, cs)
	}

	var summary string
	switch f.level {
	case Critical:
		summary = fmt.Sprintf("CRITICAL ALERT: %d major issue(s) detected", len(f.reasons))
	case Warning:
		summary = fmt.Sprintf("WARNING: %d anomaly(ies) detected", len(f.reasons))
	default:
		summary = "NORMAL DATA: no significant issues"
		f.recommendf("Continue standard monitoring")
	}

	return &Result{
		IsUrgent:        f.level != Normal,
		UrgencyLevel:    f.level,
		UrgencyReasons:  f.reasons,
		Summary:         summary,
		Anomalies:       f.anomalies,
		Recommendations: f.recs,
		Stats: Stats{
			Rows:            rows,
			Columns:         ncol,
			MissingTotal:    missingTotal,
			MissingPercent:  missingPercent,
			NumericColumns:  numericNames,
			AnalyzedColumns: len(numericNames),
		},
		Columns: colStats,
	}, nil
}

// OutlierMask recomputes the per-row outlier flags for one column using the
// same z-score formula and threshold the analysis used, so exported flags
// match the AnomalyRecord counts exactly. Missing rows are never flagged.
func OutlierMask(tbl *table.Table, col int, thr Thresholds) []bool {
	mask := make([]bool, tbl.NumRows())
	vals := presentValues(tbl, col)
	mean, std := meanSampleStd(vals)
	if std <= 0 {
		return mask
	}
	for r := 0; r < tbl.NumRows(); r++ {
		v, ok := tbl.Value(col, r)
		if !ok {
			continue
		}
		if math.Abs(v-mean)/std > thr.AnomalyZScore {
			mask[r] = true
		}
	}
	return mask
}

func presentValues(tbl *table.Table, col int) []float64 {
	var vals []float64
	for r := 0; r < tbl.NumRows(); r++ {
		if v, ok := tbl.Value(col, r); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// meanSampleStd returns the mean and sample standard deviation (n-1) of vals.
// Fewer than two values yield a zero std.
func meanSampleStd(vals []float64) (mean, std float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean = sum / float64(len(vals))
	if len(vals) < 2 {
		return mean, 0
	}
	var m2 float64
	for _, v := range vals {
		d := v - mean
		m2 += d * d
	}
	return mean, math.Sqrt(m2 / float64(len(vals)-1))
}

// windowMean averages the present values of rows [lo, hi). ok is false when
// the window holds no present values.
func windowMean(tbl *table.Table, col, lo, hi int) (mean float64, ok bool) {
	var sum float64
	n := 0
	for r := lo; r < hi; r++ {
		if v, vok := tbl.Value(col, r); vok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func minOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
