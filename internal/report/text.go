package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wassima-azzouzi/data-agent/internal/analyzer"
	"github.com/wassima-azzouzi/data-agent/internal/table"
)

// Text renders a plain-text analysis report for the given source file.
// The report header carries a generated ID and timestamp; everything below
// it is derived from the result alone.
func Text(tbl *table.Table, res *analyzer.Result, source string) string {
	var b strings.Builder
	b.WriteString("DATA ANALYSIS REPORT\n")
	b.WriteString("====================\n")
	fmt.Fprintf(&b, "Report ID: %s\n", uuid.NewString())
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	if source != "" {
		fmt.Fprintf(&b, "File: %s\n", source)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "STATUS: %s\n", strings.ToUpper(res.UrgencyLevel.String()))
	b.WriteString(res.Summary)
	b.WriteString("\n\n")

	b.WriteString("DETECTED ISSUES:\n")
	if len(res.UrgencyReasons) == 0 {
		b.WriteString("None\n")
	} else {
		for i, reason := range res.UrgencyReasons {
			fmt.Fprintf(&b, "%d. %s\n", i+1, reason)
		}
	}
	b.WriteString("\n")

	b.WriteString("RECOMMENDATIONS:\n")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	b.WriteString("\n")

	b.WriteString("STATISTICS:\n")
	fmt.Fprintf(&b, "- Rows: %d\n", res.Stats.Rows)
	fmt.Fprintf(&b, "- Columns: %d\n", res.Stats.Columns)
	fmt.Fprintf(&b, "- Missing data: %.2f%%\n", res.Stats.MissingPercent)
	fmt.Fprintf(&b, "- Numeric columns analyzed: %d\n", res.Stats.AnalyzedColumns)
	fmt.Fprintf(&b, "- Anomalies: %d\n", len(res.Anomalies))

	if len(res.Anomalies) > 0 {
		b.WriteString("\nANOMALY DETAILS:\n")
		for _, a := range res.Anomalies {
			fmt.Fprintf(&b, "- %s: %d outlier(s) (%.1f%% of rows, max Z-score %.2f)\n",
				a.Column, a.Count, a.Percentage, a.MaxZScore)
		}
	}

	if len(res.Columns) > 0 {
		b.WriteString("\nNUMERIC COLUMN DETAILS:\n")
		for _, c := range res.Columns {
			fmt.Fprintf(&b, "- %s: mean %.4g, std %.4g, min %.4g, max %.4g", c.Name, c.Mean, c.Std, c.Min, c.Max)
			if c.TrendChange != nil {
				fmt.Fprintf(&b, ", trend %+.1f%%", *c.TrendChange)
			}
			b.WriteString("\n")
		}
	}

	if tbl != nil {
		b.WriteString("\nCOLUMN INFORMATION:\n")
		for i := 0; i < tbl.NumCols(); i++ {
			nonNull := tbl.NumRows() - tbl.MissingCount(i)
			fmt.Fprintf(&b, "- %s: %s (non-null %d, missing %d, unique %d)\n",
				tbl.Name(i), tbl.Kind(i), nonNull, tbl.MissingCount(i), tbl.UniqueCount(i))
		}
	}
	return b.String()
}
