package analyzer

import (
	"encoding/json"
	"fmt"
)

// UrgencyLevel is the ordered severity of an analysis outcome.
type UrgencyLevel int

const (
	Normal UrgencyLevel = iota
	Warning
	Critical
)

func (l UrgencyLevel) String() string {
	switch l {
	case Critical:
		return "critical"
	case Warning:
		return "warning"
	default:
		return "normal"
	}
}

// MarshalJSON encodes the level as its lowercase name.
func (l UrgencyLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a lowercase level name.
func (l *UrgencyLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "normal":
		*l = Normal
	case "warning":
		*l = Warning
	case "critical":
		*l = Critical
	default:
		return fmt.Errorf("unknown urgency level %q", s)
	}
	return nil
}

// AnomalyRecord describes the outliers found in one numeric column. At most
// one record is produced per column, and only when at least one row exceeds
// the z-score threshold.
type AnomalyRecord struct {
	Column     string  `json:"column"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	MaxZScore  float64 `json:"max_zscore"`
}

// ColumnStats carries per-column descriptive statistics for numeric columns.
// TrendChange is nil when the column was too short for trend detection or
// the previous window mean was zero.
type ColumnStats struct {
	Name        string   `json:"name"`
	Mean        float64  `json:"mean"`
	Std         float64  `json:"std"`
	Min         float64  `json:"min"`
	Max         float64  `json:"max"`
	Missing     int      `json:"missing"`
	TrendChange *float64 `json:"trend_change,omitempty"`
}

// Stats summarizes the table as a whole.
type Stats struct {
	Rows            int      `json:"rows"`
	Columns         int      `json:"columns"`
	MissingTotal    int      `json:"missing_total"`
	MissingPercent  float64  `json:"missing_percent"`
	NumericColumns  []string `json:"numeric_columns"`
	AnalyzedColumns int      `json:"analyzed_columns"`
}

// Result is the immutable outcome of one Analyze call.
type Result struct {
	IsUrgent        bool            `json:"is_urgent"`
	UrgencyLevel    UrgencyLevel    `json:"urgency_level"`
	UrgencyReasons  []string        `json:"urgency_reasons"`
	Summary         string          `json:"summary"`
	Anomalies       []AnomalyRecord `json:"anomalies_detected"`
	Recommendations []string        `json:"recommendations"`
	Stats           Stats           `json:"stats"`
	Columns         []ColumnStats   `json:"column_stats"`
}

// findings accumulates reasons, recommendations, and anomaly records across
// the analysis passes. The urgency level is monotone: escalate never lowers
// it.
type findings struct {
	level     UrgencyLevel
	reasons   []string
	recs      []string
	anomalies []AnomalyRecord
}

func (f *findings) escalate(l UrgencyLevel) {
	if l > f.level {
		f.level = l
	}
}

func (f *findings) reasonf(format string, args ...any) {
	f.reasons = append(f.reasons, fmt.Sprintf(format, args...))
}

func (f *findings) recommendf(format string, args ...any) {
	f.recs = append(f.recs, fmt.Sprintf(format, args...))
}
