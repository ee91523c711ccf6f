package analyzer

// Thresholds controls when the analyzer raises findings. All values are
// caller-overridable; zero-value fields should be filled from Defaults.
type Thresholds struct {
	// CriticalDrop is the percent magnitude of a window-to-window trend
	// change that forces a critical finding.
	CriticalDrop float64 `json:"critical_drop" yaml:"critical_drop" mapstructure:"critical_drop"`
	// WarningDrop is the percent magnitude of a trend change that raises a
	// warning finding.
	WarningDrop float64 `json:"warning_drop" yaml:"warning_drop" mapstructure:"warning_drop"`
	// AnomalyZScore is the |z| above which a value counts as an outlier.
	// Every z-score comparison, including outlier-flag export, uses this
	// single value.
	AnomalyZScore float64 `json:"anomaly_zscore" yaml:"anomaly_zscore" mapstructure:"anomaly_zscore"`
	// MissingCritical is the percent of missing cells overall that forces a
	// critical finding.
	MissingCritical float64 `json:"missing_critical" yaml:"missing_critical" mapstructure:"missing_critical"`
	// MissingWarning is the percent of missing cells overall that raises a
	// warning finding.
	MissingWarning float64 `json:"missing_warning" yaml:"missing_warning" mapstructure:"missing_warning"`
}

// Defaults returns the documented default thresholds.
func Defaults() Thresholds {
	return Thresholds{
		CriticalDrop:    30,
		WarningDrop:     15,
		AnomalyZScore:   3,
		MissingCritical: 40,
		MissingWarning:  20,
	}
}
