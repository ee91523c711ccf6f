package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wassima-azzouzi/data-agent/internal/analyzer"
	"github.com/wassima-azzouzi/data-agent/internal/utils"
)

// Global configuration structure. Fields mirror the analyzer thresholds so
// defaults can be persisted and tuned per installation.
type Global struct {
	CriticalDrop    float64 `mapstructure:"critical_drop" yaml:"critical_drop"`
	WarningDrop     float64 `mapstructure:"warning_drop" yaml:"warning_drop"`
	AnomalyZScore   float64 `mapstructure:"anomaly_zscore" yaml:"anomaly_zscore"`
	MissingCritical float64 `mapstructure:"missing_critical" yaml:"missing_critical"`
	MissingWarning  float64 `mapstructure:"missing_warning" yaml:"missing_warning"`
}

// Thresholds converts the configuration to analyzer thresholds.
func (g *Global) Thresholds() analyzer.Thresholds {
	return analyzer.Thresholds{
		CriticalDrop:    g.CriticalDrop,
		WarningDrop:     g.WarningDrop,
		AnomalyZScore:   g.AnomalyZScore,
		MissingCritical: g.MissingCritical,
		MissingWarning:  g.MissingWarning,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.data-agent/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".data-agent")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATA_AGENT")
	v.AutomaticEnv()

	def := analyzer.Defaults()
	v.SetDefault("critical_drop", def.CriticalDrop)
	v.SetDefault("warning_drop", def.WarningDrop)
	v.SetDefault("anomaly_zscore", def.AnomalyZScore)
	v.SetDefault("missing_critical", def.MissingCritical)
	v.SetDefault("missing_warning", def.MissingWarning)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".data-agent")
		_ = utils.EnsureDir(dir)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
