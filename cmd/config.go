package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/wassima-azzouzi/data-agent/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set analysis thresholds",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("critical_drop: %g\n", cfg.CriticalDrop)
		fmt.Printf("warning_drop: %g\n", cfg.WarningDrop)
		fmt.Printf("anomaly_zscore: %g\n", cfg.AnomalyZScore)
		fmt.Printf("missing_critical: %g\n", cfg.MissingCritical)
		fmt.Printf("missing_warning: %g\n", cfg.MissingWarning)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a threshold and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid value for %s: %v", key, val)
		}
		switch key {
		case "critical_drop":
			cfg.CriticalDrop = f
		case "warning_drop":
			cfg.WarningDrop = f
		case "anomaly_zscore":
			cfg.AnomalyZScore = f
		case "missing_critical":
			cfg.MissingCritical = f
		case "missing_warning":
			cfg.MissingWarning = f
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
