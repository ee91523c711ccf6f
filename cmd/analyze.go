package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wassima-azzouzi/data-agent/internal/analyzer"
	"github.com/wassima-azzouzi/data-agent/internal/loader"
	"github.com/wassima-azzouzi/data-agent/internal/report"
	"github.com/wassima-azzouzi/data-agent/internal/utils"
)

var (
	anaDelimiter  string
	anaSheetName  string
	anaSheetIndex int
	anaJSON       bool
	anaOutputPath string
	anaFlagsOut   string

	anaCriticalDrop    float64
	anaWarningDrop     float64
	anaZScore          float64
	anaMissingCritical float64
	anaMissingWarning  float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a CSV/TSV/XLSX file and produce a data-quality report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		opt := loader.Options{SheetName: anaSheetName, SheetIndex: anaSheetIndex}
		switch anaDelimiter {
		case "":
		case ",":
			opt.Delimiter = ','
		case ";":
			opt.Delimiter = ';'
		case "\t", "tab":
			opt.Delimiter = '\t'
		default:
			return fmt.Errorf("unsupported --delimiter: %s", anaDelimiter)
		}

		tbl, err := loader.Load(path, opt)
		if err != nil {
			return err
		}

		thr := analyzer.Defaults()
		if cfg != nil {
			thr = cfg.Thresholds()
		}
		f := cmd.Flags()
		if f.Changed("critical-drop") {
			thr.CriticalDrop = anaCriticalDrop
		}
		if f.Changed("warning-drop") {
			thr.WarningDrop = anaWarningDrop
		}
		if f.Changed("anomaly-zscore") {
			thr.AnomalyZScore = anaZScore
		}
		if f.Changed("missing-critical") {
			thr.MissingCritical = anaMissingCritical
		}
		if f.Changed("missing-warning") {
			thr.MissingWarning = anaMissingWarning
		}

		res, err := analyzer.Analyze(tbl, thr)
		if err != nil {
			return err
		}

		var out []byte
		if anaJSON {
			out, err = report.JSON(res)
			if err != nil {
				return err
			}
		} else {
			out = []byte(report.Text(tbl, res, filepath.Base(path)))
		}

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, out); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", anaOutputPath)
		} else {
			fmt.Println(string(out))
		}

		if anaFlagsOut != "" {
			flagged, err := report.FlaggedCSV(tbl, res, thr)
			if err != nil {
				return fmt.Errorf("build flagged csv: %w", err)
			}
			if err := utils.SafeWriteFile(anaFlagsOut, flagged); err != nil {
				return fmt.Errorf("write flagged csv: %w", err)
			}
			fmt.Printf("✓ Wrote flagged data to %s\n", anaFlagsOut)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().BoolVar(&anaJSON, "json", false, "render the result as JSON instead of plain text")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	analyzeCmd.Flags().StringVar(&anaFlagsOut, "flags-out", "", "optional path to write the input data as CSV with per-column anomaly flags")
	analyzeCmd.Flags().Float64Var(&anaCriticalDrop, "critical-drop", 30, "percent trend change treated as critical")
	analyzeCmd.Flags().Float64Var(&anaWarningDrop, "warning-drop", 15, "percent trend change treated as a warning")
	analyzeCmd.Flags().Float64Var(&anaZScore, "anomaly-zscore", 3, "|z-score| above which a value is an outlier")
	analyzeCmd.Flags().Float64Var(&anaMissingCritical, "missing-critical", 40, "percent missing cells treated as critical")
	analyzeCmd.Flags().Float64Var(&anaMissingWarning, "missing-warning", 20, "percent missing cells treated as a warning")
}
