package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis and print every table",
	Long: `Classify the beam, solve its reactions and derive the bending moment
and shear force equations in one report. This is the text form of
what 'gobeam report' writes to PDF.

Examples:
  gobeam analyze -f beam.json
  gobeam analyze -f beam.xlsx -p 2
  gobeam analyze -f beam.yaml --format json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addBeamFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	b, err := loadBeam()
	if err != nil {
		return err
	}
	res, err := analysis.Run(b, analysis.WithLogger(logger))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), res, func(w io.Writer, p int) {
		report.WriteText(w, res, p)
	})
}
