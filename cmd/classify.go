package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a beam as unstable, determinate or indeterminate",
	Long: `Count the support reactions and internal release equations of a beam
and report its degree of indeterminacy and geometric stability.

  degree = r - (3 + c)

where r is the number of support reactions and c the number of
release equations (1 per internal hinge, 2 per internal roller).

Examples:
  gobeam classify -f beam.json
  gobeam classify -f beam.yaml --format json`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	addBeamFlags(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	b, err := loadBeam()
	if err != nil {
		return err
	}
	res := &analysis.Result{Beam: b, Summary: analysis.Classify(b)}

	return render(cmd.OutOrStdout(), res, func(w io.Writer, p int) {
		report.WriteBanner(w, "Beam Classification")
		report.WriteClassification(w, res, p)
	})
}
