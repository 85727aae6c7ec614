package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the support reactions of a beam",
	Long: `Compute the support reactions of a beam.

Statically determinate beams are solved by equilibrium (fixed-end,
hinge-roller or the general mode for beams with internal releases).
Indeterminate beams on three non-fixed supports are solved with the
three-moment equation.

Sign convention: loads negative downward, moments clockwise positive,
reactions positive upward and to the right.

Examples:
  gobeam solve -f beam.json
  gobeam solve -f beam.toml -p 2
  gobeam solve -f beam.xlsx --format json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addBeamFlags(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := loadBeam()
	if err != nil {
		return err
	}
	res, err := analysis.Solve(b, analysis.WithLogger(logger))
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), res, func(w io.Writer, p int) {
		report.WriteBanner(w, "Beam Reactions")
		report.WriteClassification(w, res, p)
		report.WriteReactions(w, res, p)
	})
}
