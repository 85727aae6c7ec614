package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	bendingOnly bool
	shearOnly   bool
)

var forcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Print bending moment and shear force equations",
	Long: `Solve the beam and print its internal forces as piecewise polynomials.

Each segment runs between consecutive nodes (or the end of a partial
distributed load) and holds M(x) or V(x) in the local coordinate x
measured from the segment start. Sagging moments are positive.

Examples:
  gobeam forces -f beam.json
  gobeam forces -f beam.json --bending-only
  gobeam forces -f beam.json --shear-only --format json`,
	RunE: runForces,
}

func init() {
	rootCmd.AddCommand(forcesCmd)
	addBeamFlags(forcesCmd)

	forcesCmd.Flags().BoolVar(&bendingOnly, "bending-only", false, "Print only the bending moment equations")
	forcesCmd.Flags().BoolVar(&shearOnly, "shear-only", false, "Print only the shear force equations")
	forcesCmd.MarkFlagsMutuallyExclusive("bending-only", "shear-only")
}

func runForces(cmd *cobra.Command, args []string) error {
	b, err := loadBeam()
	if err != nil {
		return err
	}
	res, err := analysis.Run(b, analysis.WithLogger(logger))
	if err != nil {
		return err
	}
	if shearOnly {
		res.Bending = nil
	}
	if bendingOnly {
		res.Shear = nil
	}

	return render(cmd.OutOrStdout(), res, func(w io.Writer, p int) {
		report.WriteBanner(w, "Internal Forces")
		report.WriteReactions(w, res, p)
		report.WriteForces(w, res, p, !shearOnly, !bendingOnly)
	})
}
