package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	reportOutput string
	reportTitle  string
	reportAuthor string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF calculation report",
	Long: `Solve the beam and write classification, reactions, bending moment
and shear force tables to an A4 PDF document.

Examples:
  gobeam report -f beam.json
  gobeam report -f beam.yaml -o girder.pdf --title "Girder G-1" --author "J. Cruz"`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addBeamFlags(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "PDF file to write (default <beam file>.pdf)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Author printed in the header")
}

func runReport(cmd *cobra.Command, args []string) error {
	b, err := loadBeam()
	if err != nil {
		return err
	}
	res, err := analysis.Run(b, analysis.WithLogger(logger))
	if err != nil {
		return err
	}
	_, p, err := settings()
	if err != nil {
		return err
	}

	out := reportOutput
	if out == "" {
		out = strings.TrimSuffix(beamFile, filepath.Ext(beamFile)) + ".pdf"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	opts := report.PDFOptions{Title: reportTitle, Author: reportAuthor, Precision: p}
	if err := report.WritePDF(f, res, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("report written", "path", out)
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
	return nil
}
