package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/alexiusacademia/gobeam/internal/report"
)

var (
	// Shared by classify, solve, forces and report
	beamFile     string
	outputFormat string
	precision    int
)

func addBeamFlags(c *cobra.Command) {
	c.Flags().StringVarP(&beamFile, "file", "f", "", "Beam definition file (.json, .yaml, .toml, .xlsx) [required]")
	c.Flags().StringVar(&outputFormat, "format", "", "Output format: text or json (default from config)")
	c.Flags().IntVarP(&precision, "precision", "p", -1, "Decimal places in the output (default from config)")
	c.MarkFlagRequired("file")
}

func loadBeam() (*beam.Beam, error) {
	b, err := input.Load(beamFile, cfg.BeamMaterial())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", beamFile, err)
	}
	logger.Info("beam loaded", "file", beamFile, "nodes", b.Len(), "length", b.Length())
	return b, nil
}

// settings resolves the output format and precision, flags first.
func settings() (string, int, error) {
	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	if format != "text" && format != "json" {
		return "", 0, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
	p := cfg.Output.Precision
	if precision >= 0 {
		p = precision
	}
	return format, p, nil
}

// render writes res as JSON or hands the writer to text.
func render(w io.Writer, res *analysis.Result, text func(io.Writer, int)) error {
	format, p, err := settings()
	if err != nil {
		return err
	}
	if format == "json" {
		return report.WriteJSON(w, res)
	}
	text(w, p)
	return nil
}
