package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/logging"
	"github.com/alexiusacademia/gobeam/internal/version"
)

var (
	cfgFile   string
	verbosity int
	quiet     bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam Reaction and Internal Force Solver",
	Long: `gobeam - Go Beam Analyzer

A CLI tool for the analysis of straight beams under point loads,
uniformly distributed loads and applied couples.

This tool helps structural engineers:
  - Classify a beam as unstable, determinate or indeterminate
  - Solve support reactions (equilibrium or three-moment equation)
  - Derive piecewise bending moment and shear force equations
  - Export a PDF calculation report

Beam definitions are read from .json, .yaml, .toml or .xlsx files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Analyzer                                        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • classify   determinacy and stability of a beam")
		fmt.Println("    • solve      support reactions")
		fmt.Println("    • forces     bending moment and shear equations")
		fmt.Println("    • analyze    all of the above in one text report")
		fmt.Println("    • report     PDF calculation report")
		fmt.Println("    • template   write an example beam definition")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file or directory (default ./gobeam.yaml or $HOME/.gobeam)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log output (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Disable logging")
}

// setup loads the configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	level := logging.LevelFromVerbosity(verbosity, quiet, logging.LevelFromString(cfg.Logging.Level))
	logger = logging.New(os.Stderr, level, logging.ParseFormat(cfg.Logging.Format))
	logger.Debug("configuration loaded", "precision", cfg.Output.Precision, "format", cfg.Output.Format)
	return nil
}
