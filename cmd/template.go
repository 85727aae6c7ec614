package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/input"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an example beam definition",
	Long: `Write a two-span example beam in the format given by the file
extension. The .xlsx template has one node per row:

  ` + strings.Join(input.SpreadsheetHeader, ", ") + `

Examples:
  gobeam template -o beam.yaml
  gobeam template -o beam.xlsx`,
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "File to write (.json, .yaml, .toml, .xlsx) [required]")
	templateCmd.MarkFlagRequired("output")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	format, err := input.FormatFromPath(templateOutput)
	if err != nil {
		return err
	}
	f, err := os.Create(templateOutput)
	if err != nil {
		return err
	}
	if err := input.Encode(f, input.Example(), format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", templateOutput)
	return nil
}
