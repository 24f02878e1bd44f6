package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wifgen/internal/display"
	"wifgen/internal/engine"
)

var validateFlags struct {
	in  string
	a2l string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a requirements workbook without writing artifacts",
	Long: `Validate runs synthesis and the compliance rules over the workbook
and prints every finding plus the final checklist. No files are
written and the run is not archived.`,
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFlags.in, "in", "", "Requirements workbook: CSV directory or YAML/JSON file (required)")
	f.StringVar(&validateFlags.a2l, "a2l", "", "A2L file for calibration reference checks")
	_ = validateCmd.MarkFlagRequired("in")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	res, err := engine.Run(engine.Config{
		Input:      validateFlags.in,
		A2LPath:    validateFlags.a2l,
		SkipExport: true,
	})
	if err != nil {
		return err
	}

	for _, e := range res.Errors {
		fmt.Printf("[%s] %s: %s - %s\n",
			display.Severity(string(e.Severity)), e.TestCaseID,
			display.FindingTypeWithCode(e.Type), e.Message)
	}
	fmt.Print(res.Report)
	if !res.Success {
		return fmt.Errorf("validation failed: %d critical findings", res.Criticals)
	}
	return nil
}
