package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wifgen/internal/sample"
)

var sampleFlags struct {
	out    string
	format string
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the built-in demo requirements workbook",
	Long: `Sample writes the bundled WIF ECM demo requirement set (15
requirements across three categories plus 16 calibration parameters)
so the pipeline can be tried without a customer workbook.`,
	RunE: runSample,
}

func init() {
	f := sampleCmd.Flags()
	f.StringVar(&sampleFlags.out, "out", "requirements", "Destination: directory for csv, file path for yaml")
	f.StringVar(&sampleFlags.format, "format", "csv", "Workbook format (csv, yaml)")
}

func runSample(cmd *cobra.Command, _ []string) error {
	if err := sample.Write(sampleFlags.out, sampleFlags.format); err != nil {
		return err
	}
	fmt.Printf("Sample requirements written to %s\n", sampleFlags.out)
	return nil
}
