// wifgen generates, validates and tracks ISO 26262 test cases for the
// water-in-fuel (WIF) ECM function.
//
// Usage:
//
//	wifgen generate --in <workbook> [--out <dir>] [--a2l <file>] [--db <path>] [--no-archive]
//	wifgen validate --in <workbook> [--a2l <file>]
//	wifgen sample   [--out <path>] [--format csv|yaml]
//	wifgen runs     [--db <path>] [--show <run-id>]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wifgen/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "wifgen",
	Short: "ISO 26262 test case generation for the WIF ECM function",
	Long: "wifgen synthesizes HIL test cases from water-in-fuel ECM safety\n" +
		"requirements, validates them against ASIL compliance rules and\n" +
		"tracks full requirement-to-test traceability.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat)
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json, pretty)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
