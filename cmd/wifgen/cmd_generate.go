package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wifgen/internal/engine"
	"wifgen/internal/export"
	"wifgen/internal/logging"
	"wifgen/internal/store"
)

var generateFlags struct {
	in        string
	out       string
	a2l       string
	db        string
	noArchive bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate, validate and export test cases from a requirements workbook",
	Long: `Generate runs the full pipeline: load the requirements workbook,
synthesize one test case per requirement, validate against the ASIL
compliance rules, compute coverage and write the artifact set.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.in, "in", "", "Requirements workbook: CSV directory or YAML/JSON file (required)")
	f.StringVar(&generateFlags.out, "out", "output", "Output directory for generated artifacts")
	f.StringVar(&generateFlags.a2l, "a2l", "", "A2L file for calibration reference checks")
	f.StringVar(&generateFlags.db, "db", store.DefaultDBPath, "Run archive database path")
	f.BoolVar(&generateFlags.noArchive, "no-archive", false, "Do not record this run in the archive")
	_ = generateCmd.MarkFlagRequired("in")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	// Tee the run log next to the artifacts.
	if err := os.MkdirAll(generateFlags.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logFile, err := os.Create(filepath.Join(generateFlags.out, "generation.log"))
	if err != nil {
		return fmt.Errorf("create run log: %w", err)
	}
	defer logFile.Close()
	logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat, os.Stderr, logFile)

	res, err := engine.Run(engine.Config{
		Input:     generateFlags.in,
		OutputDir: generateFlags.out,
		A2LPath:   generateFlags.a2l,
		DBPath:    generateFlags.db,
		NoArchive: generateFlags.noArchive,
	})
	if err != nil {
		return err
	}

	fmt.Print(res.Report)
	if res.RunID != "" {
		fmt.Printf("Run archived: %s\n", res.RunID)
	}
	if !res.Success {
		return fmt.Errorf("generation failed: see %s", filepath.Join(generateFlags.out, export.FileErrorLog))
	}
	fmt.Println("Generated files:")
	for _, name := range export.Files() {
		fmt.Printf("  - %s\n", filepath.Join(generateFlags.out, name))
	}
	return nil
}
