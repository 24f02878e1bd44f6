package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wifgen/internal/display"
	"wifgen/internal/format"
	"wifgen/internal/store"
)

var runsFlags struct {
	db   string
	show string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived generation runs",
	Long: `Runs lists the archived generation runs, newest first. With --show
it prints one run's summary, test cases and findings.`,
	RunE: runRuns,
}

func init() {
	f := runsCmd.Flags()
	f.StringVar(&runsFlags.db, "db", store.DefaultDBPath, "Run archive database path")
	f.StringVar(&runsFlags.show, "show", "", "Run id to inspect")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	s, err := store.Open(runsFlags.db)
	if err != nil {
		return err
	}
	defer s.Close()

	if runsFlags.show != "" {
		return showRun(s, runsFlags.show)
	}
	return listRuns(s)
}

func listRuns(s *store.SqlStore) error {
	runs, err := s.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	t := format.NewTable(format.ASCII)
	t.Header("Run", "Started", "Duration", "Source", "Reqs", "TCs", "Crit", "Warn", "Coverage", "Status")
	t.Columns(
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, Align: format.AlignRight},
		format.ColumnConfig{Number: 7, Align: format.AlignRight},
		format.ColumnConfig{Number: 8, Align: format.AlignRight},
		format.ColumnConfig{Number: 9, Align: format.AlignRight},
	)
	for _, r := range runs {
		t.Row(r.ID, r.StartedAt, runDuration(r), format.Truncate(r.Source, 32),
			r.Requirements, r.TestCases, r.Criticals, r.Warnings,
			format.FmtPercent(r.CoveragePct), r.Status)
	}
	fmt.Println(t.String())
	return nil
}

// runDuration renders finished minus started, or "-" when the
// timestamps are unusable.
func runDuration(r *store.Run) string {
	start, err1 := time.Parse(time.RFC3339, r.StartedAt)
	end, err2 := time.Parse(time.RFC3339, r.FinishedAt)
	if err1 != nil || err2 != nil || end.Before(start) {
		return "-"
	}
	return format.FmtDuration(end.Sub(start))
}

func showRun(s *store.SqlStore, id string) error {
	d, err := s.GetRun(id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("run %s not found", id)
	}

	r := d.Run
	fmt.Printf("Run:      %s\n", r.ID)
	fmt.Printf("Started:  %s\n", r.StartedAt)
	fmt.Printf("Finished: %s\n", r.FinishedAt)
	fmt.Printf("Source:   %s\n", r.Source)
	fmt.Printf("Status:   %s\n", r.Status)
	fmt.Printf("Coverage: %s (complete: %s)\n",
		format.FmtPercent(r.CoveragePct), format.BoolMark(r.Complete))
	fmt.Println()

	t := format.NewTable(format.ASCII)
	t.Header("Test Case", "Requirement", "ASIL", "Steps", "Objective")
	t.Columns(format.ColumnConfig{Number: 4, Align: format.AlignRight})
	for _, tc := range d.TestCases {
		t.Row(tc.ID, tc.RequirementID, string(tc.ASIL), len(tc.Steps),
			format.Truncate(tc.Objective, 60))
	}
	fmt.Println(t.String())

	if len(d.Errors) > 0 {
		fmt.Printf("\nFindings (%d):\n", len(d.Errors))
		for _, e := range d.Errors {
			fmt.Printf("  [%s] %s: %s - %s\n",
				display.Severity(string(e.Severity)), e.TestCaseID,
				display.FindingTypeWithCode(e.Type), e.Message)
		}
	}
	return nil
}
