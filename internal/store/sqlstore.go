package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"wifgen/internal/synth"
	"wifgen/internal/validate"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// boolToInt maps a bool onto the 0/1 SQLite convention.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// currentSchemaVersion is the target schema version for this build.
const currentSchemaVersion = schemaVersion1

// SqlStore implements Archive with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .wifgen) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	// Check if schema_version table exists to detect database state.
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		// Fresh database.
		return s.freshInstall()
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		// schema_version exists but has no row: an interrupted install.
		// The DDL is idempotent, so finish it.
		return s.freshInstall()
	}

	switch v {
	case currentSchemaVersion:
		return nil // already at target
	default:
		return fmt.Errorf("unknown schema version %d", v)
	}
}

// freshInstall creates the schema from scratch on an empty database.
func (s *SqlStore) freshInstall() error {
	if _, err := s.db.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", currentSchemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// SaveRun archives one run with its test cases and findings in a single
// transaction, so a run is either fully archived or absent.
func (s *SqlStore) SaveRun(run *Run, tcs []*synth.TestCase, verrs []validate.Error) error {
	if run == nil {
		return errors.New("run is nil")
	}
	now := nowUTC()
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt == "" {
		run.StartedAt = now
	}
	if run.FinishedAt == "" {
		run.FinishedAt = now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO runs(id, started_at, finished_at, source, requirements, test_cases,
		                  criticals, warnings, coverage_pct, complete, status)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.Source, run.Requirements, run.TestCases,
		run.Criticals, run.Warnings, run.CoveragePct, boolToInt(run.Complete), run.Status,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, tc := range tcs {
		doc, err := json.Marshal(tc)
		if err != nil {
			return fmt.Errorf("marshal test case %s: %w", tc.ID, err)
		}
		_, err = tx.Exec(
			`INSERT INTO test_cases(run_id, test_case_id, category, requirement_id, asil, doc)
			 VALUES(?, ?, ?, ?, ?, ?)`,
			run.ID, tc.ID, tc.Category.String(), tc.RequirementID, string(tc.ASIL), string(doc),
		)
		if err != nil {
			return fmt.Errorf("insert test case %s: %w", tc.ID, err)
		}
	}

	for _, ve := range verrs {
		_, err = tx.Exec(
			`INSERT INTO validation_errors(run_id, test_case_id, error_type, severity, message)
			 VALUES(?, ?, ?, ?, ?)`,
			run.ID, ve.TestCaseID, ve.Type, string(ve.Severity), ve.Message,
		)
		if err != nil {
			return fmt.Errorf("insert validation error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run tx: %w", err)
	}
	return nil
}

// ListRuns returns all archived runs, newest first.
func (s *SqlStore) ListRuns() ([]*Run, error) {
	// started_at has second resolution; id breaks ties deterministically.
	rows, err := s.db.Query(
		`SELECT id, started_at, finished_at, source, requirements, test_cases,
		        criticals, warnings, coverage_pct, complete, status
		 FROM runs ORDER BY started_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var out []*Run
	for rows.Next() {
		var r Run
		var complete int
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Source, &r.Requirements,
			&r.TestCases, &r.Criticals, &r.Warnings, &r.CoveragePct, &complete, &r.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Complete = complete != 0
		out = append(out, &r)
	}
	return out, rows.Err()
}

// GetRun loads one archived run with its test cases and findings.
// Returns (nil, nil) when no run has that id.
func (s *SqlStore) GetRun(id string) (*RunDetail, error) {
	var r Run
	var complete int
	err := s.db.QueryRow(
		`SELECT id, started_at, finished_at, source, requirements, test_cases,
		        criticals, warnings, coverage_pct, complete, status
		 FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Source, &r.Requirements,
		&r.TestCases, &r.Criticals, &r.Warnings, &r.CoveragePct, &complete, &r.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	r.Complete = complete != 0

	tcs, err := s.runTestCases(id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.runErrors(id)
	if err != nil {
		return nil, err
	}
	return &RunDetail{Run: &r, TestCases: tcs, Errors: verrs}, nil
}

// runTestCases rebuilds the archived test cases from their JSON docs,
// in archive order.
func (s *SqlStore) runTestCases(runID string) ([]*synth.TestCase, error) {
	rows, err := s.db.Query(
		"SELECT doc FROM test_cases WHERE run_id = ? ORDER BY id", runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list run test cases: %w", err)
	}
	defer rows.Close()
	var out []*synth.TestCase
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan test case doc: %w", err)
		}
		var tc synth.TestCase
		if err := json.Unmarshal([]byte(doc), &tc); err != nil {
			return nil, fmt.Errorf("decode test case doc: %w", err)
		}
		out = append(out, &tc)
	}
	return out, rows.Err()
}

func (s *SqlStore) runErrors(runID string) ([]validate.Error, error) {
	rows, err := s.db.Query(
		`SELECT test_case_id, error_type, severity, message
		 FROM validation_errors WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list run errors: %w", err)
	}
	defer rows.Close()
	var out []validate.Error
	for rows.Next() {
		var e validate.Error
		var sev string
		if err := rows.Scan(&e.TestCaseID, &e.Type, &sev, &e.Message); err != nil {
			return nil, fmt.Errorf("scan validation error: %w", err)
		}
		e.Severity = validate.Severity(sev)
		out = append(out, e)
	}
	return out, rows.Err()
}
