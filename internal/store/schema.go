package store

// schemaVersion1 is the initial run archive schema.
const schemaVersion1 = 1

// schemaV1 is the run archive DDL (fresh install).
// test_cases carries the full JSON document per test case so GetRun can
// rebuild them without re-synthesis; the flat columns exist for listing
// and ad hoc queries only.
var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	started_at    TEXT NOT NULL,
	finished_at   TEXT NOT NULL,
	source        TEXT NOT NULL DEFAULT '',
	requirements  INTEGER NOT NULL DEFAULT 0,
	test_cases    INTEGER NOT NULL DEFAULT 0,
	criticals     INTEGER NOT NULL DEFAULT 0,
	warnings      INTEGER NOT NULL DEFAULT 0,
	coverage_pct  REAL NOT NULL DEFAULT 0,
	complete      INTEGER NOT NULL DEFAULT 0,
	status        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS test_cases (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id          TEXT NOT NULL REFERENCES runs(id),
	test_case_id    TEXT NOT NULL,
	category        TEXT NOT NULL,
	requirement_id  TEXT NOT NULL,
	asil            TEXT NOT NULL,
	doc             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS validation_errors (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL REFERENCES runs(id),
	test_case_id  TEXT NOT NULL,
	error_type    TEXT NOT NULL,
	severity      TEXT NOT NULL,
	message       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_test_cases_run ON test_cases(run_id);
CREATE INDEX IF NOT EXISTS idx_validation_errors_run ON validation_errors(run_id);
`
