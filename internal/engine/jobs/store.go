package jobs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bertramb10/jobscout/internal/engine"
)

// JobStore persists discovered jobs in SQLite and remembers when the
// last auto-check ran. URL is the primary key so re-discovered jobs are
// ignored on insert.
type JobStore struct {
	db *sql.DB
}

// OpenJobStore opens (or creates) the job database at the given path.
func OpenJobStore(path string) (*JobStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initJobSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &JobStore{db: db}, nil
}

func initJobSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS jobs (
		url           TEXT PRIMARY KEY,
		id            TEXT NOT NULL,
		title         TEXT NOT NULL,
		company       TEXT NOT NULL,
		location      TEXT,
		description   TEXT,
		posted_date   TEXT,
		salary        TEXT,
		contract_type TEXT,
		match_score   INTEGER NOT NULL DEFAULT 0,
		found_at      TEXT NOT NULL,
		notified      INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// Close closes the underlying database.
func (s *JobStore) Close() error { return s.db.Close() }

// Has reports whether a job with this URL is already stored.
func (s *JobStore) Has(url string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM jobs WHERE url = ?`, url).Scan(&n); err != nil {
		return false, fmt.Errorf("store: has: %w", err)
	}
	return n > 0, nil
}

// InsertJobs stores jobs, silently skipping URLs already present.
func (s *JobStore) InsertJobs(jobs []engine.JobRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO jobs
		(url, id, title, company, location, description, posted_date, salary, contract_type, match_score, found_at, notified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	for _, j := range jobs {
		foundAt := j.FoundAt
		if foundAt == "" {
			foundAt = time.Now().UTC().Format(time.RFC3339)
		}
		if _, err := stmt.Exec(j.URL, j.ID, j.Title, j.Company, j.Location, j.Description,
			j.PostedDate, j.Salary, j.ContractType, j.MatchScore, foundAt, boolToInt(j.Notified)); err != nil {
			tx.Rollback()
			return fmt.Errorf("store: insert %s: %w", j.URL, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// Count returns the number of stored jobs.
func (s *JobStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// Prune deletes the oldest rows so at most keep jobs remain. Insertion
// order (rowid) decides age.
func (s *JobStore) Prune(keep int) error {
	_, err := s.db.Exec(`DELETE FROM jobs WHERE rowid NOT IN (
		SELECT rowid FROM jobs ORDER BY rowid DESC LIMIT ?)`, keep)
	if err != nil {
		return fmt.Errorf("store: prune: %w", err)
	}
	return nil
}

// List returns stored jobs, newest first, up to limit.
func (s *JobStore) List(limit int) ([]engine.JobRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`SELECT url, id, title, company, location, description,
		posted_date, salary, contract_type, match_score, found_at, notified
		FROM jobs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	jobs := []engine.JobRecord{}
	for rows.Next() {
		var j engine.JobRecord
		var location, description, postedDate, salary, contractType sql.NullString
		var notified int
		if err := rows.Scan(&j.URL, &j.ID, &j.Title, &j.Company, &location, &description,
			&postedDate, &salary, &contractType, &j.MatchScore, &j.FoundAt, &notified); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		j.Location = location.String
		j.Description = description.String
		j.PostedDate = postedDate.String
		j.Salary = salary.String
		j.ContractType = contractType.String
		j.Notified = notified != 0
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// LastChecked returns the timestamp of the previous auto-check, or ""
// when no check has run yet.
func (s *JobStore) LastChecked() (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_checked'`).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: last checked: %w", err)
	}
	return v, nil
}

// SetLastChecked records when the auto-check ran.
func (s *JobStore) SetLastChecked(ts string) error {
	_, err := s.db.Exec(`INSERT INTO meta (key, value) VALUES ('last_checked', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, ts)
	if err != nil {
		return fmt.Errorf("store: set last checked: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
