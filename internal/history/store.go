// Package history keeps a best-effort journal of launched jobs in SQLite.
// The interactive loop never depends on it: a missing or broken journal only
// surfaces as a status-line message.
package history

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Entry is one journal row. JobID is the spawn-time UUID; Status and exit
// data stay empty until the job reaches a terminal state.
type Entry struct {
	JobID      string
	Screen     string
	Command    string
	PID        int
	Status     string
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the journal at path and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir history dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func (s *Store) Close() error { return s.db.Close() }

// RecordStart journals a freshly spawned job.
func (s *Store) RecordStart(jobID, screen, command string, pid int, startedAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (job_id, screen, command, pid, status, started_at)
		VALUES (?, ?, ?, ?, 'running', ?)`,
		jobID, screen, command, pid, startedAt.UTC())
	if err != nil {
		return fmt.Errorf("record start: %w", err)
	}
	return nil
}

// RecordExit journals the terminal status of a job.
func (s *Store) RecordExit(jobID, status string, exitCode int, finishedAt time.Time) error {
	_, err := s.db.Exec(`
		UPDATE runs SET status = ?, exit_code = ?, finished_at = ?
		WHERE job_id = ?`,
		status, exitCode, finishedAt.UTC(), jobID)
	if err != nil {
		return fmt.Errorf("record exit: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT job_id, screen, command, pid, status, COALESCE(exit_code, 0),
		       started_at, finished_at
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var finished sql.NullTime
		if err := rows.Scan(&e.JobID, &e.Screen, &e.Command, &e.PID, &e.Status, &e.ExitCode, &e.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		if finished.Valid {
			e.FinishedAt = finished.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
