// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed digest runs in a local SQLite database
// so past rankings can be listed and re-inspected without re-processing the
// PDFs.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docdigest/pkg/types"
)

const dbFile = "digests.db"

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/digests.db, creating
// the schema if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			persona TEXT NOT NULL,
			job TEXT NOT NULL,
			created_at TEXT NOT NULL,
			documents TEXT NOT NULL,
			output_path TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			document TEXT NOT NULL,
			title TEXT NOT NULL,
			page INTEGER NOT NULL,
			refined_text TEXT NOT NULL,
			PRIMARY KEY (run_id, rank)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_run ON sections(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun stores a completed digest and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, digest types.Digest, outputPath string) (int64, error) {
	docs, err := json.Marshal(digest.Metadata.InputDocuments)
	if err != nil {
		return 0, fmt.Errorf("encoding document list: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (persona, job, created_at, documents, output_path)
		 VALUES (?, ?, ?, ?, ?)`,
		digest.Metadata.Persona, digest.Metadata.JobToBeDone,
		digest.Metadata.ProcessingTimestamp, string(docs), outputPath)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for i, sec := range digest.ExtractedSections {
		refined := ""
		if i < len(digest.SubsectionAnalysis) {
			refined = digest.SubsectionAnalysis[i].RefinedText
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (run_id, rank, document, title, page, refined_text)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, sec.ImportanceRank, sec.Document, sec.SectionTitle,
			sec.PageNumber, refined); err != nil {
			return 0, fmt.Errorf("inserting section %d: %w", sec.ImportanceRank, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RunSummary is one row of the run listing.
type RunSummary struct {
	ID        int64  `json:"id" yaml:"id"`
	Persona   string `json:"persona" yaml:"persona"`
	Job       string `json:"job" yaml:"job"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	Documents int    `json:"documents" yaml:"documents"`
	Sections  int    `json:"sections" yaml:"sections"`
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.persona, r.job, r.created_at, r.documents,
			(SELECT COUNT(*) FROM sections WHERE run_id = r.id)
		 FROM runs r ORDER BY r.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var rs RunSummary
		var docsJSON string
		if err := rows.Scan(&rs.ID, &rs.Persona, &rs.Job, &rs.CreatedAt, &docsJSON, &rs.Sections); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		var docs []string
		if err := json.Unmarshal([]byte(docsJSON), &docs); err == nil {
			rs.Documents = len(docs)
		}
		summaries = append(summaries, rs)
	}
	return summaries, rows.Err()
}

// GetRun reconstructs the stored digest for one run ID.
func (s *Store) GetRun(ctx context.Context, id int64) (types.Digest, error) {
	var digest types.Digest
	var docsJSON string

	err := s.db.QueryRowContext(ctx,
		`SELECT persona, job, created_at, documents FROM runs WHERE id = ?`, id,
	).Scan(&digest.Metadata.Persona, &digest.Metadata.JobToBeDone,
		&digest.Metadata.ProcessingTimestamp, &docsJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Digest{}, fmt.Errorf("run %d not found", id)
		}
		return types.Digest{}, fmt.Errorf("looking up run: %w", err)
	}

	if err := json.Unmarshal([]byte(docsJSON), &digest.Metadata.InputDocuments); err != nil {
		return types.Digest{}, fmt.Errorf("decoding document list: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT rank, document, title, page, refined_text
		 FROM sections WHERE run_id = ? ORDER BY rank`, id)
	if err != nil {
		return types.Digest{}, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sec types.ExtractedSection
		var refined string
		if err := rows.Scan(&sec.ImportanceRank, &sec.Document, &sec.SectionTitle,
			&sec.PageNumber, &refined); err != nil {
			return types.Digest{}, fmt.Errorf("scanning section: %w", err)
		}
		digest.ExtractedSections = append(digest.ExtractedSections, sec)
		digest.SubsectionAnalysis = append(digest.SubsectionAnalysis, types.SubsectionEntry{
			Document:    sec.Document,
			RefinedText: refined,
			PageNumber:  sec.PageNumber,
		})
	}
	return digest, rows.Err()
}
