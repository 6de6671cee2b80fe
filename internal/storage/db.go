package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when registering an email that is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			college_code  TEXT NOT NULL,
			type          TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS resumes (
			id             TEXT PRIMARY KEY,
			owner_id       TEXT NOT NULL UNIQUE REFERENCES users(id),
			name           TEXT NOT NULL,
			email          TEXT NOT NULL,
			suggested_role TEXT NOT NULL,
			skills         TEXT NOT NULL,
			experience     TEXT NOT NULL,
			raw_text       TEXT NOT NULL,
			file_path      TEXT NOT NULL,
			college_code   TEXT NOT NULL,
			uploaded_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_college_code ON resumes(college_code)`,
		`CREATE TABLE IF NOT EXISTS match_history (
			id              TEXT PRIMARY KEY,
			requester_id    TEXT NOT NULL,
			job_description TEXT NOT NULL,
			college_code    TEXT NOT NULL,
			matches         JSONB NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_history_requester ON match_history(requester_id, created_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.connection.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new account. Email must be unique.
func (db *DB) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, name, email, password_hash, college_code, type, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := db.connection.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CollegeCode,
		user.Type,
		user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (db *DB) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	query := `SELECT id, name, email, password_hash, college_code, type, created_at FROM users WHERE email = $1`
	row := db.connection.QueryRowContext(ctx, query, email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CollegeCode, &user.Type, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (db *DB) UserByID(ctx context.Context, id string) (*User, error) {
	user := &User{}
	query := `SELECT id, name, email, password_hash, college_code, type, created_at FROM users WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CollegeCode, &user.Type, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertResume stores the resume for its owner, replacing any previous
// one. The stored row keeps its original id on replacement; the resume's
// ID field is updated to the persisted id.
func (db *DB) UpsertResume(ctx context.Context, resume *Resume) error {
	query := `INSERT INTO resumes (id, owner_id, name, email, suggested_role, skills, experience, raw_text, file_path, college_code, uploaded_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              ON CONFLICT (owner_id) DO UPDATE
                SET name = EXCLUDED.name,
                    email = EXCLUDED.email,
                    suggested_role = EXCLUDED.suggested_role,
                    skills = EXCLUDED.skills,
                    experience = EXCLUDED.experience,
                    raw_text = EXCLUDED.raw_text,
                    file_path = EXCLUDED.file_path,
                    uploaded_at = EXCLUDED.uploaded_at
              RETURNING id`
	skills := strings.Join(resume.Skills, ",")
	row := db.connection.QueryRowContext(ctx, query,
		resume.ID,
		resume.OwnerID,
		resume.Name,
		resume.Email,
		resume.SuggestedRole,
		skills,
		resume.Experience,
		resume.RawText,
		resume.FilePath,
		resume.CollegeCode,
		resume.UploadedAt,
	)
	return row.Scan(&resume.ID)
}

func (db *DB) ResumeByOwner(ctx context.Context, ownerID string) (*Resume, error) {
	query := `SELECT id, owner_id, name, email, suggested_role, skills, experience, raw_text, file_path, college_code, uploaded_at
              FROM resumes WHERE owner_id = $1`
	return db.scanResume(db.connection.QueryRowContext(ctx, query, ownerID))
}

func (db *DB) ResumeByID(ctx context.Context, id string) (*Resume, error) {
	query := `SELECT id, owner_id, name, email, suggested_role, skills, experience, raw_text, file_path, college_code, uploaded_at
              FROM resumes WHERE id = $1`
	return db.scanResume(db.connection.QueryRowContext(ctx, query, id))
}

// ResumesByCollege returns the current resumes for an institution code.
// The order is fixed (oldest upload first, id as tie-break) so matching
// over the same pool is reproducible.
func (db *DB) ResumesByCollege(ctx context.Context, code string) ([]*Resume, error) {
	query := `SELECT id, owner_id, name, email, suggested_role, skills, experience, raw_text, file_path, college_code, uploaded_at
              FROM resumes WHERE college_code = $1
              ORDER BY uploaded_at, id`
	rows, err := db.connection.QueryContext(ctx, query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []*Resume
	for rows.Next() {
		resume := &Resume{}
		var skills string
		err := rows.Scan(&resume.ID, &resume.OwnerID, &resume.Name, &resume.Email, &resume.SuggestedRole,
			&skills, &resume.Experience, &resume.RawText, &resume.FilePath, &resume.CollegeCode, &resume.UploadedAt)
		if err != nil {
			return nil, err
		}
		resume.Skills = splitAndTrim(skills)
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

func (db *DB) scanResume(row *sql.Row) (*Resume, error) {
	resume := &Resume{}
	var skills string
	err := row.Scan(&resume.ID, &resume.OwnerID, &resume.Name, &resume.Email, &resume.SuggestedRole,
		&skills, &resume.Experience, &resume.RawText, &resume.FilePath, &resume.CollegeCode, &resume.UploadedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resume.Skills = splitAndTrim(skills)
	return resume, nil
}

// RecordMatch appends a history entry. The per-candidate summaries are
// stored as a JSONB document.
func (db *DB) RecordMatch(ctx context.Context, entry *HistoryEntry) error {
	matches, err := json.Marshal(entry.Matches)
	if err != nil {
		return fmt.Errorf("marshal matches: %w", err)
	}
	query := `INSERT INTO match_history (id, requester_id, job_description, college_code, matches, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = db.connection.ExecContext(ctx, query,
		entry.ID,
		entry.RequesterID,
		entry.JobDescription,
		entry.CollegeCode,
		matches,
		entry.CreatedAt,
	)
	return err
}

// HistoryByRequester returns the requester's match history, most recent first.
func (db *DB) HistoryByRequester(ctx context.Context, requesterID string) ([]*HistoryEntry, error) {
	query := `SELECT id, requester_id, job_description, college_code, matches, created_at
              FROM match_history WHERE requester_id = $1
              ORDER BY created_at DESC, id`
	rows, err := db.connection.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		entry := &HistoryEntry{}
		var matches []byte
		err := rows.Scan(&entry.ID, &entry.RequesterID, &entry.JobDescription, &entry.CollegeCode, &matches, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(matches, &entry.Matches); err != nil {
			return nil, fmt.Errorf("unmarshal matches for history %s: %w", entry.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
