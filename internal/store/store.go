// Package store persists analyzed documents and their clauses in SQLite or
// Postgres through database/sql.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ppiankov/clariscan/internal/model"
)

// ErrNotFound is returned when a document id does not exist
var ErrNotFound = errors.New("document not found")

// Document is a stored analysis
type Document struct {
	ID           int64           `json:"id"`
	Filename     string          `json:"filename"`
	UploadedAt   time.Time       `json:"uploaded_at"`
	Status       model.Status    `json:"status"`
	OverallRisk  model.RiskLevel `json:"overall_risk"`
	RiskScore    int             `json:"risk_score"`
	TotalClauses int             `json:"total_clauses"`
	Clauses      []Clause        `json:"clauses,omitempty"`
}

// Clause is one stored clause result
type Clause struct {
	ID          int64           `json:"id"`
	DocumentID  int64           `json:"document_id"`
	Position    int             `json:"position"`
	ClauseText  string          `json:"clause_text"`
	RiskLevel   model.RiskLevel `json:"risk_level"`
	Explanation string          `json:"explanation"`
	Suggestion  string          `json:"suggestion"`
}

// Store wraps the database handle
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Driver picks postgres for postgres:// DSNs and sqlite3 otherwise
func Driver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres"
	}
	return "sqlite3"
}

// Open connects to dsn and creates the schema
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("store: empty dsn")
	}

	driver := Driver(dsn)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		// one connection keeps :memory: databases shared and serializes writers
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	s := &Store{db: db, driver: driver, now: time.Now}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the documents and clauses tables if missing
func (s *Store) Migrate(ctx context.Context) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	timeType := "DATETIME"
	if s.driver == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
		timeType = "TIMESTAMPTZ"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id ` + idColumn + `,
			filename TEXT NOT NULL,
			uploaded_at ` + timeType + ` NOT NULL,
			status TEXT NOT NULL,
			overall_risk TEXT NOT NULL,
			risk_score INTEGER NOT NULL DEFAULT 0,
			total_clauses INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS clauses (
			id ` + idColumn + `,
			document_id BIGINT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			clause_text TEXT NOT NULL,
			risk_level TEXT NOT NULL,
			explanation TEXT NOT NULL,
			suggestion TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_clauses_document ON clauses(document_id)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// CreateDocument stores a report and its clauses in one transaction
func (s *Store) CreateDocument(ctx context.Context, filename string, report *model.Report) (Document, error) {
	doc := Document{
		Filename:     filename,
		UploadedAt:   s.now().UTC().Truncate(time.Second),
		Status:       report.Status,
		OverallRisk:  model.RiskUnknown,
		TotalClauses: len(report.Clauses),
	}
	if report.Document != nil {
		doc.OverallRisk = report.Document.Overview.OverallRisk
		doc.RiskScore = report.Document.Overview.RiskScore
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Document{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, s.rebind(
		`INSERT INTO documents (filename, uploaded_at, status, overall_risk, risk_score, total_clauses)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		doc.Filename, doc.UploadedAt, string(doc.Status), string(doc.OverallRisk), doc.RiskScore, doc.TotalClauses,
	).Scan(&doc.ID)
	if err != nil {
		return Document{}, fmt.Errorf("insert document: %w", err)
	}

	insertClause := s.rebind(`INSERT INTO clauses (document_id, position, clause_text, risk_level, explanation, suggestion)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	for _, c := range report.Clauses {
		cl := Clause{
			DocumentID:  doc.ID,
			Position:    c.Index,
			ClauseText:  c.Text,
			RiskLevel:   c.Analysis.RiskLevel,
			Explanation: c.Analysis.Explanation,
			Suggestion:  c.Analysis.Suggestion,
		}
		err := tx.QueryRowContext(ctx, insertClause,
			cl.DocumentID, cl.Position, cl.ClauseText, string(cl.RiskLevel), cl.Explanation, cl.Suggestion,
		).Scan(&cl.ID)
		if err != nil {
			return Document{}, fmt.Errorf("insert clause %d: %w", c.Index, err)
		}
		doc.Clauses = append(doc.Clauses, cl)
	}

	if err := tx.Commit(); err != nil {
		return Document{}, fmt.Errorf("commit: %w", err)
	}
	return doc, nil
}

// GetDocument loads a document with its clauses in position order
func (s *Store) GetDocument(ctx context.Context, id int64) (Document, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, filename, uploaded_at, status, overall_risk, risk_score, total_clauses
		FROM documents WHERE id = ?`), id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, document_id, position, clause_text, risk_level, explanation, suggestion
		FROM clauses WHERE document_id = ? ORDER BY position`), id)
	if err != nil {
		return Document{}, fmt.Errorf("get clauses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c Clause
		var level string
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Position, &c.ClauseText, &level, &c.Explanation, &c.Suggestion); err != nil {
			return Document{}, fmt.Errorf("scan clause: %w", err)
		}
		c.RiskLevel = model.RiskLevel(level)
		doc.Clauses = append(doc.Clauses, c)
	}
	if err := rows.Err(); err != nil {
		return Document{}, fmt.Errorf("get clauses: %w", err)
	}
	return doc, nil
}

// ListDocuments returns the most recent documents without clauses
func (s *Store) ListDocuments(ctx context.Context, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, filename, uploaded_at, status, overall_risk, risk_score, total_clauses
		FROM documents ORDER BY uploaded_at DESC, id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	docs := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (Document, error) {
	var d Document
	var status, risk string
	if err := row.Scan(&d.ID, &d.Filename, &d.UploadedAt, &status, &risk, &d.RiskScore, &d.TotalClauses); err != nil {
		return Document{}, err
	}
	d.Status = model.Status(status)
	d.OverallRisk = model.RiskLevel(risk)
	d.UploadedAt = d.UploadedAt.UTC()
	return d, nil
}

// rebind turns ? placeholders into $1, $2, ... for postgres
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
