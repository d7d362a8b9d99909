// Package store keeps a history of completed analyses in a SQL database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/use-agent/listingscout/models"
)

// Store records analyses and lists them newest first.
type Store interface {
	Save(ctx context.Context, rec *models.HistoryRecord) error
	List(ctx context.Context, kind string, limit int) ([]models.HistoryRecord, error)
	Close() error
}

// DefaultLimit applies when List is called with a non-positive limit.
const DefaultLimit = 50

// SQLStore is a Store over postgres, libsql or sqlite.
type SQLStore struct {
	db       *sql.DB
	postgres bool
	now      func() time.Time
}

// Open connects to dsn and creates the schema. The driver follows the
// scheme: postgres:// and postgresql:// use lib/pq; libsql://, http(s)://
// and wss:// use the libsql client; anything else (a path, file: URI or
// :memory:) is a local sqlite database.
func Open(ctx context.Context, dsn string) (*SQLStore, error) {
	driver, source := driverFor(dsn)
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// Every sqlite connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", driver, err)
	}

	s := &SQLStore{db: db, postgres: driver == "postgres", now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func driverFor(dsn string) (driver, source string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn
	case strings.HasPrefix(dsn, "libsql://"), strings.HasPrefix(dsn, "https://"),
		strings.HasPrefix(dsn, "http://"), strings.HasPrefix(dsn, "wss://"):
		return "libsql", dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite://")
	default:
		return "sqlite", dsn
	}
}

func (s *SQLStore) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS analyses (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    input TEXT NOT NULL,
    summary TEXT NOT NULL,
    created_at BIGINT NOT NULL
)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: migrate schema: %w", err)
	}
	index := `CREATE INDEX IF NOT EXISTS idx_analyses_kind_created ON analyses(kind, created_at)`
	if _, err := s.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("store: migrate index: %w", err)
	}
	return nil
}

// Save inserts rec, assigning an ID and creation time when unset.
func (s *SQLStore) Save(ctx context.Context, rec *models.HistoryRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO analyses(id, kind, input, summary, created_at) VALUES(?, ?, ?, ?, ?)`),
		rec.ID, rec.Kind, rec.Input, rec.Summary, rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("store: insert analysis: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first. An empty kind matches
// every kind.
func (s *SQLStore) List(ctx context.Context, kind string, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `SELECT id, kind, input, summary, created_at FROM analyses`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("store: list analyses: %w", err)
	}
	defer rows.Close()

	out := []models.HistoryRecord{}
	for rows.Next() {
		var rec models.HistoryRecord
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Input, &rec.Summary, &created); err != nil {
			return nil, fmt.Errorf("store: scan analysis: %w", err)
		}
		rec.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// rebind turns ? placeholders into $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if !s.postgres {
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

// Nop is the Store used when no database is configured.
type Nop struct{}

func (Nop) Save(context.Context, *models.HistoryRecord) error { return nil }

func (Nop) List(context.Context, string, int) ([]models.HistoryRecord, error) {
	return []models.HistoryRecord{}, nil
}

func (Nop) Close() error { return nil }
