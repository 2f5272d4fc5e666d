package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// DefaultListLimit is used by List when limit is not positive.
const DefaultListLimit = 100

// Store keeps the transition journal in SQLite or PostgreSQL.
type Store struct {
	db     *sqlx.DB
	dbType DBType
	mu     RWLocker
}

// New creates a new Store with the given database URL.
// Automatically detects database type from URL:
// - postgres:// or postgresql:// -> PostgreSQL
// - everything else -> SQLite
func New(dbURL string) (*Store, error) {
	dbType := detectDBType(dbURL)

	var db *sqlx.DB
	var err error
	var locker RWLocker

	switch dbType {
	case DBTypePostgres:
		db, err = connectPostgres(dbURL)
		locker = noopLocker{}
	default:
		db, err = connectSQLite(dbURL)
		locker = &sync.RWMutex{}
	}

	if err != nil {
		return nil, err
	}

	s := &Store{db: db, dbType: dbType, mu: locker}

	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[DEBUG] initialized %s journal", s.dbTypeName())
	return s, nil
}

// detectDBType determines database type from URL.
func detectDBType(url string) DBType {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DBTypePostgres
	}
	return DBTypeSQLite
}

// connectSQLite establishes SQLite connection with pragmas.
func connectSQLite(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil { //nolint:noctx // init-time, no context available
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	// limit connections for SQLite (single writer)
	db.SetMaxOpenConns(1)

	return db, nil
}

// connectPostgres establishes PostgreSQL connection.
func connectPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// createSchema creates the transitions table if it doesn't exist.
func (s *Store) createSchema() error {
	var schema []string
	switch s.dbType {
	case DBTypePostgres:
		schema = []string{`
			CREATE TABLE IF NOT EXISTS transitions (
				id TEXT PRIMARY KEY,
				from_mode TEXT,
				to_mode TEXT NOT NULL,
				method TEXT NOT NULL,
				error TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transitions_created_at ON transitions (created_at)`,
		}
	default:
		schema = []string{`
			CREATE TABLE IF NOT EXISTS transitions (
				id TEXT PRIMARY KEY,
				from_mode TEXT,
				to_mode TEXT NOT NULL,
				method TEXT NOT NULL,
				error TEXT NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transitions_created_at ON transitions (created_at)`,
		}
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil { //nolint:noctx // init-time, no context available
			return fmt.Errorf("failed to execute schema: %w", err)
		}
	}
	return nil
}

// dbTypeName returns human-readable database type name.
func (s *Store) dbTypeName() string {
	switch s.dbType {
	case DBTypePostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

// Record stores the transition. Empty ID and zero CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, tr Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr.ID == "" {
		tr.ID = uuid.NewString()
	}
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now()
	}
	tr.CreatedAt = tr.CreatedAt.UTC()

	query := s.adoptQuery(`INSERT INTO transitions (id, from_mode, to_mode, method, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, tr.ID, tr.From, tr.To, tr.Method, tr.Error, tr.CreatedAt); err != nil {
		return fmt.Errorf("failed to record transition %s: %w", tr.ID, err)
	}
	return nil
}

// List returns up to limit transitions, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Transition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultListLimit
	}

	var res []Transition
	query := s.adoptQuery(`SELECT id, from_mode, to_mode, method, error, created_at
		FROM transitions ORDER BY created_at DESC LIMIT ?`)
	if err := s.db.SelectContext(ctx, &res, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list transitions: %w", err)
	}
	return res, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// adoptQuery converts SQLite placeholders (?) to PostgreSQL ones ($1, $2, ...).
func (s *Store) adoptQuery(query string) string {
	if s.dbType != DBTypePostgres {
		return query
	}

	result := make([]byte, 0, len(query)+10)
	paramNum := 1
	for i := range len(query) {
		if query[i] != '?' {
			result = append(result, query[i])
			continue
		}
		result = append(result, '$')
		result = append(result, strconv.Itoa(paramNum)...)
		paramNum++
	}
	return string(result)
}
