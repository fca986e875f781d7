package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the journal in process memory. Nothing survives a restart.
const MemoryDSN = ":memory:"

// Store holds the journal database and provides access to repositories.
type Store struct {
	db     *sql.DB
	drv    *entsql.Driver
	seq    *sequenceCounter
	logger *zap.Logger
}

// Open creates a Store connected to the SQLite database at dsn, applies
// pragmas and creates the journal tables.
func Open(dsn string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := createTables(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		drv.Close()
		return nil, err
	}

	logger.Debug("journal opened", zap.String("dsn", dsn))
	return &Store{db: db, drv: drv, seq: seq, logger: logger}, nil
}

// OpenMemory opens a fresh in-memory journal.
func OpenMemory(logger *zap.Logger) (*Store, error) {
	return Open(MemoryDSN, logger)
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{drv: s.drv, seq: s.seq, logger: s.logger}
}

// applyPragmas configures SQLite for a single in-process writer.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// journalSchema holds the DDL for the journal tables.
var journalSchema = []string{
	`CREATE TABLE IF NOT EXISTS ` + tableAttemptEvents + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		attempt_id TEXT NOT NULL,
		level_id INTEGER NOT NULL,
		level_title TEXT NOT NULL DEFAULT '',
		player TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL,
		correct INTEGER NOT NULL DEFAULT 0,
		total INTEGER NOT NULL DEFAULT 0,
		passed BOOLEAN NOT NULL DEFAULT false,
		score_earned INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS attempt_events_attempt_id ON ` + tableAttemptEvents + ` (attempt_id)`,
	`CREATE TABLE IF NOT EXISTS ` + tableAnswerEvents + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		attempt_id TEXT NOT NULL,
		level_id INTEGER NOT NULL,
		question_index INTEGER NOT NULL,
		option_index INTEGER NOT NULL,
		correct BOOLEAN NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_attempt_id ON ` + tableAnswerEvents + ` (attempt_id)`,
}

// createTables builds the journal schema through the ent driver.
func createTables(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range journalSchema {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}
