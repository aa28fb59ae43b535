package codex

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/combat-api/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS monster_codex (
	monster_id   TEXT PRIMARY KEY,
	encounters   INTEGER NOT NULL DEFAULT 0,
	defeats      INTEGER NOT NULL DEFAULT 0,
	last_seen_ms INTEGER NOT NULL
);`

// Store persists codex state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite codex store at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "create codex schema")
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) record(ctx context.Context, monsterID, column string) error {
	if strings.TrimSpace(monsterID) == "" {
		return errors.InvalidArgument("monster ID is required")
	}
	now := time.Now().UTC().UnixMilli()
	// column is one of the two fixed counter names below, never user input
	query := `
INSERT INTO monster_codex (monster_id, ` + column + `, last_seen_ms)
VALUES (?, 1, ?)
ON CONFLICT(monster_id) DO UPDATE SET
	` + column + ` = ` + column + ` + 1,
	last_seen_ms = excluded.last_seen_ms`
	if _, err := s.sqlDB.ExecContext(ctx, query, monsterID, now); err != nil {
		return errors.Wrap(err, "record codex entry")
	}
	return nil
}

// RecordEncounter increments the encounter count for a monster.
func (s *Store) RecordEncounter(ctx context.Context, monsterID string) error {
	return s.record(ctx, monsterID, "encounters")
}

// RecordDefeat increments the defeat count for a monster.
func (s *Store) RecordDefeat(ctx context.Context, monsterID string) error {
	return s.record(ctx, monsterID, "defeats")
}

// Get retrieves the entry for a monster.
func (s *Store) Get(ctx context.Context, monsterID string) (*Entry, error) {
	if strings.TrimSpace(monsterID) == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT monster_id, encounters, defeats, last_seen_ms FROM monster_codex WHERE monster_id = ?`,
		monsterID)

	var entry Entry
	var lastSeenMillis int64
	if err := row.Scan(&entry.MonsterID, &entry.Encounters, &entry.Defeats, &lastSeenMillis); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no codex entry for monster %s", monsterID)
		}
		return nil, errors.Wrap(err, "get codex entry")
	}
	entry.LastSeen = time.UnixMilli(lastSeenMillis).UTC()
	return &entry, nil
}

// List retrieves all entries ordered by monster ID.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT monster_id, encounters, defeats, last_seen_ms FROM monster_codex ORDER BY monster_id`)
	if err != nil {
		return nil, errors.Wrap(err, "list codex entries")
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var lastSeenMillis int64
		if err := rows.Scan(&entry.MonsterID, &entry.Encounters, &entry.Defeats, &lastSeenMillis); err != nil {
			return nil, errors.Wrap(err, "scan codex entry")
		}
		entry.LastSeen = time.UnixMilli(lastSeenMillis).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate codex entries")
	}
	return entries, nil
}
