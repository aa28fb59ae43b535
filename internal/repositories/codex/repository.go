// Package codex provides aggregate monster statistics persistence: how
// often each monster template has been encountered and defeated. Battles
// never read from it; it only accumulates.
package codex

//go:generate mockgen -destination=mock/mock_repository.go -package=codexmock github.com/KirkDiggler/combat-api/internal/repositories/codex Repository

import (
	"context"
	"time"
)

// Entry is the aggregate record for one monster template.
type Entry struct {
	MonsterID  string
	Encounters int64
	Defeats    int64
	LastSeen   time.Time
}

// Repository defines the interface for codex persistence.
type Repository interface {
	// RecordEncounter increments the encounter count for a monster
	RecordEncounter(ctx context.Context, monsterID string) error

	// RecordDefeat increments the defeat count for a monster
	RecordDefeat(ctx context.Context, monsterID string) error

	// Get retrieves the entry for a monster
	// Returns errors.NotFound if the monster has never been recorded
	Get(ctx context.Context, monsterID string) (*Entry, error)

	// List retrieves all entries ordered by monster ID
	List(ctx context.Context) ([]Entry, error)

	// Close releases the underlying storage handle
	Close() error
}
