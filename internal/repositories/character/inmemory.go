package character

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Useful
// for the simulator CLI and tests that don't need Redis.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

func clonePlayer(data []byte) (*entities.PlayerState, error) {
	var player entities.PlayerState
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player state")
	}
	return &player, nil
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Player.ID]; exists {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Player.ID)
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal player state")
	}
	r.store[input.Player.ID] = data

	return &CreateOutput{Player: input.Player}, nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	player, err := clonePlayer(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Player: player}, nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Player.ID]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.Player.ID)
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal player state")
	}
	r.store[input.Player.ID] = data

	return &UpdateOutput{Player: input.Player}, nil
}

// Delete removes a character by ID
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// ListByPlayerID retrieves all characters belonging to a player
func (r *InMemoryRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]*entities.PlayerState, 0)
	for _, data := range r.store {
		player, err := clonePlayer(data)
		if err != nil {
			return nil, err
		}
		if player.PlayerID == input.PlayerID {
			players = append(players, player)
		}
	}

	return &ListByPlayerIDOutput{Players: players}, nil
}
