package character

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/combat-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	errPlayerNil     = "player state cannot be nil"
	errCharacterID   = "character ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	key := characterKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Player.ID)
	}

	now := r.clock.Now().Unix()
	input.Player.CreatedAt = now
	input.Player.UpdatedAt = now

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal player state")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // characters never expire
	if input.Player.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Player.PlayerID, input.Player.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	return &CreateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get character")
	}

	var player entities.PlayerState
	if err := json.Unmarshal([]byte(result), &player); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player state")
	}

	return &GetOutput{Player: &player}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	key := characterKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.Player.ID)
	}

	input.Player.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal player state")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &UpdateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterID)
	}

	key := characterKeyPrefix + input.ID

	// Load first so the player index can be cleaned up
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get character")
	}

	var player entities.PlayerState
	if err := json.Unmarshal([]byte(result), &player); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player state")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if player.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+player.PlayerID, player.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list character IDs")
	}

	players := make([]*entities.PlayerState, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// stale index entry, skip
				continue
			}
			return nil, err
		}
		players = append(players, out.Player)
	}

	return &ListByPlayerIDOutput{Players: players}, nil
}
