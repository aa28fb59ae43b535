package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/repositories/character"
	"github.com/KirkDiggler/combat-api/internal/testutils"
)

func TestInMemoryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := character.NewInMemory()
	player := testutils.CreateTestWarrior("player-1")

	_, err := repo.Create(ctx, character.CreateInput{Player: player})
	require.NoError(t, err)

	got, err := repo.Get(ctx, character.GetInput{ID: player.ID})
	require.NoError(t, err)
	assert.Equal(t, player.Name, got.Player.Name)

	// Stored state is cloned: mutating the returned copy must not leak
	got.Player.HP = 0
	again, err := repo.Get(ctx, character.GetInput{ID: player.ID})
	require.NoError(t, err)
	assert.Equal(t, player.HP, again.Player.HP)
}

func TestInMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := character.NewInMemory()
	player := testutils.CreateTestWarrior("player-1")

	_, err := repo.Get(ctx, character.GetInput{ID: "missing"})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Update(ctx, character.UpdateInput{Player: player})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Create(ctx, character.CreateInput{Player: player})
	require.NoError(t, err)
	_, err = repo.Create(ctx, character.CreateInput{Player: player})
	assert.True(t, errors.IsAlreadyExists(err))

	_, err = repo.Delete(ctx, character.DeleteInput{ID: player.ID})
	require.NoError(t, err)
	_, err = repo.Delete(ctx, character.DeleteInput{ID: player.ID})
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemoryRepository_ListByPlayerID(t *testing.T) {
	ctx := context.Background()
	repo := character.NewInMemory()

	_, err := repo.Create(ctx, character.CreateInput{Player: testutils.CreateTestWarrior("player-1")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, character.CreateInput{Player: testutils.CreateTestMage("player-2")})
	require.NoError(t, err)

	list, err := repo.ListByPlayerID(ctx, character.ListByPlayerIDInput{PlayerID: "player-1"})
	require.NoError(t, err)
	assert.Len(t, list.Players, 1)
}
