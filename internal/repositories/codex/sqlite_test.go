package codex_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/repositories/codex"
)

func openTestStore(t *testing.T) *codex.Store {
	t.Helper()
	store, err := codex.Open(filepath.Join(t.TempDir(), "codex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndGet(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.RecordEncounter(ctx, "goblin"))
	require.NoError(t, store.RecordEncounter(ctx, "goblin"))
	require.NoError(t, store.RecordDefeat(ctx, "goblin"))

	entry, err := store.Get(ctx, "goblin")
	require.NoError(t, err)
	assert.Equal(t, "goblin", entry.MonsterID)
	assert.Equal(t, int64(2), entry.Encounters)
	assert.Equal(t, int64(1), entry.Defeats)
	assert.False(t, entry.LastSeen.IsZero())
}

func TestStore_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.Get(ctx, "wraith")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestStore_List_OrderedByMonsterID(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.RecordDefeat(ctx, "skeleton"))
	require.NoError(t, store.RecordEncounter(ctx, "goblin"))
	require.NoError(t, store.RecordEncounter(ctx, "ember_dragon"))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "ember_dragon", entries[0].MonsterID)
	assert.Equal(t, "goblin", entries[1].MonsterID)
	assert.Equal(t, "skeleton", entries[2].MonsterID)
}

func TestStore_InvalidInputs(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	assert.True(t, errors.IsInvalidArgument(store.RecordEncounter(ctx, "")))
	assert.True(t, errors.IsInvalidArgument(store.RecordDefeat(ctx, "  ")))

	_, err := store.Get(ctx, "")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = codex.Open("")
	assert.True(t, errors.IsInvalidArgument(err))
}
