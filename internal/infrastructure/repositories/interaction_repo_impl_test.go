package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInteractionRepository_LikeReciprocity(t *testing.T) {
	db := newTestDB(t)
	createInteractionTables(t, db)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()

	reciprocated, err := repo.RecordLike(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, reciprocated)

	reciprocated, err = repo.RecordLike(ctx, bob, alice)
	require.NoError(t, err)
	require.True(t, reciprocated)

	// repeat like is a no-op and still reports reciprocity
	reciprocated, err = repo.RecordLike(ctx, alice, bob)
	require.NoError(t, err)
	require.True(t, reciprocated)
}

func TestInteractionRepository_SkipDoesNotReciprocate(t *testing.T) {
	db := newTestDB(t)
	createInteractionTables(t, db)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, repo.RecordSkip(ctx, bob, alice))

	reciprocated, err := repo.RecordLike(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, reciprocated)

	// skip and like on the same edge are distinct kinds
	require.NoError(t, repo.RecordSkip(ctx, alice, bob))
	require.NoError(t, repo.RecordSkip(ctx, alice, bob))
}

func TestInteractionRepository_BlocksAreOneDirectional(t *testing.T) {
	db := newTestDB(t)
	createInteractionTables(t, db)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, repo.RecordBlock(ctx, alice, bob))
	require.NoError(t, repo.RecordBlock(ctx, alice, bob))

	blocked, err := repo.IsBlocked(ctx, alice, bob)
	require.NoError(t, err)
	require.True(t, blocked)

	reverse, err := repo.IsBlocked(ctx, bob, alice)
	require.NoError(t, err)
	require.False(t, reverse)
}

func TestInteractionRepository_ListAndRemoveBlocks(t *testing.T) {
	db := newTestDB(t)
	createInteractionTables(t, db)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.RecordBlock(ctx, alice, bob))
	require.NoError(t, repo.RecordBlock(ctx, alice, carol))

	ids, err := repo.ListBlocked(ctx, alice)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{bob, carol}, ids)

	require.NoError(t, repo.RemoveBlock(ctx, alice, bob))
	require.NoError(t, repo.RemoveBlock(ctx, alice, bob))

	ids, err = repo.ListBlocked(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{carol}, ids)

	blocked, err := repo.IsBlocked(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, blocked)
}
