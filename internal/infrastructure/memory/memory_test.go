package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
)

func TestMatchStore_ConcurrentCreateSamePair(t *testing.T) {
	store := NewMatchStore()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	const attempts = 100
	var wg sync.WaitGroup
	var created sync.Map
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		// half the goroutines see the pair in each order
		a, b := alice, bob
		if i%2 == 1 {
			a, b = bob, alice
		}
		go func() {
			defer wg.Done()
			m := &entities.Match{
				ID:        uuid.New(),
				UserAID:   a,
				UserBID:   b,
				PairKey:   entities.PairKey(a, b),
				Status:    entities.MatchStatusActive,
				MatchedAt: time.Now(),
			}
			if err := store.Create(ctx, m); err != nil {
				errs <- err
				return
			}
			created.Store(m.ID, struct{}{})
		}()
	}
	wg.Wait()
	close(errs)

	wins := 0
	created.Range(func(_, _ interface{}) bool {
		wins++
		return true
	})
	require.Equal(t, 1, wins)

	losses := 0
	for err := range errs {
		require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
		losses++
	}
	require.Equal(t, attempts-1, losses)

	matches, total, err := store.ListByUser(ctx, alice, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, matches, 1)
}

func TestMatchStore_ListByUserNewestFirst(t *testing.T) {
	store := NewMatchStore()
	ctx := context.Background()
	alice := uuid.New()
	base := time.Now().Add(-time.Hour)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		m := &entities.Match{
			ID:        uuid.New(),
			UserAID:   alice,
			UserBID:   uuid.New(),
			Status:    entities.MatchStatusActive,
			MatchedAt: base.Add(time.Duration(i) * time.Minute),
		}
		m.PairKey = entities.PairKey(m.UserAID, m.UserBID)
		require.NoError(t, store.Create(ctx, m))
		ids = append(ids, m.ID)
	}

	matches, total, err := store.ListByUser(ctx, alice, 2, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, matches, 2)
	require.Equal(t, ids[2], matches[0].ID)
	require.Equal(t, ids[1], matches[1].ID)
}

func TestMatchStore_UpdateStatus(t *testing.T) {
	store := NewMatchStore()
	ctx := context.Background()

	m := &entities.Match{
		ID:        uuid.New(),
		UserAID:   uuid.New(),
		UserBID:   uuid.New(),
		Status:    entities.MatchStatusActive,
		MatchedAt: time.Now(),
	}
	m.PairKey = entities.PairKey(m.UserAID, m.UserBID)
	require.NoError(t, store.Create(ctx, m))

	require.NoError(t, store.UpdateStatus(ctx, m.ID, entities.MatchStatusBlockedByB))
	got, err := store.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MatchStatusBlockedByB, got.Status)

	require.ErrorIs(t, store.UpdateStatus(ctx, uuid.New(), entities.MatchStatusActive), domainerrors.ErrNotFound)
}

func TestInteractionStore_LikeReciprocity(t *testing.T) {
	store := NewInteractionStore()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	reciprocated, err := store.RecordLike(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, reciprocated)

	reciprocated, err = store.RecordLike(ctx, bob, alice)
	require.NoError(t, err)
	require.True(t, reciprocated)
}

func TestInteractionStore_Blocks(t *testing.T) {
	store := NewInteractionStore()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, store.RecordBlock(ctx, alice, bob))

	blocked, err := store.IsBlocked(ctx, alice, bob)
	require.NoError(t, err)
	require.True(t, blocked)

	reverse, err := store.IsBlocked(ctx, bob, alice)
	require.NoError(t, err)
	require.False(t, reverse)

	ids, err := store.ListBlocked(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{bob}, ids)

	require.NoError(t, store.RemoveBlock(ctx, alice, bob))
	blocked, err = store.IsBlocked(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestUserStore_ConcurrentPenalties(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	u := &entities.User{
		ID:         uuid.New(),
		TrustScore: entities.DefaultTrustScore,
		AuthMethod: entities.AuthMethodApple,
		Status:     entities.AccountStatusActive,
	}
	require.NoError(t, store.Create(ctx, u))

	const penalties = 50
	var wg sync.WaitGroup
	for i := 0; i < penalties; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, store.Penalize(ctx, u.ID, 0.01))
		}()
	}
	wg.Wait()

	score, err := store.GetScore(ctx, u.ID)
	require.NoError(t, err)
	require.InDelta(t, 0.5, score, 1e-9)
}

func TestUserStore_Lifecycle(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	u := &entities.User{
		ID:         uuid.New(),
		TrustScore: entities.DefaultTrustScore,
		AuthMethod: entities.AuthMethodPhone,
		Status:     entities.AccountStatusActive,
	}
	require.NoError(t, store.Create(ctx, u))
	require.ErrorIs(t, store.Create(ctx, u), domainerrors.ErrAlreadyExists)

	require.NoError(t, store.SoftDelete(ctx, u.ID))
	got, err := store.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AccountStatusDeleted, got.Status)
	require.NotNil(t, got.DeletedAt)
}
