package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newSkipStoreForTest(t *testing.T, ttl time.Duration) (*SkipStore, *miniredis.Miniredis) {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { cli.Close() })

	return NewSkipStore(cli, ttl), srv
}

func TestSkipStore_SuppressAndCheck(t *testing.T) {
	store, _ := newSkipStoreForTest(t, time.Hour)
	ctx := context.Background()
	viewer := uuid.New()
	candidate := uuid.New()

	hidden, err := store.IsSuppressed(ctx, viewer, candidate)
	assert.NoError(t, err)
	assert.False(t, hidden)

	assert.NoError(t, store.Suppress(ctx, viewer, candidate))

	hidden, err = store.IsSuppressed(ctx, viewer, candidate)
	assert.NoError(t, err)
	assert.True(t, hidden)

	// The suppression is one-directional.
	hidden, err = store.IsSuppressed(ctx, candidate, viewer)
	assert.NoError(t, err)
	assert.False(t, hidden)
}

func TestSkipStore_SuppressionExpires(t *testing.T) {
	store, srv := newSkipStoreForTest(t, time.Minute)
	ctx := context.Background()
	viewer := uuid.New()
	candidate := uuid.New()

	assert.NoError(t, store.Suppress(ctx, viewer, candidate))

	srv.FastForward(2 * time.Minute)

	hidden, err := store.IsSuppressed(ctx, viewer, candidate)
	assert.NoError(t, err)
	assert.False(t, hidden)
}

func TestSkipStore_FilterSuppressed(t *testing.T) {
	store, _ := newSkipStoreForTest(t, time.Hour)
	ctx := context.Background()
	viewer := uuid.New()
	hidden := uuid.New()
	visible := uuid.New()

	assert.NoError(t, store.Suppress(ctx, viewer, hidden))

	got, err := store.FilterSuppressed(ctx, viewer, []uuid.UUID{hidden, visible})
	assert.NoError(t, err)
	assert.True(t, got[hidden])
	assert.False(t, got[visible])
	assert.Len(t, got, 1)
}

func TestSkipStore_FilterSuppressedEmptyInput(t *testing.T) {
	store, _ := newSkipStoreForTest(t, time.Hour)

	got, err := store.FilterSuppressed(context.Background(), uuid.New(), nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
