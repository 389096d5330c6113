package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const skipKeyPrefix = "skip:"

// SkipStore suppresses recently skipped cards for a while. A skip sets a
// per-pair key with a TTL; once the key expires the candidate resurfaces
// in the deck. The durable skip edge stays in the interaction ledger.
type SkipStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSkipStore creates a skip suppression store
func NewSkipStore(client *redis.Client, ttl time.Duration) *SkipStore {
	return &SkipStore{client: client, ttl: ttl}
}

func skipKey(viewer, candidate uuid.UUID) string {
	return skipKeyPrefix + viewer.String() + ":" + candidate.String()
}

// Suppress hides a candidate from the viewer's deck until the TTL lapses
func (s *SkipStore) Suppress(ctx context.Context, viewer, candidate uuid.UUID) error {
	return s.client.Set(ctx, skipKey(viewer, candidate), "1", s.ttl).Err()
}

// IsSuppressed reports whether the candidate is currently hidden for the viewer
func (s *SkipStore) IsSuppressed(ctx context.Context, viewer, candidate uuid.UUID) (bool, error) {
	n, err := s.client.Exists(ctx, skipKey(viewer, candidate)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FilterSuppressed returns the subset of candidates currently hidden for
// the viewer, using a single pipelined round trip.
func (s *SkipStore) FilterSuppressed(ctx context.Context, viewer uuid.UUID, candidates []uuid.UUID) (map[uuid.UUID]bool, error) {
	suppressed := make(map[uuid.UUID]bool, len(candidates))
	if len(candidates) == 0 {
		return suppressed, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.IntCmd, len(candidates))
	for i, candidate := range candidates {
		cmds[i] = pipe.Exists(ctx, skipKey(viewer, candidate))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	for i, cmd := range cmds {
		if cmd.Val() > 0 {
			suppressed[candidates[i]] = true
		}
	}
	return suppressed, nil
}
