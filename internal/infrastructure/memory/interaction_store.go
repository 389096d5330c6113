package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
)

type edge struct {
	from uuid.UUID
	to   uuid.UUID
	kind entities.InteractionKind
}

type blockEdge struct {
	blocker uuid.UUID
	blocked uuid.UUID
}

// InteractionStore keeps the swipe/block ledger in memory
type InteractionStore struct {
	mu     sync.RWMutex
	edges  map[edge]struct{}
	blocks map[blockEdge]struct{}
}

// NewInteractionStore creates an empty interaction store
func NewInteractionStore() *InteractionStore {
	return &InteractionStore{
		edges:  make(map[edge]struct{}),
		blocks: make(map[blockEdge]struct{}),
	}
}

// RecordLike stores a Like edge and reports whether the reverse Like exists
func (s *InteractionStore) RecordLike(ctx context.Context, from, to uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges[edge{from, to, entities.InteractionLike}] = struct{}{}
	_, reciprocated := s.edges[edge{to, from, entities.InteractionLike}]
	return reciprocated, nil
}

// RecordSkip stores a Skip edge
func (s *InteractionStore) RecordSkip(ctx context.Context, from, to uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges[edge{from, to, entities.InteractionSkip}] = struct{}{}
	return nil
}

// RecordBlock adds a one-directional block edge
func (s *InteractionStore) RecordBlock(ctx context.Context, blocker, blocked uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[blockEdge{blocker, blocked}] = struct{}{}
	return nil
}

// RemoveBlock removes a block edge
func (s *InteractionStore) RemoveBlock(ctx context.Context, blocker, blocked uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blocks, blockEdge{blocker, blocked})
	return nil
}

// IsBlocked reports whether viewer has blocked candidate
func (s *InteractionStore) IsBlocked(ctx context.Context, viewer, candidate uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[blockEdge{viewer, candidate}]
	return ok, nil
}

// ListBlocked returns the IDs the user has blocked
func (s *InteractionStore) ListBlocked(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, 0)
	for b := range s.blocks {
		if b.blocker == userID {
			ids = append(ids, b.blocked)
		}
	}
	return ids, nil
}
