package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/domain/repositories"
	"tokyo-friends.backend/pkg/logger"
)

// SkipSuppressor hides skipped candidates from the deck for a while
type SkipSuppressor interface {
	Suppress(ctx context.Context, viewer, candidate uuid.UUID) error
	FilterSuppressed(ctx context.Context, viewer uuid.UUID, candidates []uuid.UUID) (map[uuid.UUID]bool, error)
}

// MatchUsecase handles like/skip recording and match lifecycle logic
type MatchUsecase struct {
	interactionRepo repositories.InteractionRepository
	matchRepo       repositories.MatchRepository
	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	skipStore       SkipSuppressor
}

// NewMatchUsecase creates a new match usecase
func NewMatchUsecase(
	interactionRepo repositories.InteractionRepository,
	matchRepo repositories.MatchRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	skipStore SkipSuppressor,
) *MatchUsecase {
	return &MatchUsecase{
		interactionRepo: interactionRepo,
		matchRepo:       matchRepo,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		skipStore:       skipStore,
	}
}

// SendLike records a like and, when it closes a reciprocal pair, returns
// the match. Returns nil when no match formed yet. A sender who has blocked
// the target gets ErrBlockedUser; the reverse direction is not checked here
// because the target's block already hides the sender from the target's deck.
func (u *MatchUsecase) SendLike(ctx context.Context, from, to uuid.UUID) (*entities.Match, error) {
	if from == to {
		return nil, domainerrors.BadRequest("cannot like yourself")
	}

	target, err := u.userRepo.GetByID(ctx, to)
	if err != nil {
		return nil, err
	}
	if target.Status != entities.AccountStatusActive {
		return nil, domainerrors.ErrNotFound
	}

	blocked, err := u.interactionRepo.IsBlocked(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, domainerrors.ErrBlockedUser
	}

	reciprocated, err := u.interactionRepo.RecordLike(ctx, from, to)
	if err != nil {
		return nil, err
	}
	likesSentCounter.Inc()

	if err := u.userRepo.UpdateLastActive(ctx, from); err != nil {
		logger.Warn(ctx, "last-active bump failed after like",
			zap.String("userId", from.String()),
			zap.String("reason", err.Error()),
		)
	}

	if !reciprocated {
		return nil, nil
	}
	return u.createMatch(ctx, from, to)
}

// createMatch inserts the match for a reciprocal pair. Losing the insert
// race to the other direction's like is fine; the existing row is returned.
func (u *MatchUsecase) createMatch(ctx context.Context, from, to uuid.UUID) (*entities.Match, error) {
	now := time.Now()
	match := &entities.Match{
		ID:        uuid.New(),
		UserAID:   from,
		UserBID:   to,
		PairKey:   entities.PairKey(from, to),
		Status:    entities.MatchStatusActive,
		MatchedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := u.matchRepo.Create(ctx, match)
	if err == nil {
		matchesCreatedCounter.Inc()
		return match, nil
	}
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return u.matchRepo.GetByPairKey(ctx, match.PairKey)
	}
	return nil, err
}

// SendSkip records a skip and suppresses the candidate from the viewer's
// deck until the suppression TTL lapses
func (u *MatchUsecase) SendSkip(ctx context.Context, from, to uuid.UUID) error {
	if from == to {
		return domainerrors.BadRequest("cannot skip yourself")
	}
	if err := u.interactionRepo.RecordSkip(ctx, from, to); err != nil {
		return err
	}
	skipsRecordedCounter.Inc()
	return u.skipStore.Suppress(ctx, from, to)
}

// ListMatches lists the caller's matches newest first, with partner details
func (u *MatchUsecase) ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MatchDetail, int64, error) {
	matches, total, err := u.matchRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*entities.MatchDetail, 0, len(matches))
	for _, m := range matches {
		detail, err := u.buildDetail(ctx, userID, m)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, detail)
	}
	return details, total, nil
}

// GetMatchDetail returns one match with partner details. Non-participants
// get ErrNotFound rather than a hint the match exists.
func (u *MatchUsecase) GetMatchDetail(ctx context.Context, userID, matchID uuid.UUID) (*entities.MatchDetail, error) {
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(userID) {
		return nil, domainerrors.ErrNotFound
	}
	return u.buildDetail(ctx, userID, match)
}

func (u *MatchUsecase) buildDetail(ctx context.Context, userID uuid.UUID, match *entities.Match) (*entities.MatchDetail, error) {
	partnerID := match.PartnerID(userID)

	partner, err := u.userRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	profile, err := u.profileRepo.GetByUserID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	detail := &entities.MatchDetail{
		Match:          match,
		PartnerProfile: profile,
		PartnerUser:    partner,
	}
	// contact exchange only while the match is active
	if match.Status == entities.MatchStatusActive {
		detail.PartnerInstagramHandle = profile.InstagramHandle
	}
	return detail, nil
}
