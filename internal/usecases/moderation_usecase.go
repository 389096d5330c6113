package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"tokyo-friends.backend/internal/config"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/domain/repositories"
	"tokyo-friends.backend/pkg/logger"
)

// ModerationUsecase coordinates blocks, reports and their cascades
type ModerationUsecase struct {
	interactionRepo repositories.InteractionRepository
	matchRepo       repositories.MatchRepository
	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	trustRepo       repositories.TrustRepository
	reportRepo      repositories.ReportRepository
	cfg             config.ModerationConfig
}

// NewModerationUsecase creates a new moderation usecase
func NewModerationUsecase(
	interactionRepo repositories.InteractionRepository,
	matchRepo repositories.MatchRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	trustRepo repositories.TrustRepository,
	reportRepo repositories.ReportRepository,
	cfg config.ModerationConfig,
) *ModerationUsecase {
	return &ModerationUsecase{
		interactionRepo: interactionRepo,
		matchRepo:       matchRepo,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		trustRepo:       trustRepo,
		reportRepo:      reportRepo,
		cfg:             cfg,
	}
}

// Block records a one-directional block and cascades over related state:
// the target takes a trust penalty and any match between the pair flips to
// the blocked status. Cascade failures are collected and logged, never
// escalated; the block edge itself is the only fatal write.
func (u *ModerationUsecase) Block(ctx context.Context, blocker, target uuid.UUID) (*entities.CascadeResult, error) {
	if blocker == target {
		return nil, domainerrors.BadRequest("cannot block yourself")
	}
	if _, err := u.userRepo.GetByID(ctx, target); err != nil {
		return nil, err
	}

	if err := u.interactionRepo.RecordBlock(ctx, blocker, target); err != nil {
		return nil, err
	}
	blocksAppliedCounter.Inc()

	result := &entities.CascadeResult{}

	if err := u.trustRepo.Penalize(ctx, target, u.cfg.BlockPenalty); err != nil {
		u.recordFailure(ctx, result, entities.CascadeFailure{
			Step:   "trust_penalty",
			Reason: err.Error(),
		})
	}

	u.blockPairMatch(ctx, blocker, target, result)
	return result, nil
}

// blockPairMatch flips the pair's match, if any, into the blocked status
func (u *ModerationUsecase) blockPairMatch(ctx context.Context, blocker, target uuid.UUID, result *entities.CascadeResult) {
	match, err := u.matchRepo.GetByPairKey(ctx, entities.PairKey(blocker, target))
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			u.recordFailure(ctx, result, entities.CascadeFailure{
				Step:   "match_lookup",
				Reason: err.Error(),
			})
		}
		return
	}
	if match.Status.IsBlocked() {
		return
	}

	if err := u.matchRepo.UpdateStatus(ctx, match.ID, match.BlockedStatusFor(blocker)); err != nil {
		u.recordFailure(ctx, result, entities.CascadeFailure{
			Step:    "match_block",
			MatchID: match.ID,
			Reason:  err.Error(),
		})
		return
	}
	result.MatchesBlocked++
}

func (u *ModerationUsecase) recordFailure(ctx context.Context, result *entities.CascadeResult, failure entities.CascadeFailure) {
	result.Failures = append(result.Failures, failure)
	cascadeFailuresCounter.Inc()
	logger.Warn(ctx, "block cascade step failed",
		zap.String("step", failure.Step),
		zap.String("reason", failure.Reason),
	)
}

// BlockMatchPartner blocks the other participant of a match the caller is in
func (u *ModerationUsecase) BlockMatchPartner(ctx context.Context, userID, matchID uuid.UUID) (*entities.CascadeResult, error) {
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(userID) {
		return nil, domainerrors.ErrNotFound
	}
	return u.Block(ctx, userID, match.PartnerID(userID))
}

// Report files a report against a user. Reporting penalizes the target,
// suspends them outright on a suspected-minor report, and then applies the
// same cascade as a block so the reporter never sees them again.
func (u *ModerationUsecase) Report(ctx context.Context, reporter uuid.UUID, input *entities.ReportInput) (*entities.CascadeResult, error) {
	if reporter == input.ReportedUserID {
		return nil, domainerrors.BadRequest("cannot report yourself")
	}
	if !input.Reason.Valid() {
		return nil, domainerrors.BadRequest("unknown report reason")
	}
	details := strings.TrimSpace(input.Details)
	if len([]rune(details)) > entities.MaxReportDetailsLength {
		return nil, domainerrors.ValidationFailed("report details must be at most 500 characters")
	}
	if _, err := u.userRepo.GetByID(ctx, input.ReportedUserID); err != nil {
		return nil, err
	}

	report := &entities.Report{
		ID:             uuid.New(),
		ReporterID:     reporter,
		ReportedUserID: input.ReportedUserID,
		Reason:         input.Reason,
		CreatedAt:      time.Now(),
	}
	if details != "" {
		report.Details = null.StringFrom(details)
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	reportsFiledCounter.WithLabelValues(string(input.Reason)).Inc()

	if err := u.trustRepo.Penalize(ctx, input.ReportedUserID, u.cfg.ReportPenalty); err != nil {
		logger.Warn(ctx, "report trust penalty failed",
			zap.String("reason", err.Error()),
		)
	}

	if input.Reason == entities.ReportReasonSuspectedMinor {
		if err := u.userRepo.UpdateStatus(ctx, input.ReportedUserID, entities.AccountStatusSuspended); err != nil {
			logger.Error(ctx, "suspected-minor suspension failed",
				zap.String("reason", err.Error()),
			)
		}
	}

	return u.Block(ctx, reporter, input.ReportedUserID)
}

// Unblock removes the block edge. Matches blocked while the block stood
// stay blocked; unblocking never resurrects a conversation.
func (u *ModerationUsecase) Unblock(ctx context.Context, blocker, blocked uuid.UUID) error {
	if blocker == blocked {
		return domainerrors.BadRequest("cannot unblock yourself")
	}
	return u.interactionRepo.RemoveBlock(ctx, blocker, blocked)
}

// ListBlocked returns the profiles the caller has blocked. Blocked users
// without a profile are listed with a nil profile rather than dropped.
func (u *ModerationUsecase) ListBlocked(ctx context.Context, userID uuid.UUID) ([]*entities.BlockedUser, error) {
	ids, err := u.interactionRepo.ListBlocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	blocked := make([]*entities.BlockedUser, 0, len(ids))
	for _, id := range ids {
		entry := &entities.BlockedUser{UserID: id}
		profile, err := u.profileRepo.GetByUserID(ctx, id)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		entry.Profile = profile
		blocked = append(blocked, entry)
	}
	return blocked, nil
}

// GetTrustScore reads a user's trust score for account-status display
func (u *ModerationUsecase) GetTrustScore(ctx context.Context, userID uuid.UUID) (float64, error) {
	return u.trustRepo.GetScore(ctx, userID)
}
