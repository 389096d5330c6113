package repositories

import (
	"context"

	"tokyo-friends.backend/internal/domain/entities"
)

// ReportRepository defines the append-only report ledger
type ReportRepository interface {
	Create(ctx context.Context, report *entities.Report) error
}
