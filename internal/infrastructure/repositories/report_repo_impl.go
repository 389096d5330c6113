package repositories

import (
	"context"

	"gorm.io/gorm"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/infrastructure/models"
)

// ReportRepository implements the append-only report ledger
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create appends a report row
func (r *ReportRepository) Create(ctx context.Context, report *entities.Report) error {
	m := &models.Report{
		ID:             report.ID,
		ReporterID:     report.ReporterID,
		ReportedUserID: report.ReportedUserID,
		Reason:         string(report.Reason),
		Details:        report.Details.Ptr(),
		CreatedAt:      report.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
