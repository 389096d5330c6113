package models

import (
	"time"

	"github.com/google/uuid"
)

// Report rows are append-only
type Report struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReporterID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportedUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason         string    `gorm:"type:varchar(30);not null"`
	Details        *string   `gorm:"type:varchar(500)"`
	CreatedAt      time.Time
}
