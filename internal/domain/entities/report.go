package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReportReason represents why a user was reported
type ReportReason string

const (
	ReportReasonSpam           ReportReason = "spam"
	ReportReasonHarassment     ReportReason = "harassment"
	ReportReasonInappropriate  ReportReason = "inappropriate"
	ReportReasonFake           ReportReason = "fake"
	ReportReasonSuspectedMinor ReportReason = "suspected_minor"
	ReportReasonOther          ReportReason = "other"
)

// Valid reports whether the reason is a known value
func (r ReportReason) Valid() bool {
	switch r {
	case ReportReasonSpam, ReportReasonHarassment, ReportReasonInappropriate,
		ReportReasonFake, ReportReasonSuspectedMinor, ReportReasonOther:
		return true
	}
	return false
}

// MaxReportDetailsLength is the free-text limit for report details.
const MaxReportDetailsLength = 500

// Report represents an append-only report record
type Report struct {
	ID             uuid.UUID    `json:"id"`
	ReporterID     uuid.UUID    `json:"reporterId"`
	ReportedUserID uuid.UUID    `json:"reportedUserId"`
	Reason         ReportReason `json:"reason"`
	Details        null.String  `json:"details,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// ReportInput represents input for reporting a user
type ReportInput struct {
	ReportedUserID uuid.UUID    `json:"reportedUserId" binding:"required"`
	Reason         ReportReason `json:"reason" binding:"required"`
	Details        string       `json:"details"`
}
