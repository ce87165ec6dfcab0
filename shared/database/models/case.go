package models

import (
	"time"

	"github.com/google/uuid"
)

// Case statuses and priorities are fixed enumerations; ClosedAt is set
// exactly when Status is "closed" and is never earlier than CreatedAt.
const (
	CaseStatusOpen          = "open"
	CaseStatusClosed        = "closed"
	CaseStatusPendingReview = "pending_review"
)

// Case is a unit of work requiring oversight.
type Case struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID   uuid.UUID  `json:"worker_id" gorm:"type:uuid;not null"`
	PatientRef string     `json:"patient_ref" gorm:"size:20;not null"`
	CaseType   string     `json:"case_type" gorm:"size:100;not null"`
	Status     string     `json:"status" gorm:"size:20;not null"`
	Priority   string     `json:"priority" gorm:"size:10;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	ClosedAt   *time.Time `json:"closed_at"`

	// Relations
	Worker Worker `json:"-" gorm:"foreignKey:WorkerID"`
}
