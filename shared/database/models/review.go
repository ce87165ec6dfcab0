package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewStatusCompleted = "completed"
	ReviewStatusOverdue   = "overdue"
	ReviewStatusPending   = "pending"
)

// Review is an oversight record evaluating a case. Its supervisor is always
// the one reached through the case's worker, never independently chosen.
type Review struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	CaseID       uuid.UUID  `json:"case_id" gorm:"type:uuid;not null"`
	SupervisorID uuid.UUID  `json:"supervisor_id" gorm:"type:uuid;not null"`
	ReviewDate   time.Time  `json:"review_date"`
	Status       string     `json:"status" gorm:"size:20;not null"`
	Notes        string     `json:"notes"`
	DueDate      time.Time  `json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at"`

	// Relations
	Case       Case       `json:"-" gorm:"foreignKey:CaseID"`
	Supervisor Supervisor `json:"-" gorm:"foreignKey:SupervisorID"`
}
