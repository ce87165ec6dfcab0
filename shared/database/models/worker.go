package models

import (
	"time"

	"github.com/google/uuid"
)

// Worker is a supervised professional whose cases require periodic review.
// Its assigned region is drawn independently of its supervisor's region.
type Worker struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RegistryID   string    `json:"registry_id" gorm:"size:10;uniqueIndex;not null"`
	FirstName    string    `json:"first_name" gorm:"size:100"`
	LastName     string    `json:"last_name" gorm:"size:100"`
	WorkerType   string    `json:"worker_type" gorm:"size:10;not null"`
	SupervisorID uuid.UUID `json:"supervisor_id" gorm:"type:uuid;not null"`
	RegionID     uuid.UUID `json:"region_id" gorm:"type:uuid;not null"`
	Email        string    `json:"email" gorm:"size:255"`
	Phone        string    `json:"phone" gorm:"size:30"`
	HireDate     time.Time `json:"hire_date"`

	// Relations
	Supervisor Supervisor `json:"-" gorm:"foreignKey:SupervisorID"`
	Region     Region     `json:"-" gorm:"foreignKey:RegionID"`
}
