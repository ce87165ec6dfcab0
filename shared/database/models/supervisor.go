package models

import (
	"github.com/google/uuid"
)

// Supervisor is a licensed professional who oversees workers.
type Supervisor struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RegistryID string    `json:"registry_id" gorm:"size:10;uniqueIndex;not null"`
	FirstName  string    `json:"first_name" gorm:"size:100"`
	LastName   string    `json:"last_name" gorm:"size:100"`
	Specialty  string    `json:"specialty" gorm:"size:100"`
	RegionID   uuid.UUID `json:"region_id" gorm:"type:uuid;not null"`
	Email      string    `json:"email" gorm:"size:255"`
	Phone      string    `json:"phone" gorm:"size:30"`

	// Relations
	Region Region `json:"-" gorm:"foreignKey:RegionID"`
}
