package models

import (
	"github.com/google/uuid"
)

// Region is a jurisdiction-level reference entity. The seed list is static
// and regions are never mutated after creation.
type Region struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code              string    `json:"code" gorm:"size:2;uniqueIndex;not null"`
	Name              string    `json:"name" gorm:"size:100;not null"`
	SupervisionPolicy string    `json:"supervision_policy" gorm:"not null"`
	ReviewCadenceDays int       `json:"review_cadence_days" gorm:"not null"`
}
