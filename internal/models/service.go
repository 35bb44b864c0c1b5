package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable offering with a fixed duration. The active flag only
// controls visibility on the public listing; inactive services stay visible
// to admins.
type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	DurationMinutes int    `gorm:"not null" json:"durationMinutes"`
	IsActive        bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
