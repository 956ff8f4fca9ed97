package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Episode Model
type Episode struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`         // Primary key
	Title    string `gorm:"not null" json:"title"`                         // Episode title
	SeasonID string `gorm:"type:varchar(36);index;not null" json:"season"` // Reference to Season
}

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.Title == "" || e.SeasonID == "" {
		return ErrRequiredField
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
