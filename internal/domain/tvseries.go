package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TVSeries Model
type TVSeries struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"` // Primary key
	Title       string `gorm:"not null" json:"title"`                 // Series title
	Description string `gorm:"type:text;not null" json:"description"` // Series description
}

// TableName keeps the plural form stable across dialects
func (TVSeries) TableName() string {
	return "tv_series"
}

func (s *TVSeries) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
