package domain

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRequiredField is returned by model hooks when a stored reference or
// title is missing.
var ErrRequiredField = errors.New("required field missing")

// Season Model
type Season struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`           // Primary key
	Title      string `gorm:"not null" json:"title"`                           // Season title
	TVSeriesID string `gorm:"type:varchar(36);index;not null" json:"tvSeries"` // Reference to TVSeries
	Users      []User `gorm:"-" json:"userIds"`                                // Expanded access list, in stored order
}

// SeasonUser stores one entry of a season's ordered access list
type SeasonUser struct {
	SeasonID string `gorm:"type:varchar(36);primaryKey"` // Reference to Season
	UserID   string `gorm:"type:varchar(36);primaryKey"` // Reference to User
	Position int    `gorm:"not null"`                    // Index in the access list
}

func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.Title == "" || s.TVSeriesID == "" {
		return ErrRequiredField
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
