package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment Model. UserID is a plain string copy of the payer's ID, not a
// foreign key.
type Payment struct {
	ID       string    `gorm:"type:varchar(36);primaryKey" json:"id"`         // Primary key
	UserID   string    `gorm:"type:varchar(36);index;not null" json:"userId"` // Payer user ID
	SeasonID string    `gorm:"type:varchar(36);index;not null" json:"-"`      // Reference to Season
	Season   *Season   `gorm:"foreignKey:SeasonID;references:ID" json:"-"`    // Expanded season, when loaded
	Amount   float64   `gorm:"not null" json:"amount"`                        // Amount paid
	Date     time.Time `json:"date"`                                          // Payment date
}

// MarshalJSON renders "season" as the expanded record when it was loaded
// and as the bare reference otherwise.
func (p Payment) MarshalJSON() ([]byte, error) {
	type plain Payment
	var season any = p.SeasonID
	if p.Season != nil {
		season = p.Season
	}
	return json.Marshal(struct {
		plain
		Season any `json:"season"`
	}{plain: plain(p), Season: season})
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.UserID == "" || p.SeasonID == "" {
		return ErrRequiredField
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	return nil
}
