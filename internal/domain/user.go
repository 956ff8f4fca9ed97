package domain

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User Model
type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`                  // Primary key
	Username string `gorm:"type:varchar(191);uniqueIndex;not null" json:"username"` // Unique username
	Password string `gorm:"not null" json:"-"`                                      // Password hash, never serialized
	Role     string `gorm:"type:varchar(16);default:user" json:"role"`              // Role: user or admin
}

// IsAdmin reports whether the user passes the admin gate
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// BeforeCreate assigns an ID and enforces the role enum
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return fmt.Errorf("invalid role %q", u.Role)
	}
	return nil
}
