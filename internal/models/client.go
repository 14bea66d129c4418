package models

import "time"

// Client books sessions and may hold a prepaid package. ActiveSessions and
// PackageExpiry together form the package state (see domain/clientpkg).
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	ActiveSessions int        `gorm:"not null;default:0" json:"active_sessions"`
	PackageExpiry  *time.Time `json:"package_expiry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
