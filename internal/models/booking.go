package models

import "time"

// Booking is a client's claim on part of a session's capacity.
//
// CancellationDeadline and Cancellable are computed once at creation from the
// session's date/time and are NOT recomputed if the session is later edited;
// the booking's own record is authoritative.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SessionID uint    `json:"session_id"`
	Session   Session `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"session"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	GroupSize int `gorm:"not null;default:1" json:"group_size"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancellationDeadline time.Time `json:"cancellation_deadline"`
	Cancellable          bool      `json:"cancellable"`

	IsPackageBooking     bool    `gorm:"not null;default:false" json:"is_package_booking"`
	PackageID            *string `gorm:"size:36" json:"package_id"`
	PackageSessionNumber *int    `json:"package_session_number"`

	ReminderSent bool `gorm:"not null;default:false" json:"reminder_sent"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
