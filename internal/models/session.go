package models

import "time"

// Session is a bookable, capacity-bounded training slot. A trainer can hold
// at most one session per date+time (enforced by the composite unique index).
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainerID uint `gorm:"uniqueIndex:idx_trainer_slot" json:"trainer_id"`
	Trainer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer"`

	CreatedByID uint `json:"created_by_id"`

	Date      time.Time `gorm:"type:date;uniqueIndex:idx_trainer_slot" json:"date"`
	TimeOfDay string    `gorm:"size:5;uniqueIndex:idx_trainer_slot" json:"time_of_day"`

	Category    string `gorm:"size:20;not null" json:"category"`
	MaxCapacity int    `gorm:"not null;default:1" json:"max_capacity"`
	Active      bool   `gorm:"not null;default:true" json:"active"`

	Price               float64 `json:"price"`
	PackagePrice        float64 `json:"package_price"`
	PackageDurationDays int     `gorm:"default:90" json:"package_duration_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
