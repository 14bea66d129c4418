package dto

import "time"

type ScheduleItemDTO struct {
	ID          uint    `json:"id"`
	TimeOfDay   string  `json:"time_of_day"`
	Category    string  `json:"category"`
	MaxCapacity int     `json:"max_capacity"`
	Booked      int     `json:"booked"`
	Available   int     `json:"available"`
	Active      bool    `json:"active"`
	Price       float64 `json:"price"`
	TrainerName string  `json:"trainer_name,omitempty"`
}

type BookingListDTO struct {
	ID                   uint      `json:"id"`
	ClientName           string    `json:"client_name"`
	GroupSize            int       `json:"group_size"`
	Status               string    `json:"status"`
	CancellationDeadline time.Time `json:"cancellation_deadline"`
	Cancellable          bool      `json:"cancellable"`
	IsPackageBooking     bool      `json:"is_package_booking"`
	ReminderSent         bool      `json:"reminder_sent"`
}

// PublicSessionDTO is the unauthenticated availability view: no trainer or
// booking details, only what a client needs to pick a slot.
type PublicSessionDTO struct {
	ID           uint    `json:"id"`
	TimeOfDay    string  `json:"time_of_day"`
	Category     string  `json:"category"`
	Available    int     `json:"available"`
	Price        float64 `json:"price"`
	PackagePrice float64 `json:"package_price"`
}
