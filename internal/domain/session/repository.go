package session

import (
	"context"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// ScheduleItem is a session together with how much of its capacity is booked.
type ScheduleItem struct {
	Session models.Session
	Booked  int
}

type Repository interface {
	GetSession(
		ctx context.Context,
		id uint,
	) (*models.Session, error)

	// SlotTaken reports whether the trainer already has a session at
	// date+timeOfDay (uniqueness pre-check; the DB index is the backstop).
	SlotTaken(
		ctx context.Context,
		trainerID uint,
		date time.Time,
		timeOfDay string,
	) (bool, error)

	CreateSession(
		ctx context.Context,
		s *models.Session,
	) error

	UpdateSession(
		ctx context.Context,
		s *models.Session,
	) error

	// DeleteSessionCascade removes the session and all of its bookings in
	// one transaction. Callers notify affected clients first.
	DeleteSessionCascade(
		ctx context.Context,
		sessionID uint,
	) error

	// ListConfirmedBookings returns the session's confirmed bookings with
	// clients loaded (for cascade-cancellation notifications).
	ListConfirmedBookings(
		ctx context.Context,
		sessionID uint,
	) ([]models.Booking, error)

	// DeleteConfirmedBookings removes the session's confirmed bookings
	// (deactivation keeps the session row but clears its bookings).
	DeleteConfirmedBookings(
		ctx context.Context,
		sessionID uint,
	) error

	// ListScheduleByDate returns the sessions of a calendar date with their
	// confirmed load, ordered by time of day.
	ListScheduleByDate(
		ctx context.Context,
		date time.Time,
		onlyActive bool,
	) ([]ScheduleItem, error)
}
