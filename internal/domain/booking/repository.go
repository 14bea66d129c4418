package booking

import (
	"context"

	"github.com/TrainFitServices/training-scheduler/internal/models"
)

type Repository interface {
	// -------- Session --------
	GetSession(
		ctx context.Context,
		id uint,
	) (*models.Session, error)

	// -------- Booking (admission) --------

	// CreateBookingIfCapacity inserts the booking only if the session is
	// active and the confirmed group sizes plus this one still fit the
	// session's capacity. The capacity check and the insert run as one
	// atomic unit against concurrent admissions for the same session.
	CreateBookingIfCapacity(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (cancellation) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (listing) --------
	ListConfirmedBookings(
		ctx context.Context,
		sessionID uint,
	) ([]models.Booking, error)
}
