package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Session
// --------------------------------------------------

func (r *BookingGormRepository) GetSession(
	ctx context.Context,
	id uint,
) (*models.Session, error) {

	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeSessionUnavailable)
		}
		return nil, err
	}
	return &session, nil
}

// --------------------------------------------------
// Booking (admission)
// --------------------------------------------------

// CreateBookingIfCapacity locks the session row, sums the confirmed group
// sizes and inserts the booking only if it fits. The row lock serializes
// concurrent admissions for the same session, so two requests that would
// jointly overflow capacity can never both succeed.
func (r *BookingGormRepository) CreateBookingIfCapacity(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var session models.Session
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, b.SessionID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(domain.CodeSessionUnavailable)
			}
			return err
		}

		if !session.Active {
			return httperr.ErrBusiness(domain.CodeSessionUnavailable)
		}

		var used int64
		if err := tx.Model(&models.Booking{}).
			Where(
				"session_id = ? AND status = ?",
				b.SessionID,
				string(domain.StatusConfirmed),
			).
			Select("COALESCE(SUM(group_size), 0)").
			Scan(&used).Error; err != nil {
			return err
		}

		if int(used)+b.GroupSize > session.MaxCapacity {
			return httperr.ErrBusiness(domain.CodeCapacityExceeded)
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (cancellation / listing)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Session").
		Preload("Client").
		First(&b, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, b.ID).Error
}

func (r *BookingGormRepository) ListConfirmedBookings(
	ctx context.Context,
	sessionID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"session_id = ? AND status = ?",
			sessionID,
			string(domain.StatusConfirmed),
		).
		Order("created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
