package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/models"
	"github.com/TrainFitServices/training-scheduler/internal/reminder"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) ListActiveSessionsBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Session, error) {

	var sessions []models.Session
	if err := r.db.WithContext(ctx).
		Where(
			"active = ? AND date >= ? AND date <= ?",
			true,
			from,
			to,
		).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *ReminderGormRepository) ListUnremindedBookings(
	ctx context.Context,
	sessionID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"session_id = ? AND status = ? AND reminder_sent = ?",
			sessionID,
			string(domain.StatusConfirmed),
			false,
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// MarkReminderSent is a compare-and-set: the WHERE clause on reminder_sent
// makes the flip race-free against any concurrent writer.
func (r *ReminderGormRepository) MarkReminderSent(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND reminder_sent = ?", bookingID, false).
		Update("reminder_sent", true)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *ReminderGormRepository) ResetReminder(
	ctx context.Context,
	bookingID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("reminder_sent", false).Error
}

// Compile-time check
var _ reminder.Store = (*ReminderGormRepository)(nil)
