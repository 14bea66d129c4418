package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	bookingdomain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	domain "github.com/TrainFitServices/training-scheduler/internal/domain/session"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

func (r *SessionGormRepository) GetSession(
	ctx context.Context,
	id uint,
) (*models.Session, error) {

	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(bookingdomain.CodeNotFound)
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionGormRepository) SlotTaken(
	ctx context.Context,
	trainerID uint,
	date time.Time,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where(
			"trainer_id = ? AND date = ? AND time_of_day = ?",
			trainerID,
			date,
			timeOfDay,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SessionGormRepository) CreateSession(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionGormRepository) UpdateSession(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SessionGormRepository) DeleteSessionCascade(
	ctx context.Context,
	sessionID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("session_id = ?", sessionID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, sessionID).Error
	})
}

func (r *SessionGormRepository) ListConfirmedBookings(
	ctx context.Context,
	sessionID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"session_id = ? AND status = ?",
			sessionID,
			string(bookingdomain.StatusConfirmed),
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *SessionGormRepository) DeleteConfirmedBookings(
	ctx context.Context,
	sessionID uint,
) error {

	return r.db.WithContext(ctx).
		Where(
			"session_id = ? AND status = ?",
			sessionID,
			string(bookingdomain.StatusConfirmed),
		).
		Delete(&models.Booking{}).Error
}

func (r *SessionGormRepository) ListScheduleByDate(
	ctx context.Context,
	date time.Time,
	onlyActive bool,
) ([]domain.ScheduleItem, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Preload("Trainer").
		Where("date = ?", date)

	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var sessions []models.Session
	if err := q.Order("time_of_day ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	items := make([]domain.ScheduleItem, 0, len(sessions))
	for _, s := range sessions {
		var used int64
		if err := r.db.WithContext(ctx).
			Model(&models.Booking{}).
			Where(
				"session_id = ? AND status = ?",
				s.ID,
				string(bookingdomain.StatusConfirmed),
			).
			Select("COALESCE(SUM(group_size), 0)").
			Scan(&used).Error; err != nil {
			return nil, err
		}

		items = append(items, domain.ScheduleItem{
			Session: s,
			Booked:  int(used),
		})
	}

	return items, nil
}

// Compile-time check
var _ domain.Repository = (*SessionGormRepository)(nil)
