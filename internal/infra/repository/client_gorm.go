package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Package counters
//
// Counter changes are expressed as SQL-side increments so concurrent
// bookings/cancellations for the same client cannot lose updates.
// --------------------------------------------------

func (r *ClientGormRepository) ApplyPackageBooking(
	ctx context.Context,
	clientID uint,
	expiry time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"active_sessions": gorm.Expr("active_sessions + 1"),
			"package_expiry":  expiry,
		}).Error
}

func (r *ClientGormRepository) ApplyPackageCancellation(
	ctx context.Context,
	clientID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Update(
			"active_sessions",
			gorm.Expr("GREATEST(active_sessions - 1, 0)"),
		).Error
}

func (r *ClientGormRepository) AddPackage(
	ctx context.Context,
	clientID uint,
	sessions int,
	expiry time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"active_sessions": gorm.Expr("active_sessions + ?", sessions),
			"package_expiry":  expiry,
		}).Error
}

func (r *ClientGormRepository) ResetPackage(
	ctx context.Context,
	clientID uint,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"active_sessions": 0,
			"package_expiry":  nil,
		}).Error
}

// Compile-time check
var _ clientpkg.Repository = (*ClientGormRepository)(nil)
