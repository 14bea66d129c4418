package clientpkg

import (
	"context"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// Repository persists package state transitions. Implementations must apply
// the counter changes as atomic increments/decrements against the store:
// concurrent bookings and cancellations for the same client may race, and a
// read-modify-write round trip would lose updates.
type Repository interface {
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// ApplyPackageBooking: active_sessions += 1, package_expiry = expiry.
	ApplyPackageBooking(
		ctx context.Context,
		clientID uint,
		expiry time.Time,
	) error

	// ApplyPackageCancellation: active_sessions -= 1, floored at zero.
	ApplyPackageCancellation(
		ctx context.Context,
		clientID uint,
	) error

	// AddPackage: active_sessions += sessions, package_expiry = expiry.
	AddPackage(
		ctx context.Context,
		clientID uint,
		sessions int,
		expiry time.Time,
	) error

	// ResetPackage: active_sessions = 0, package_expiry = NULL.
	ResetPackage(
		ctx context.Context,
		clientID uint,
	) error
}
