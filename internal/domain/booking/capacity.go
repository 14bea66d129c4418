package booking

import (
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// ===============================
// Capacity Ledger
// ===============================

const (
	MinGroupSize = 1
	MaxGroupSize = 4
)

// ConfirmedLoad sums the group sizes of the confirmed bookings of a session.
func ConfirmedLoad(bookings []models.Booking) int {
	used := 0
	for _, b := range bookings {
		if b.Status == string(StatusConfirmed) {
			used += b.GroupSize
		}
	}
	return used
}

// Available returns how many spots the session still has free.
func Available(maxCapacity int, bookings []models.Booking) int {
	free := maxCapacity - ConfirmedLoad(bookings)
	if free < 0 {
		return 0
	}
	return free
}

func ValidateGroupSize(groupSize int) error {
	if groupSize < MinGroupSize || groupSize > MaxGroupSize {
		return httperr.ErrBusiness(CodeInvalidGroupSize)
	}
	return nil
}

// CanAdmit decides whether a booking of groupSize fits the session given its
// current confirmed bookings. The caller must hold the session row lock so
// this read-then-decide step and the insert form one atomic unit.
func CanAdmit(session *models.Session, bookings []models.Booking, groupSize int) error {
	if session == nil || !session.Active {
		return httperr.ErrBusiness(CodeSessionUnavailable)
	}
	if err := ValidateGroupSize(groupSize); err != nil {
		return err
	}
	if Available(session.MaxCapacity, bookings) < groupSize {
		return httperr.ErrBusiness(CodeCapacityExceeded)
	}
	return nil
}
