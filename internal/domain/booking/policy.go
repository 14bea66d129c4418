package booking

import (
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/httperr"
)

// ===============================
// Cancellation Policy
// ===============================

// CancellationNotice is how long before the session start a non-admin may
// still cancel.
const CancellationNotice = 24 * time.Hour

// StartAt combines a session's calendar date and "HH:MM" time-of-day into a
// single timestamp in the operating timezone.
func StartAt(date time.Time, timeOfDay string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidTimeOfDay)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}

// ComputeDeadline returns session start minus the cancellation notice. It is
// computed once at booking creation and stored on the booking itself.
func ComputeDeadline(date time.Time, timeOfDay string, loc *time.Location) (time.Time, error) {
	start, err := StartAt(date, timeOfDay, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(-CancellationNotice), nil
}

// IsCancellable says whether a cancellation request is currently permitted.
// Admins may cancel at any time.
func IsCancellable(now, deadline time.Time, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return now.Before(deadline)
}
