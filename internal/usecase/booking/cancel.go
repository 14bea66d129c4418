package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/audit"
	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
	"github.com/TrainFitServices/training-scheduler/internal/notify"
)

type CancelBooking struct {
	repo    domain.Repository
	clients clientpkg.Repository
	notify  *notify.Dispatcher
	audit   *audit.Dispatcher
	loc     *time.Location

	now func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	clients clientpkg.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *CancelBooking {
	return &CancelBooking{
		repo:    repo,
		clients: clients,
		notify:  notifier,
		audit:   auditor,
		loc:     loc,
		now:     time.Now,
	}
}

// Execute cancels (hard-deletes) a booking. Non-admins are bound by the
// 24-hour deadline stored on the booking; admins may cancel at any time.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	requesterID *uint,
	isAdmin bool,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)
	if !domain.IsCancellable(now, b.CancellationDeadline, isAdmin) {
		return nil, httperr.ErrBusiness(domain.CodeCancellationWindowClosed)
	}

	// transient status: the row is deleted, the value only feeds the
	// notification payload and the returned representation
	b.Status = string(domain.StatusCancelled)

	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return nil, err
	}

	if b.IsPackageBooking {
		if err := uc.clients.ApplyPackageCancellation(ctx, b.ClientID); err != nil {
			log.Printf("package cancellation counter failed for client %d: %v", b.ClientID, err)
		}
	}

	uc.notify.Dispatch(notify.Message{
		To:      b.Client.Email,
		Subject: "Booking cancelled",
		Body: fmt.Sprintf(
			"Hi %s,\n\nyour %s session on %s at %s has been cancelled.",
			b.Client.Name,
			b.Session.Category,
			b.Session.Date.Format("2006-01-02"),
			b.Session.TimeOfDay,
		),
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   requesterID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
