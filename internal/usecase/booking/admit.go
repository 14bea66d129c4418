package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/TrainFitServices/training-scheduler/internal/audit"
	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
	"github.com/TrainFitServices/training-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type AdmitBookingInput struct {
	SessionID uint
	ClientID  uint
	GroupSize int

	IsPackageBooking     bool
	PackageID            string // empty → generated for package bookings
	PackageSessionNumber *int   // 1..8

	Notes string

	RequestedByID *uint // nil for public bookings
}

// ======================================================
// USE CASE
// ======================================================

type AdmitBooking struct {
	repo    domain.Repository
	clients clientpkg.Repository
	notify  *notify.Dispatcher
	audit   *audit.Dispatcher
	loc     *time.Location

	now func() time.Time
}

func NewAdmitBooking(
	repo domain.Repository,
	clients clientpkg.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *AdmitBooking {
	return &AdmitBooking{
		repo:    repo,
		clients: clients,
		notify:  notifier,
		audit:   auditor,
		loc:     loc,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AdmitBooking) Execute(
	ctx context.Context,
	in AdmitBookingInput,
) (*models.Booking, error) {

	if err := domain.ValidateGroupSize(in.GroupSize); err != nil {
		return nil, err
	}

	session, err := uc.repo.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, httperr.ErrBusiness(domain.CodeSessionUnavailable)
	}

	client, err := uc.clients.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)

	// The deadline is computed once here, from the session's current
	// date/time, and stored on the booking. A later session edit does not
	// touch existing bookings.
	deadline, err := domain.ComputeDeadline(session.Date, session.TimeOfDay, uc.loc)
	if err != nil {
		return nil, err
	}

	var packageID *string
	if in.IsPackageBooking {
		id := in.PackageID
		if id == "" {
			id = uuid.NewString()
		}
		packageID = &id
	}

	if in.PackageSessionNumber != nil {
		n := *in.PackageSessionNumber
		if n < 1 || n > clientpkg.PackageSize {
			return nil, httperr.ErrBusiness("invalid_package_session_number")
		}
	}

	b := &models.Booking{
		SessionID: session.ID,
		ClientID:  client.ID,
		GroupSize: in.GroupSize,
		Status:    string(domain.InitialStatus()),

		CancellationDeadline: deadline,
		Cancellable:          now.Before(deadline),

		IsPackageBooking:     in.IsPackageBooking,
		PackageID:            packageID,
		PackageSessionNumber: in.PackageSessionNumber,

		Notes: in.Notes,
	}

	// capacity check + insert as one atomic unit (see repository)
	if err := uc.repo.CreateBookingIfCapacity(ctx, b); err != nil {
		return nil, err
	}

	if in.IsPackageBooking {
		// the accountant computes the target state; the repository persists
		// the counter change atomically
		next := *client
		clientpkg.OnPackageBooking(&next, session.PackageDurationDays, now)

		if err := uc.clients.ApplyPackageBooking(ctx, client.ID, *next.PackageExpiry); err != nil {
			// booking stands; the counter is reconciled by ops
			log.Printf("package booking counter failed for client %d: %v", client.ID, err)
		}
	}

	// best-effort confirmation, never blocks or fails the booking
	uc.notify.Dispatch(notify.Message{
		To:      client.Email,
		Subject: "Booking confirmed",
		Body: fmt.Sprintf(
			"Hi %s,\n\nyour %s session on %s at %s is confirmed (group of %d).",
			client.Name,
			session.Category,
			session.Date.Format("2006-01-02"),
			session.TimeOfDay,
			b.GroupSize,
		),
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   in.RequestedByID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
