package session

import (
	"context"
	"fmt"
	"log"

	"github.com/TrainFitServices/training-scheduler/internal/audit"
	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	domain "github.com/TrainFitServices/training-scheduler/internal/domain/session"
	"github.com/TrainFitServices/training-scheduler/internal/models"
	"github.com/TrainFitServices/training-scheduler/internal/notify"
)

// RemoveSession deactivates or deletes a session. Both paths cascade-cancel
// every confirmed booking first: each affected client gets a best-effort
// cancellation notification and package bookings give their session back.
type RemoveSession struct {
	repo    domain.Repository
	clients clientpkg.Repository
	notify  *notify.Dispatcher
	audit   *audit.Dispatcher
}

func NewRemoveSession(
	repo domain.Repository,
	clients clientpkg.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *RemoveSession {
	return &RemoveSession{
		repo:    repo,
		clients: clients,
		notify:  notifier,
		audit:   auditor,
	}
}

func (uc *RemoveSession) Delete(
	ctx context.Context,
	sessionID uint,
	actorID uint,
) error {

	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := uc.cascadeCancel(ctx, session); err != nil {
		return err
	}

	if err := uc.repo.DeleteSessionCascade(ctx, sessionID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "session_deleted",
		Entity:   "session",
		EntityID: &sessionID,
	})

	return nil
}

func (uc *RemoveSession) Deactivate(
	ctx context.Context,
	sessionID uint,
	actorID uint,
) (*models.Session, error) {

	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := uc.cascadeCancel(ctx, session); err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteConfirmedBookings(ctx, sessionID); err != nil {
		return nil, err
	}

	session.Active = false
	if err := uc.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "session_deactivated",
		Entity:   "session",
		EntityID: &sessionID,
	})

	return session, nil
}

// cascadeCancel notifies every confirmed booking's client and returns
// package sessions. Notification failures never block the removal.
func (uc *RemoveSession) cascadeCancel(ctx context.Context, session *models.Session) error {
	bookings, err := uc.repo.ListConfirmedBookings(ctx, session.ID)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		if b.IsPackageBooking {
			if err := uc.clients.ApplyPackageCancellation(ctx, b.ClientID); err != nil {
				log.Printf("package cancellation counter failed for client %d: %v", b.ClientID, err)
			}
		}

		uc.notify.Dispatch(notify.Message{
			To:      b.Client.Email,
			Subject: "Session cancelled",
			Body: fmt.Sprintf(
				"Hi %s,\n\nthe %s session on %s at %s has been cancelled by the studio.",
				b.Client.Name,
				session.Category,
				session.Date.Format("2006-01-02"),
				session.TimeOfDay,
			),
		})
	}

	return nil
}
