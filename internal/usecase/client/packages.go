package client

import (
	"context"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/audit"
	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// ManagePackage covers the two administrative package actions. Both are
// idempotent against replays in the sense that matters: re-running a reset on
// an already-reset client leaves identical state.
type ManagePackage struct {
	clients clientpkg.Repository
	audit   *audit.Dispatcher

	now func() time.Time
}

func NewManagePackage(
	clients clientpkg.Repository,
	auditor *audit.Dispatcher,
) *ManagePackage {
	return &ManagePackage{
		clients: clients,
		audit:   auditor,
		now:     time.Now,
	}
}

// AddPackage grants a full package: +8 sessions, expiry 90 days out.
func (uc *ManagePackage) AddPackage(
	ctx context.Context,
	clientID uint,
	actorID *uint,
) (*models.Client, error) {

	client, err := uc.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// the accountant computes the target state; the repository persists the
	// counter change atomically
	next := *client
	clientpkg.AdminAddPackage(&next, uc.now())

	if err := uc.clients.AddPackage(ctx, clientID, clientpkg.PackageSize, *next.PackageExpiry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "package_added",
		Entity:   "client",
		EntityID: &clientID,
	})

	return uc.clients.GetClient(ctx, clientID)
}

// ResetPackage zeroes the counter and unsets the expiry.
func (uc *ManagePackage) ResetPackage(
	ctx context.Context,
	clientID uint,
	actorID *uint,
) (*models.Client, error) {

	if _, err := uc.clients.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	if err := uc.clients.ResetPackage(ctx, clientID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "package_reset",
		Entity:   "client",
		EntityID: &clientID,
	})

	return uc.clients.GetClient(ctx, clientID)
}
