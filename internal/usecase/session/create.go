package session

import (
	"context"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/audit"
	domain "github.com/TrainFitServices/training-scheduler/internal/domain/session"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSessionInput struct {
	TrainerID   uint
	CreatedByID uint

	Date      string // "2006-01-02"
	TimeOfDay string // "HH:MM"
	Category  string

	MaxCapacity int

	Price               float64
	PackagePrice        float64
	PackageDurationDays int
}

// ======================================================
// USE CASE
// ======================================================

type CreateSession struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateSession(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *CreateSession {
	return &CreateSession{
		repo:  repo,
		audit: auditor,
		loc:   loc,
	}
}

func (uc *CreateSession) Execute(
	ctx context.Context,
	in CreateSessionInput,
) (*models.Session, error) {

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if err := domain.ValidateNew(
		in.TimeOfDay,
		in.Category,
		in.MaxCapacity,
		in.Price,
		in.PackagePrice,
	); err != nil {
		return nil, err
	}

	// one session per (trainer, date, time); the unique index backs this up
	taken, err := uc.repo.SlotTaken(ctx, in.TrainerID, date, in.TimeOfDay)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_already_exists")
	}

	s := &models.Session{
		TrainerID:   in.TrainerID,
		CreatedByID: in.CreatedByID,

		Date:      date,
		TimeOfDay: in.TimeOfDay,
		Category:  in.Category,

		MaxCapacity: in.MaxCapacity,
		Active:      true,

		Price:               in.Price,
		PackagePrice:        in.PackagePrice,
		PackageDurationDays: in.PackageDurationDays,
	}

	if err := uc.repo.CreateSession(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedByID,
		Action:   "session_created",
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
