package session

import (
	"context"
	"time"

	domain "github.com/TrainFitServices/training-scheduler/internal/domain/session"
	"github.com/TrainFitServices/training-scheduler/internal/dto"
)

type ListSchedule struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListSchedule(
	repo domain.Repository,
	loc *time.Location,
) *ListSchedule {
	return &ListSchedule{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListSchedule) Execute(
	ctx context.Context,
	date time.Time,
	onlyActive bool,
) ([]dto.ScheduleItemDTO, error) {

	items, err := uc.repo.ListScheduleByDate(ctx, date, onlyActive)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleItemDTO, 0, len(items))
	for _, item := range items {
		s := item.Session

		available := s.MaxCapacity - item.Booked
		if available < 0 {
			available = 0
		}

		out = append(out, dto.ScheduleItemDTO{
			ID:          s.ID,
			TimeOfDay:   s.TimeOfDay,
			Category:    s.Category,
			MaxCapacity: s.MaxCapacity,
			Booked:      item.Booked,
			Available:   available,
			Active:      s.Active,
			Price:       s.Price,
			TrainerName: s.Trainer.Name,
		})
	}

	return out, nil
}

// PublicAvailability maps the schedule to the unauthenticated view: active
// sessions with free spots only.
func (uc *ListSchedule) PublicAvailability(
	ctx context.Context,
	date time.Time,
) ([]dto.PublicSessionDTO, error) {

	items, err := uc.repo.ListScheduleByDate(ctx, date, true)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PublicSessionDTO, 0, len(items))
	for _, item := range items {
		s := item.Session

		available := s.MaxCapacity - item.Booked
		if available <= 0 {
			continue
		}

		out = append(out, dto.PublicSessionDTO{
			ID:           s.ID,
			TimeOfDay:    s.TimeOfDay,
			Category:     s.Category,
			Available:    available,
			Price:        s.Price,
			PackagePrice: s.PackagePrice,
		})
	}

	return out, nil
}
