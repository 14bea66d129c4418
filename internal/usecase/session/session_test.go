package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	domain "github.com/TrainFitServices/training-scheduler/internal/domain/session"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// ===============================
// in-memory fakes
// ===============================

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[uint]*models.Session
	bookings map[uint][]models.Booking // by session id
	nextID   uint
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{
		sessions: make(map[uint]*models.Session),
		bookings: make(map[uint][]models.Booking),
		nextID:   1,
	}
}

func (m *memSessionRepo) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	cp := *s
	return &cp, nil
}

func (m *memSessionRepo) SlotTaken(ctx context.Context, trainerID uint, date time.Time, timeOfDay string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.TrainerID == trainerID && s.Date.Equal(date) && s.TimeOfDay == timeOfDay {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextID
	m.nextID++
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memSessionRepo) UpdateSession(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		return httperr.ErrBusiness("not_found")
	}
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memSessionRepo) DeleteSessionCascade(ctx context.Context, sessionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	delete(m.bookings, sessionID)
	return nil
}

func (m *memSessionRepo) ListConfirmedBookings(ctx context.Context, sessionID uint) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings[sessionID] {
		if b.Status == "confirmed" {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memSessionRepo) DeleteConfirmedBookings(ctx context.Context, sessionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []models.Booking
	for _, b := range m.bookings[sessionID] {
		if b.Status != "confirmed" {
			kept = append(kept, b)
		}
	}
	m.bookings[sessionID] = kept
	return nil
}

func (m *memSessionRepo) ListScheduleByDate(ctx context.Context, date time.Time, onlyActive bool) ([]domain.ScheduleItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ScheduleItem
	for _, s := range m.sessions {
		if !s.Date.Equal(date) {
			continue
		}
		if onlyActive && !s.Active {
			continue
		}
		booked := 0
		for _, b := range m.bookings[s.ID] {
			if b.Status == "confirmed" {
				booked += b.GroupSize
			}
		}
		out = append(out, domain.ScheduleItem{Session: *s, Booked: booked})
	}
	return out, nil
}

type countingClients struct {
	mu      sync.Mutex
	refunds map[uint]int
}

func newCountingClients() *countingClients {
	return &countingClients{refunds: make(map[uint]int)}
}

func (c *countingClients) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	return &models.Client{ID: id}, nil
}

func (c *countingClients) ApplyPackageBooking(ctx context.Context, clientID uint, expiry time.Time) error {
	return nil
}

func (c *countingClients) ApplyPackageCancellation(ctx context.Context, clientID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refunds[clientID]++
	return nil
}

func (c *countingClients) AddPackage(ctx context.Context, clientID uint, sessions int, expiry time.Time) error {
	return nil
}

func (c *countingClients) ResetPackage(ctx context.Context, clientID uint) error {
	return nil
}

var _ domain.Repository = (*memSessionRepo)(nil)
var _ clientpkg.Repository = (*countingClients)(nil)

// ===============================
// tests
// ===============================

func validInput() CreateSessionInput {
	return CreateSessionInput{
		TrainerID:   1,
		CreatedByID: 1,
		Date:        "2024-06-10",
		TimeOfDay:   "18:00",
		Category:    "strength",
		MaxCapacity: 4,
		Price:       50,
	}
}

func TestCreateSession(t *testing.T) {
	t.Run("creates an active session", func(t *testing.T) {
		repo := newMemSessionRepo()
		uc := NewCreateSession(repo, nil, time.UTC)

		s, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Active {
			t.Fatal("new session must start active")
		}
		if s.TimeOfDay != "18:00" || s.Category != "strength" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("rejects a taken slot", func(t *testing.T) {
		repo := newMemSessionRepo()
		uc := NewCreateSession(repo, nil, time.UTC)

		if _, err := uc.Execute(context.Background(), validInput()); err != nil {
			t.Fatalf("first create: %v", err)
		}

		_, err := uc.Execute(context.Background(), validInput())
		if !httperr.IsBusiness(err, "slot_already_exists") {
			t.Fatalf("expected slot_already_exists, got %v", err)
		}

		// same slot, different trainer is fine
		in := validInput()
		in.TrainerID = 2
		if _, err := uc.Execute(context.Background(), in); err != nil {
			t.Fatalf("other trainer rejected: %v", err)
		}
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		repo := newMemSessionRepo()
		uc := NewCreateSession(repo, nil, time.UTC)

		tests := []struct {
			name   string
			mutate func(*CreateSessionInput)
			code   string
		}{
			{"bad date", func(in *CreateSessionInput) { in.Date = "10/06/2024" }, "invalid_date"},
			{"bad time", func(in *CreateSessionInput) { in.TimeOfDay = "25:00" }, "invalid_time_of_day"},
			{"bad category", func(in *CreateSessionInput) { in.Category = "yoga" }, "invalid_category"},
			{"capacity zero", func(in *CreateSessionInput) { in.MaxCapacity = 0 }, "invalid_capacity"},
			{"capacity five", func(in *CreateSessionInput) { in.MaxCapacity = 5 }, "invalid_capacity"},
			{"negative price", func(in *CreateSessionInput) { in.Price = -1 }, "invalid_price"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validInput()
				tt.mutate(&in)

				_, err := uc.Execute(context.Background(), in)
				if !httperr.IsBusiness(err, tt.code) {
					t.Fatalf("expected %s, got %v", tt.code, err)
				}
			})
		}
	})
}

func TestListSchedule(t *testing.T) {
	repo := newMemSessionRepo()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	full := &models.Session{
		TrainerID: 1, Date: date, TimeOfDay: "07:00",
		Category: "strength", MaxCapacity: 2, Active: true,
	}
	open := &models.Session{
		TrainerID: 1, Date: date, TimeOfDay: "18:00",
		Category: "mobility", MaxCapacity: 4, Active: true,
	}
	inactive := &models.Session{
		TrainerID: 1, Date: date, TimeOfDay: "19:00",
		Category: "strength", MaxCapacity: 4, Active: false,
	}
	for _, s := range []*models.Session{full, open, inactive} {
		if err := repo.CreateSession(context.Background(), s); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}
	repo.bookings[full.ID] = []models.Booking{
		{ID: 1, SessionID: full.ID, GroupSize: 2, Status: "confirmed"},
	}
	repo.bookings[open.ID] = []models.Booking{
		{ID: 2, SessionID: open.ID, GroupSize: 1, Status: "confirmed"},
	}

	uc := NewListSchedule(repo, time.UTC)

	t.Run("schedule reports booked and available seats", func(t *testing.T) {
		items, err := uc.Execute(context.Background(), date, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2 active sessions", len(items))
		}

		for _, item := range items {
			switch item.ID {
			case full.ID:
				if item.Booked != 2 || item.Available != 0 {
					t.Fatalf("full session: booked=%d available=%d", item.Booked, item.Available)
				}
			case open.ID:
				if item.Booked != 1 || item.Available != 3 {
					t.Fatalf("open session: booked=%d available=%d", item.Booked, item.Available)
				}
			default:
				t.Fatalf("unexpected session %d in active schedule", item.ID)
			}
		}
	})

	t.Run("public availability hides full and inactive sessions", func(t *testing.T) {
		items, err := uc.PublicAvailability(context.Background(), date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("got %d public items, want 1", len(items))
		}
		if items[0].ID != open.ID || items[0].Available != 3 {
			t.Fatalf("public item = %+v, want session %d with 3 spots", items[0], open.ID)
		}
	})
}

func seedRemovalFixture(t *testing.T, repo *memSessionRepo) uint {
	t.Helper()

	s := &models.Session{
		TrainerID:   1,
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay:   "18:00",
		Category:    "strength",
		MaxCapacity: 4,
		Active:      true,
	}
	if err := repo.CreateSession(context.Background(), s); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	repo.bookings[s.ID] = []models.Booking{
		{ID: 1, SessionID: s.ID, ClientID: 10, GroupSize: 1, Status: "confirmed",
			IsPackageBooking: true, Client: models.Client{Name: "A", Email: "a@example.com"}},
		{ID: 2, SessionID: s.ID, ClientID: 11, GroupSize: 2, Status: "confirmed",
			Client: models.Client{Name: "B", Email: "b@example.com"}},
	}
	return s.ID
}

func TestRemoveSessionDelete(t *testing.T) {
	repo := newMemSessionRepo()
	clients := newCountingClients()
	id := seedRemovalFixture(t, repo)

	uc := NewRemoveSession(repo, clients, nil, nil)

	if err := uc.Delete(context.Background(), id, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetSession(context.Background(), id); err == nil {
		t.Fatal("session row must be gone")
	}
	if len(repo.bookings[id]) != 0 {
		t.Fatal("bookings must be gone with the session")
	}

	// only the package booking gives its session back
	if clients.refunds[10] != 1 {
		t.Fatalf("package client refunds = %d, want 1", clients.refunds[10])
	}
	if clients.refunds[11] != 0 {
		t.Fatalf("non-package client refunds = %d, want 0", clients.refunds[11])
	}
}

func TestRemoveSessionDeactivate(t *testing.T) {
	repo := newMemSessionRepo()
	clients := newCountingClients()
	id := seedRemovalFixture(t, repo)

	uc := NewRemoveSession(repo, clients, nil, nil)

	s, err := uc.Deactivate(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Active {
		t.Fatal("session must be inactive")
	}

	// the row survives but its confirmed bookings do not
	kept, err := repo.GetSession(context.Background(), id)
	if err != nil {
		t.Fatalf("session row must survive deactivation: %v", err)
	}
	if kept.Active {
		t.Fatal("persisted session still active")
	}
	if got, _ := repo.ListConfirmedBookings(context.Background(), id); len(got) != 0 {
		t.Fatalf("%d confirmed bookings survived deactivation", len(got))
	}

	if clients.refunds[10] != 1 {
		t.Fatalf("package client refunds = %d, want 1", clients.refunds[10])
	}
}
