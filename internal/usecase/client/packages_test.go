package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

type memClients struct {
	mu      sync.Mutex
	clients map[uint]*models.Client
}

func newMemClients() *memClients {
	return &memClients{clients: make(map[uint]*models.Client)}
}

func (m *memClients) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	cp := *c
	return &cp, nil
}

func (m *memClients) ApplyPackageBooking(ctx context.Context, clientID uint, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.clients[clientID]
	c.ActiveSessions++
	e := expiry
	c.PackageExpiry = &e
	return nil
}

func (m *memClients) ApplyPackageCancellation(ctx context.Context, clientID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clientpkg.OnPackageCancellation(m.clients[clientID])
	return nil
}

func (m *memClients) AddPackage(ctx context.Context, clientID uint, sessions int, expiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.clients[clientID]
	c.ActiveSessions += sessions
	e := expiry
	c.PackageExpiry = &e
	return nil
}

func (m *memClients) ResetPackage(ctx context.Context, clientID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clientpkg.AdminResetPackage(m.clients[clientID])
	return nil
}

var _ clientpkg.Repository = (*memClients)(nil)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestManagePackage(clients *memClients) *ManagePackage {
	uc := NewManagePackage(clients, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestManagePackage(t *testing.T) {
	admin := uint(99)

	t.Run("add grants a full package", func(t *testing.T) {
		clients := newMemClients()
		clients.clients[1] = &models.Client{ID: 1, Name: "Client"}

		uc := newTestManagePackage(clients)

		c, err := uc.AddPackage(context.Background(), 1, &admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if c.ActiveSessions != clientpkg.PackageSize {
			t.Fatalf("ActiveSessions = %d, want %d", c.ActiveSessions, clientpkg.PackageSize)
		}

		wantExpiry := testNow.AddDate(0, 0, clientpkg.DefaultPackageDays)
		if c.PackageExpiry == nil || !c.PackageExpiry.Equal(wantExpiry) {
			t.Fatalf("PackageExpiry = %v, want %v", c.PackageExpiry, wantExpiry)
		}
	})

	t.Run("reset clears the package state", func(t *testing.T) {
		clients := newMemClients()
		clients.clients[1] = &models.Client{ID: 1, Name: "Client"}

		uc := newTestManagePackage(clients)

		if _, err := uc.AddPackage(context.Background(), 1, &admin); err != nil {
			t.Fatalf("add: %v", err)
		}

		c, err := uc.ResetPackage(context.Background(), 1, &admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ActiveSessions != 0 || c.PackageExpiry != nil {
			t.Fatalf("package state not cleared: %+v", c)
		}
		if clientpkg.HasActivePackage(c, testNow) {
			t.Fatal("HasActivePackage = true after reset")
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		clients := newMemClients()

		uc := newTestManagePackage(clients)

		if _, err := uc.AddPackage(context.Background(), 404, &admin); !httperr.IsBusiness(err, "not_found") {
			t.Fatalf("expected not_found, got %v", err)
		}
		if _, err := uc.ResetPackage(context.Background(), 404, &admin); !httperr.IsBusiness(err, "not_found") {
			t.Fatalf("expected not_found, got %v", err)
		}
	})
}
