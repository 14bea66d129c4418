package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/models"
)

// Sender is the retrying dispatch primitive (satisfied by *notify.Retrier).
type Sender interface {
	SendWithRetry(ctx context.Context, to, subject, body string, maxAttempts int) (string, error)
}

// Store is the persistence surface the scheduler scans and marks.
type Store interface {
	// ListActiveSessionsBetween returns active sessions whose calendar date
	// falls in [from, to]. Date-only coarse pre-filter; the scheduler
	// re-checks the exact combined timestamp against the window.
	ListActiveSessionsBetween(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Session, error)

	// ListUnremindedBookings returns the confirmed, not-yet-reminded bookings
	// of a session, with the client loaded.
	ListUnremindedBookings(
		ctx context.Context,
		sessionID uint,
	) ([]models.Booking, error)

	// MarkReminderSent flips reminder_sent to true iff it is still false
	// (compare-and-set). Returns false when another writer got there first.
	MarkReminderSent(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// ResetReminder clears the sent flag (test/ops use).
	ResetReminder(
		ctx context.Context,
		bookingID uint,
	) error
}

// Scheduler runs the periodic reminder scan. Dependencies come in through the
// constructor; there is no ambient registration.
type Scheduler struct {
	store  Store
	sender Sender
	loc    *time.Location

	// now is swappable in tests
	now func() time.Time

	// mu keeps ticks mutually exclusive: two overlapping ticks could both
	// observe reminder_sent=false and double-send.
	mu sync.Mutex
}

func NewScheduler(store Store, sender Sender, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		store:  store,
		sender: sender,
		loc:    loc,
		now:    time.Now,
	}
}

// Run drives Tick on a fixed interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	log.Printf("reminder scheduler running every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("reminder scheduler stopped")
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				log.Println("reminder tick:", err)
			}
		}
	}
}

// Tick executes one scan: find sessions starting inside the lookahead window,
// dispatch one reminder per unsent confirmed booking, and mark each booking
// sent immediately after its dispatch succeeds. Also invocable on demand for
// operator-triggered runs.
//
// A store failure on the session scan aborts the tick cleanly; the next tick
// retries from scratch, which is safe since it only acts on bookings still
// unsent.
// Failures below session level are isolated and logged.
func (s *Scheduler) Tick(ctx context.Context) error {
	if !s.mu.TryLock() {
		log.Println("reminder tick skipped: previous tick still running")
		return nil
	}
	defer s.mu.Unlock()

	now := s.now().In(s.loc)
	win := WindowAt(now)

	// coarse, date-only pre-filter over the window's calendar-day span
	dayFrom := dateOf(win.From)
	dayTo := dateOf(win.To)

	sessions, err := s.store.ListActiveSessionsBetween(ctx, dayFrom, dayTo)
	if err != nil {
		return fmt.Errorf("reminder scan: %w", err)
	}

	for _, session := range sessions {
		start, err := domain.StartAt(session.Date, session.TimeOfDay, s.loc)
		if err != nil {
			log.Printf("reminder: session %d has bad time %q: %v", session.ID, session.TimeOfDay, err)
			continue
		}

		// fine filter: exact combined timestamp against the precise window
		if !win.Contains(start) {
			continue
		}

		if err := s.processSession(ctx, session, start); err != nil {
			log.Printf("reminder: session %d: %v", session.ID, err)
		}
	}

	return nil
}

// processSession dispatches reminders for every unsent booking of one
// session. Bookings are handled as independent units of work so one delivery
// waiting out its backoff never delays the others.
func (s *Scheduler) processSession(ctx context.Context, session models.Session, start time.Time) error {
	bookings, err := s.store.ListUnremindedBookings(ctx, session.ID)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for i := range bookings {
		b := bookings[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.remind(ctx, session, b, start)
		}()
	}
	wg.Wait()

	return nil
}

func (s *Scheduler) remind(ctx context.Context, session models.Session, b models.Booking, start time.Time) {
	if b.Client.Email == "" {
		log.Printf("reminder: booking %d has no client email, skipping", b.ID)
		return
	}

	subject := fmt.Sprintf("Reminder: %s session at %s", session.Category, session.TimeOfDay)
	body := fmt.Sprintf(
		"Hi %s,\n\nyour %s session starts at %s.\n\nSee you there!",
		b.Client.Name,
		session.Category,
		start.Format("15:04 on 02 Jan"),
	)

	if _, err := s.sender.SendWithRetry(ctx, b.Client.Email, subject, body, 0); err != nil {
		// left unsent: retried next tick if the session is still in-window,
		// otherwise this log line is the operator's signal of a missed reminder
		log.Printf("reminder dispatch failed for booking %d (session %d at %s): %v",
			b.ID, session.ID, start.Format(time.RFC3339), err)
		return
	}

	updated, err := s.store.MarkReminderSent(ctx, b.ID)
	if err != nil {
		log.Printf("reminder: booking %d sent but flag not persisted: %v", b.ID, err)
		return
	}
	if !updated {
		log.Printf("reminder: booking %d was already marked sent", b.ID)
	}
}

// ResetReminder clears a booking's sent flag so the next in-window tick
// dispatches again. Exposed for test/ops use.
func (s *Scheduler) ResetReminder(ctx context.Context, bookingID uint) error {
	return s.store.ResetReminder(ctx, bookingID)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
