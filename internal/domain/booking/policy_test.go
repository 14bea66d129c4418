package booking

import (
	"testing"
	"time"

	"github.com/TrainFitServices/training-scheduler/internal/httperr"
)

func TestComputeDeadline(t *testing.T) {
	loc := time.UTC

	t.Run("deadline is start minus 24 hours", func(t *testing.T) {
		date := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

		deadline, err := ComputeDeadline(date, "18:00", loc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Date(2024, 6, 9, 18, 0, 0, 0, loc)
		if !deadline.Equal(want) {
			t.Fatalf("deadline = %v, want %v", deadline, want)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		date := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

		a, _ := ComputeDeadline(date, "18:00", loc)
		b, _ := ComputeDeadline(date, "18:00", loc)
		if !a.Equal(b) {
			t.Fatalf("two computations differ: %v vs %v", a, b)
		}
	})

	t.Run("rejects malformed time of day", func(t *testing.T) {
		date := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

		if _, err := ComputeDeadline(date, "6pm", loc); !httperr.IsBusiness(err, CodeInvalidTimeOfDay) {
			t.Fatalf("expected %s, got %v", CodeInvalidTimeOfDay, err)
		}
	})
}

func TestIsCancellable(t *testing.T) {
	deadline := time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		isAdmin bool
		want    bool
	}{
		{"one second before deadline", deadline.Add(-time.Second), false, true},
		{"exactly at deadline", deadline, false, false},
		{"one second after deadline", deadline.Add(time.Second), false, false},
		{"admin after deadline", deadline.Add(48 * time.Hour), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCancellable(tt.now, deadline, tt.isAdmin); got != tt.want {
				t.Fatalf("IsCancellable(%v, admin=%v) = %v, want %v", tt.now, tt.isAdmin, got, tt.want)
			}
		})
	}
}

func TestStartAt(t *testing.T) {
	loc := time.UTC
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	start, err := StartAt(date, "07:30", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 6, 10, 7, 30, 0, 0, loc)
	if !start.Equal(want) {
		t.Fatalf("start = %v, want %v", start, want)
	}
}
