package reminder

import (
	"testing"
	"time"
)

func TestWindowAt(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	win := WindowAt(now)

	wantFrom := time.Date(2024, 6, 10, 13, 53, 0, 0, time.UTC)
	wantTo := time.Date(2024, 6, 10, 14, 8, 0, 0, time.UTC)

	if !win.From.Equal(wantFrom) {
		t.Fatalf("From = %v, want %v", win.From, wantFrom)
	}
	if !win.To.Equal(wantTo) {
		t.Fatalf("To = %v, want %v", win.To, wantTo)
	}
}

func TestWindowContains(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	win := WindowAt(now)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"exactly at target lead", now.Add(TargetLead), true},
		{"slightly after target", now.Add(TargetLead + 3*time.Minute), true},
		{"lower edge inclusive", win.From, true},
		{"upper edge inclusive", win.To, true},
		{"one second before lower edge", win.From.Add(-time.Second), false},
		{"one second after upper edge", win.To.Add(time.Second), false},
		{"far future", now.Add(26 * time.Hour), false},
		{"already started", now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := win.Contains(tt.start); got != tt.want {
				t.Fatalf("Contains(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}
