package engine

import (
	"testing"

	"github.com/vitandes/innershield/internal/storage"
)

func TestAdvanceStreak(t *testing.T) {
	cases := []struct {
		name      string
		cur       storage.StreakData
		activeDay string
		wantCount int
	}{
		{"consecutive day increments", storage.StreakData{Count: 3, LastDate: "2024-01-01"}, "2024-01-02", 4},
		{"gap resets", storage.StreakData{Count: 3, LastDate: "2024-01-01"}, "2024-01-10", 1},
		{"first ever day", storage.StreakData{}, "2024-01-02", 1},
		{"backwards date resets", storage.StreakData{Count: 3, LastDate: "2024-01-05"}, "2024-01-04", 1},
		{"malformed last date resets", storage.StreakData{Count: 3, LastDate: "garbage"}, "2024-01-02", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AdvanceStreak(tc.cur, tc.activeDay)
			if got.Count != tc.wantCount {
				t.Fatalf("count = %d, want %d", got.Count, tc.wantCount)
			}
			if got.LastDate != tc.activeDay {
				t.Fatalf("lastDate = %q, want %q", got.LastDate, tc.activeDay)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	if got := daysBetween("2024-01-01", "2024-01-02"); got != 1 {
		t.Fatalf("daysBetween = %d, want 1", got)
	}
	if got := daysBetween("2024-01-01", "2024-01-10"); got != 9 {
		t.Fatalf("daysBetween = %d, want 9", got)
	}
	if got := daysBetween("", "2024-01-10"); got != -1 {
		t.Fatalf("daysBetween(empty) = %d, want -1", got)
	}
	// Month boundary.
	if got := daysBetween("2024-02-29", "2024-03-01"); got != 1 {
		t.Fatalf("daysBetween(leap boundary) = %d, want 1", got)
	}
}
