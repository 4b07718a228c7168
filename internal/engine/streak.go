package engine

import (
	"time"

	"github.com/vitandes/innershield/internal/storage"
)

// AdvanceStreak applies one active day to the streak. The count grows by
// one only when the new day is exactly one calendar day after the
// previous one; any other gap (or an unparseable previous date) starts a
// fresh streak of 1.
func AdvanceStreak(cur storage.StreakData, activeDay string) storage.StreakData {
	next := cur
	if daysBetween(cur.LastDate, activeDay) == 1 {
		next.Count++
	} else {
		next.Count = 1
	}
	next.LastDate = activeDay
	return next
}

// daysBetween returns the calendar-day distance between two ISO dates, or
// -1 when either side is missing or malformed.
func daysBetween(from, to string) int {
	if from == "" || to == "" {
		return -1
	}
	a, err := time.Parse(dateLayout, from)
	if err != nil {
		return -1
	}
	b, err := time.Parse(dateLayout, to)
	if err != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}
