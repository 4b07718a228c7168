package engine

import "time"

// Clock supplies the current time so date-sensitive logic (weekday slots,
// streaks, daily resets) is testable with fixed dates.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
