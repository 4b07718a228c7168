package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/vitandes/innershield/internal/storage"
)

// WeightedStats is a display view of one period's metrics, scaled to how
// long the user has actually had the app. A brand-new user is measured
// against the days since install, not against a full week/month/year, so
// active-day percentages are not misleadingly low.
type WeightedStats struct {
	storage.PeriodMetrics

	// UsageEfficiency is active days as a percentage of effective days.
	UsageEfficiency int
	TotalDaysInApp  int
	EffectiveDays   int
}

// WeightedStats computes the view for one period. The stored metrics are
// not mutated; the only write is setting appStartDate on first-ever use.
func (s *Service) WeightedStats(ctx context.Context, period Period) (*WeightedStats, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("invalid period: %q", period)
	}

	var out *WeightedStats
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)

		start, err := st.AppStartDate(ctx)
		if err != nil {
			return err
		}
		today := s.today()
		if start == "" {
			start = today
			if err := st.SetAppStartDate(ctx, start); err != nil {
				return err
			}
		}

		totalDays := daysBetween(start, today) + 1
		if totalDays < 1 {
			// Unparseable or future start date; measure from today.
			totalDays = 1
		}
		effective := totalDays
		if limit := period.Days(); effective > limit {
			effective = limit
		}

		metrics, err := st.Metrics(ctx)
		if err != nil {
			return err
		}
		current := periodBucket(metrics, period)
		if current.ActiveDays > effective {
			current.ActiveDays = effective
		}

		efficiency := 0
		if effective > 0 {
			efficiency = int(math.Round(float64(current.ActiveDays) / float64(effective) * 100))
		}

		out = &WeightedStats{
			PeriodMetrics:   current,
			UsageEfficiency: efficiency,
			TotalDaysInApp:  totalDays,
			EffectiveDays:   effective,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StreakCount reports the current consecutive-day streak.
func (s *Service) StreakCount(ctx context.Context) (int, error) {
	streak, err := s.state(s.kv).Streak(ctx)
	if err != nil {
		return 0, err
	}
	return streak.Count, nil
}

// MoodWeek returns the rolling Sun..Sat mood entries for display.
func (s *Service) MoodWeek(ctx context.Context) ([]storage.MoodEntry, error) {
	return s.state(s.kv).MoodWeek(ctx)
}

// JournalEntries returns stored entries, newest first.
func (s *Service) JournalEntries(ctx context.Context) ([]storage.JournalEntry, error) {
	return s.state(s.kv).JournalEntries(ctx)
}

// Achievements returns the achievement list without advancing it.
func (s *Service) Achievements(ctx context.Context) ([]storage.Achievement, error) {
	return s.state(s.kv).Achievements(ctx)
}

func periodBucket(m storage.WellnessMetrics, period Period) storage.PeriodMetrics {
	switch period {
	case PeriodMonth:
		return m.Month
	case PeriodYear:
		return m.Year
	default:
		return m.Week
	}
}
