package engine

import (
	"context"
	"math"

	"github.com/vitandes/innershield/internal/storage"
)

// CalculateMoodAverage averages the week's recorded moods, skipping
// mood 0 slots (no data). Returns 0 when nothing was recorded.
func CalculateMoodAverage(entries []storage.MoodEntry) int {
	sum, n := 0, 0
	for _, e := range entries {
		if e.Mood > 0 {
			sum += e.Mood
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// UpdateMoodAverage recomputes the weekly mood average and folds it into
// the month/year rolling buckets with the same smoothing scheme as the
// shield level.
func (s *Service) UpdateMoodAverage(ctx context.Context) (int, error) {
	var avg int
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)
		var err error
		avg, err = s.updateMoodAverageTx(ctx, st)
		return err
	})
	if err != nil {
		return 0, err
	}
	return avg, nil
}

func (s *Service) updateMoodAverageTx(ctx context.Context, st *storage.State) (int, error) {
	week, err := st.MoodWeek(ctx)
	if err != nil {
		return 0, err
	}
	avg := CalculateMoodAverage(week)

	metrics, err := st.Metrics(ctx)
	if err != nil {
		return 0, err
	}
	metrics.Week.MoodAverage = avg
	metrics.Month.MoodAverage = blend(metrics.Month.MoodAverage, avg, monthBlendWeight)
	metrics.Year.MoodAverage = blend(metrics.Year.MoodAverage, avg, yearBlendWeight)

	if err := st.SaveMetrics(ctx, metrics); err != nil {
		return 0, err
	}
	return avg, nil
}

// moodColor assigns a value-band color to numeric check-ins that did not
// come through the named palette.
func moodColor(mood int) string {
	switch {
	case mood >= 8:
		return "#4CAF50"
	case mood >= 6:
		return "#8BC34A"
	case mood == 5:
		return "#FFC107"
	case mood >= 3:
		return "#FF9800"
	default:
		return "#F44336"
	}
}
