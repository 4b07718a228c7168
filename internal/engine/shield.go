package engine

import (
	"context"
	"math"

	"github.com/vitandes/innershield/internal/storage"
)

// Shield scoring weights. The divisor approximates a "full" week of
// engagement across all five activity types (7 active days, ~10 breathing
// exercises, ~7 journal entries, ~14 missions, ~7 sleep sessions ≈ 218
// points), so near-maximal weekly activity saturates at 100.
const (
	pointsPerActiveDay = 10
	pointsPerExercise  = 5
	pointsPerJournal   = 5
	pointsPerMission   = 3
	pointsPerSleep     = 3
	fullWeekPoints     = 200
)

// Smoothing weights for the rolling month/year buckets.
const (
	monthBlendWeight = 0.25
	yearBlendWeight  = 0.10
)

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// ShieldInputs are the weekly activity counts feeding the shield score.
type ShieldInputs struct {
	ActiveDays     int
	Exercises      int
	JournalEntries int
	Missions       int
	SleepSessions  int
}

// CalculateShieldLevel converts activity counts to a 0-100 engagement
// score. Monotonically non-decreasing in every input.
func CalculateShieldLevel(in ShieldInputs) int {
	points := in.ActiveDays*pointsPerActiveDay +
		in.Exercises*pointsPerExercise +
		in.JournalEntries*pointsPerJournal +
		in.Missions*pointsPerMission +
		in.SleepSessions*pointsPerSleep

	level := int(math.Round(float64(points) / fullWeekPoints * 100))
	if level > 100 {
		level = 100
	}
	return level
}

// ShieldLevel computes the current score from stored activity without
// persisting anything.
func (s *Service) ShieldLevel(ctx context.Context) (int, error) {
	in, err := s.shieldInputs(ctx, s.state(s.kv))
	if err != nil {
		return 0, err
	}
	return CalculateShieldLevel(in), nil
}

// UpdateShieldLevel recomputes the score, refreshes trends, folds the new
// value into the month/year rolling averages and advances achievements.
func (s *Service) UpdateShieldLevel(ctx context.Context) (int, error) {
	var level int
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)
		var err error
		if level, err = s.updateShieldLevelTx(ctx, st); err != nil {
			return err
		}
		return s.updateAchievementsTx(ctx, st)
	})
	if err != nil {
		return 0, err
	}
	return level, nil
}

func (s *Service) updateShieldLevelTx(ctx context.Context, st *storage.State) (int, error) {
	in, err := s.shieldInputs(ctx, st)
	if err != nil {
		return 0, err
	}
	level := CalculateShieldLevel(in)

	metrics, err := st.Metrics(ctx)
	if err != nil {
		return 0, err
	}
	previous := metrics.Week.ShieldLevel

	metrics.Week.ShieldLevel = level
	metrics.Week.Trend = trendAgainst(level, previous)

	metrics.Month.ShieldLevel = blend(metrics.Month.ShieldLevel, level, monthBlendWeight)
	metrics.Year.ShieldLevel = blend(metrics.Year.ShieldLevel, level, yearBlendWeight)

	// Month/year trends compare the blended value against last week's
	// score, matching what the app has always displayed.
	metrics.Month.Trend = trendAgainst(metrics.Month.ShieldLevel, previous)
	metrics.Year.Trend = trendAgainst(metrics.Year.ShieldLevel, previous)

	if err := st.SaveMetrics(ctx, metrics); err != nil {
		return 0, err
	}
	return level, nil
}

func (s *Service) shieldInputs(ctx context.Context, st *storage.State) (ShieldInputs, error) {
	metrics, err := st.Metrics(ctx)
	if err != nil {
		return ShieldInputs{}, err
	}
	entries, err := st.JournalEntries(ctx)
	if err != nil {
		return ShieldInputs{}, err
	}
	missions, err := st.Missions(ctx)
	if err != nil {
		return ShieldInputs{}, err
	}
	sleep, err := st.SleepCount(ctx)
	if err != nil {
		return ShieldInputs{}, err
	}
	return ShieldInputs{
		ActiveDays:     metrics.Week.ActiveDays,
		Exercises:      metrics.Week.CompletedExercises,
		JournalEntries: len(entries),
		Missions:       CountCompleted(missions),
		SleepSessions:  sleep,
	}, nil
}

func blend(old, latest int, weight float64) int {
	return int(math.Round(float64(old)*(1-weight) + float64(latest)*weight))
}

func trendAgainst(value, baseline int) string {
	switch {
	case value > baseline:
		return TrendUp
	case value < baseline:
		return TrendDown
	default:
		return TrendStable
	}
}
