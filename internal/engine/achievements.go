package engine

import (
	"context"
	"math"

	"github.com/vitandes/innershield/internal/storage"
)

// The four fixed achievements. IDs are part of the stored data.
const (
	AchievementStreak    = 1
	AchievementBreathing = 2
	AchievementShield    = 3
	AchievementExplorer  = 4
)

const (
	streakTargetDays     = 7
	breathingTargetCount = 50
	shieldThreshold      = 70
	shieldQualifyingDays = 30
	explorerToolCount    = 4
)

// UpdateAchievements advances the four achievements from current activity
// state. Earned achievements are frozen. Only Strong Shield can move
// backwards: its progress drops to 0 the moment the shield level falls
// below the 70% threshold.
func (s *Service) UpdateAchievements(ctx context.Context) ([]storage.Achievement, error) {
	var list []storage.Achievement
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)
		if err := s.updateAchievementsTx(ctx, st); err != nil {
			return err
		}
		var err error
		list, err = st.Achievements(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) updateAchievementsTx(ctx context.Context, st *storage.State) error {
	list, err := st.Achievements(ctx)
	if err != nil {
		return err
	}
	today := s.today()
	changed := false

	// Strong Shield: one credit per qualifying day above the threshold.
	if a := findAchievement(list, AchievementShield); a != nil && !a.Earned {
		in, err := s.shieldInputs(ctx, st)
		if err != nil {
			return err
		}
		level := CalculateShieldLevel(in)
		if level >= shieldThreshold {
			credited, err := st.LastShieldCreditDate(ctx)
			if err != nil {
				return err
			}
			if credited != today {
				a.Progress = math.Min(a.Progress+100.0/shieldQualifyingDays, 100)
				earnIfComplete(a, today)
				if err := st.SetLastShieldCreditDate(ctx, today); err != nil {
					return err
				}
				changed = true
			}
		} else if a.Progress > 0 {
			a.Progress = 0
			changed = true
		}
	}

	// 7-Day Streak: advances once per new active day.
	if a := findAchievement(list, AchievementStreak); a != nil && !a.Earned {
		lastActive, err := st.LastActiveDay(ctx)
		if err != nil {
			return err
		}
		streak, err := st.Streak(ctx)
		if err != nil {
			return err
		}
		if lastActive != "" && lastActive != streak.LastDate {
			streak = AdvanceStreak(streak, lastActive)
			a.Progress = math.Min(float64(streak.Count)/streakTargetDays*100, 100)
			earnIfComplete(a, today)
			if err := st.SaveStreak(ctx, streak); err != nil {
				return err
			}
			changed = true
		}
	}

	// Breathing Master: recomputed from the lifetime exercise counter.
	if a := findAchievement(list, AchievementBreathing); a != nil && !a.Earned {
		count, err := st.BreathingCount(ctx)
		if err != nil {
			return err
		}
		progress := math.Min(float64(count)/breathingTargetCount*100, 100)
		if progress != a.Progress {
			a.Progress = progress
			earnIfComplete(a, today)
			changed = true
		}
	}

	// Wellness Explorer: distinct tool categories ever used.
	if a := findAchievement(list, AchievementExplorer); a != nil && !a.Earned {
		used, err := s.toolsUsed(ctx, st)
		if err != nil {
			return err
		}
		progress := math.Min(float64(used)/explorerToolCount*100, 100)
		if progress != a.Progress {
			a.Progress = progress
			earnIfComplete(a, today)
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return st.SaveAchievements(ctx, list)
}

// toolsUsed counts the wellness tool categories with any recorded usage:
// breathing, journal, sleep, missions.
func (s *Service) toolsUsed(ctx context.Context, st *storage.State) (int, error) {
	used := 0

	breathing, err := st.BreathingCount(ctx)
	if err != nil {
		return 0, err
	}
	if breathing > 0 {
		used++
	}

	entries, err := st.JournalEntries(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) > 0 {
		used++
	}

	sleep, err := st.SleepCount(ctx)
	if err != nil {
		return 0, err
	}
	if sleep > 0 {
		used++
	}

	missions, err := st.Missions(ctx)
	if err != nil {
		return 0, err
	}
	if CountCompleted(missions) > 0 {
		used++
	}

	return used, nil
}

func findAchievement(list []storage.Achievement, id int) *storage.Achievement {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func earnIfComplete(a *storage.Achievement, today string) {
	if a.Progress >= 100 && !a.Earned {
		a.Progress = 100
		a.Earned = true
		a.Date = today
	}
}
