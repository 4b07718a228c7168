package engine

import (
	"context"
	"fmt"

	"github.com/vitandes/innershield/internal/storage"
)

// Mission completion tiers for the mood week's daily slot.
const (
	missionTierGreen  = "#4CAF50"
	missionTierYellow = "#FF9800"
	missionTierRed    = "#F44336"
)

func CountCompleted(missions []storage.Mission) int {
	n := 0
	for _, m := range missions {
		if m.Completed {
			n++
		}
	}
	return n
}

// Missions returns today's mission list, resetting it to the default
// all-incomplete set on the first access of each calendar day.
func (s *Service) Missions(ctx context.Context) ([]storage.Mission, error) {
	var missions []storage.Mission
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)
		var err error
		missions, err = s.missionsTx(ctx, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return missions, nil
}

func (s *Service) missionsTx(ctx context.Context, st *storage.State) ([]storage.Mission, error) {
	last, err := st.LastMissionDate(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()
	if last == today {
		return st.Missions(ctx)
	}

	missions := storage.DefaultMissions()
	if err := st.SaveMissions(ctx, missions); err != nil {
		return nil, err
	}
	if err := st.SetLastMissionDate(ctx, today); err != nil {
		return nil, err
	}
	return missions, nil
}

// ToggleMission flips one mission's completed flag, reflects the day's
// completion tier into the mood week, and refreshes the derived metrics.
func (s *Service) ToggleMission(ctx context.Context, id int) ([]storage.Mission, error) {
	var missions []storage.Mission
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)

		list, err := s.missionsTx(ctx, st)
		if err != nil {
			return err
		}
		found := false
		for i := range list {
			if list[i].ID == id {
				list[i].Completed = !list[i].Completed
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("mission %d not found", id)
		}
		if err := st.SaveMissions(ctx, list); err != nil {
			return err
		}
		missions = list

		if err := s.reflectMissionsInMoodWeek(ctx, st, CountCompleted(list)); err != nil {
			return err
		}
		if err := s.touchActiveDay(ctx, st); err != nil {
			return err
		}
		if _, err := s.updateShieldLevelTx(ctx, st); err != nil {
			return err
		}
		return s.updateAchievementsTx(ctx, st)
	})
	if err != nil {
		return nil, err
	}
	return missions, nil
}

func (s *Service) reflectMissionsInMoodWeek(ctx context.Context, st *storage.State, completed int) error {
	week, err := st.MoodWeek(ctx)
	if err != nil {
		return err
	}
	day := s.weekday()
	for i := range week {
		if week[i].Day != day {
			continue
		}
		if completed > 3 {
			week[i].CompletedMissions = 3
		} else {
			week[i].CompletedMissions = completed
		}
		week[i].Color = missionTierColor(completed)
		break
	}
	return st.SaveMoodWeek(ctx, week)
}

func missionTierColor(completed int) string {
	switch {
	case completed >= 3:
		return missionTierGreen
	case completed == 2:
		return missionTierYellow
	default:
		return missionTierRed
	}
}
