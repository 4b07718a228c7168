package engine

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/vitandes/innershield/internal/storage"
)

// Activity recorders. Each one appends/increments the raw counters for
// its tool, marks the day active, then refreshes the derived metrics —
// all inside a single store transaction.

// RecordJournalEntry saves a journal entry, sets today's mood slot and
// refreshes shield level, achievements and mood average.
func (s *Service) RecordJournalEntry(ctx context.Context, text string, mood Mood) (*storage.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyEntry
	}
	if mood.Value < 1 || mood.Value > 10 {
		return nil, ErrInvalidMood
	}

	now := s.clock.Now()
	entry := storage.JournalEntry{
		ID:   ulid.Make().String(),
		Date: now.Format(dateLayout),
		Time: now.Format("15:04"),
		Mood: mood.Value,
		Text: text,
	}

	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)

		entries, err := st.JournalEntries(ctx)
		if err != nil {
			return err
		}
		entries = append([]storage.JournalEntry{entry}, entries...)
		if err := st.SaveJournalEntries(ctx, entries); err != nil {
			return err
		}

		if err := s.setTodayMood(ctx, st, mood); err != nil {
			return err
		}
		if err := s.touchActiveDay(ctx, st); err != nil {
			return err
		}
		if _, err := s.updateShieldLevelTx(ctx, st); err != nil {
			return err
		}
		if err := s.updateAchievementsTx(ctx, st); err != nil {
			return err
		}
		_, err = s.updateMoodAverageTx(ctx, st)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// RecordBreathingSession counts one completed breathing exercise and
// returns the lifetime total.
func (s *Service) RecordBreathingSession(ctx context.Context) (int, error) {
	var total int
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)

		count, err := st.BreathingCount(ctx)
		if err != nil {
			return err
		}
		total = count + 1
		if err := st.SetBreathingCount(ctx, total); err != nil {
			return err
		}

		metrics, err := st.Metrics(ctx)
		if err != nil {
			return err
		}
		metrics.Week.CompletedExercises++
		metrics.Month.CompletedExercises++
		metrics.Year.CompletedExercises++
		if err := st.SaveMetrics(ctx, metrics); err != nil {
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
		return 0, err
	}
	return total, nil
}

// RecordBreathingFeedback stores the post-session mood rating.
func (s *Service) RecordBreathingFeedback(ctx context.Context, mood Mood) error {
	if mood.Value < 1 || mood.Value > 10 {
		return ErrInvalidMood
	}
	return s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)

		if err := s.setTodayMood(ctx, st, mood); err != nil {
			return err
		}
		if err := s.touchActiveDay(ctx, st); err != nil {
			return err
		}
		if _, err := s.updateShieldLevelTx(ctx, st); err != nil {
			return err
		}
		if err := s.updateAchievementsTx(ctx, st); err != nil {
			return err
		}
		_, err := s.updateMoodAverageTx(ctx, st)
		return err
	})
}

// RecordSleepSession counts one sleep-melody playback and returns the
// lifetime total.
func (s *Service) RecordSleepSession(ctx context.Context) (int, error) {
	var total int
	err := s.kv.Update(ctx, func(tx *storage.Tx) error {
		st := s.state(tx)

		count, err := st.SleepCount(ctx)
		if err != nil {
			return err
		}
		total = count + 1
		if err := st.SetSleepCount(ctx, total); err != nil {
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
		return 0, err
	}
	return total, nil
}

// touchActiveDay marks today active at most once: it bumps the active-day
// counters in every bucket the first time any recorder fires on a new
// calendar day.
func (s *Service) touchActiveDay(ctx context.Context, st *storage.State) error {
	today := s.today()
	last, err := st.LastActiveDay(ctx)
	if err != nil {
		return err
	}
	if last == today {
		return nil
	}
	if err := st.SetLastActiveDay(ctx, today); err != nil {
		return err
	}

	metrics, err := st.Metrics(ctx)
	if err != nil {
		return err
	}
	metrics.Week.ActiveDays++
	metrics.Month.ActiveDays++
	metrics.Year.ActiveDays++
	return st.SaveMetrics(ctx, metrics)
}

func (s *Service) setTodayMood(ctx context.Context, st *storage.State, mood Mood) error {
	color := mood.Color
	if color == "" {
		color = moodColor(mood.Value)
	}

	week, err := st.MoodWeek(ctx)
	if err != nil {
		return err
	}
	day := s.weekday()
	for i := range week {
		if week[i].Day == day {
			week[i].Mood = mood.Value
			week[i].Color = color
			break
		}
	}
	return st.SaveMoodWeek(ctx, week)
}
