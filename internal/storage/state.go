package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Store keys. Fixed since the first release of the mobile app.
const (
	KeyWellnessMetrics    = "wellnessMetrics"
	KeyMoodData           = "moodData"
	KeyDailyMissions      = "dailyMissions"
	KeyLastMissionDate    = "lastMissionDate"
	KeyAchievements       = "achievements"
	KeyStreakData         = "streakData"
	KeyBreathingExercises = "breathingExercises"
	KeySleepMelodyUsage   = "sleepMelodyUsage"
	KeyJournalEntries     = "journalEntries"
	KeyLastActiveDay      = "lastActiveDay"
	KeyAppStartDate       = "appStartDate"
	KeyLastShieldCredit   = "lastShieldCreditDate"
)

const TrendStable = "stable"

// State gives the engine typed access to the stored records. Missing keys
// come back as seeded defaults; malformed stored JSON is logged and
// replaced by the same defaults rather than surfaced as an error.
type State struct {
	s   Store
	log zerolog.Logger
}

func NewState(s Store, log zerolog.Logger) *State {
	return &State{s: s, log: log}
}

func DefaultMetrics() WellnessMetrics {
	zero := PeriodMetrics{Trend: TrendStable}
	return WellnessMetrics{Week: zero, Month: zero, Year: zero}
}

// DefaultMoodWeek has exactly one slot per weekday label, Sun..Sat, with
// mood 0 ("no data") everywhere.
func DefaultMoodWeek() []MoodEntry {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	week := make([]MoodEntry, 0, len(days))
	for _, d := range days {
		week = append(week, MoodEntry{Day: d, Color: "#9E9E9E"})
	}
	return week
}

func DefaultMissions() []Mission {
	return []Mission{
		{ID: 1, Title: "Emotional check-in", Icon: "heart"},
		{ID: 2, Title: "Breathing exercise", Icon: "leaf"},
		{ID: 3, Title: "Grounding technique", Icon: "game-controller"},
		{ID: 4, Title: "Journal writing", Icon: "book"},
		{ID: 5, Title: "Guided visualization", Icon: "eye"},
	}
}

func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: 1, Title: "7-Day Streak", Description: "Completed check-ins for 7 consecutive days", Icon: "flame", Color: "#FF5722"},
		{ID: 2, Title: "Breathing Master", Description: "Completed 50 breathing exercises", Icon: "leaf", Color: "#4CAF50"},
		{ID: 3, Title: "Strong Shield", Description: "Kept your shield above 70% for a month", Icon: "shield", Color: "#2196F3"},
		{ID: 4, Title: "Wellness Explorer", Description: "Tried all available tools", Icon: "compass", Color: "#9C27B0"},
	}
}

func (st *State) Metrics(ctx context.Context) (WellnessMetrics, error) {
	m := DefaultMetrics()
	if err := st.getJSON(ctx, KeyWellnessMetrics, &m, func() { m = DefaultMetrics() }); err != nil {
		return WellnessMetrics{}, err
	}
	return m, nil
}

func (st *State) SaveMetrics(ctx context.Context, m WellnessMetrics) error {
	return st.setJSON(ctx, KeyWellnessMetrics, m)
}

func (st *State) MoodWeek(ctx context.Context) ([]MoodEntry, error) {
	week := DefaultMoodWeek()
	if err := st.getJSON(ctx, KeyMoodData, &week, func() { week = DefaultMoodWeek() }); err != nil {
		return nil, err
	}
	return week, nil
}

func (st *State) SaveMoodWeek(ctx context.Context, week []MoodEntry) error {
	return st.setJSON(ctx, KeyMoodData, week)
}

func (st *State) Missions(ctx context.Context) ([]Mission, error) {
	missions := DefaultMissions()
	if err := st.getJSON(ctx, KeyDailyMissions, &missions, func() { missions = DefaultMissions() }); err != nil {
		return nil, err
	}
	return missions, nil
}

func (st *State) SaveMissions(ctx context.Context, missions []Mission) error {
	return st.setJSON(ctx, KeyDailyMissions, missions)
}

func (st *State) Achievements(ctx context.Context) ([]Achievement, error) {
	list := DefaultAchievements()
	if err := st.getJSON(ctx, KeyAchievements, &list, func() { list = DefaultAchievements() }); err != nil {
		return nil, err
	}
	return list, nil
}

func (st *State) SaveAchievements(ctx context.Context, list []Achievement) error {
	return st.setJSON(ctx, KeyAchievements, list)
}

func (st *State) Streak(ctx context.Context) (StreakData, error) {
	var s StreakData
	if err := st.getJSON(ctx, KeyStreakData, &s, func() { s = StreakData{} }); err != nil {
		return StreakData{}, err
	}
	return s, nil
}

func (st *State) SaveStreak(ctx context.Context, s StreakData) error {
	return st.setJSON(ctx, KeyStreakData, s)
}

func (st *State) JournalEntries(ctx context.Context) ([]JournalEntry, error) {
	var entries []JournalEntry
	if err := st.getJSON(ctx, KeyJournalEntries, &entries, func() { entries = nil }); err != nil {
		return nil, err
	}
	return entries, nil
}

func (st *State) SaveJournalEntries(ctx context.Context, entries []JournalEntry) error {
	return st.setJSON(ctx, KeyJournalEntries, entries)
}

func (st *State) BreathingCount(ctx context.Context) (int, error) {
	return st.getCounter(ctx, KeyBreathingExercises)
}

func (st *State) SetBreathingCount(ctx context.Context, n int) error {
	return st.s.Set(ctx, KeyBreathingExercises, strconv.Itoa(n))
}

func (st *State) SleepCount(ctx context.Context) (int, error) {
	return st.getCounter(ctx, KeySleepMelodyUsage)
}

func (st *State) SetSleepCount(ctx context.Context, n int) error {
	return st.s.Set(ctx, KeySleepMelodyUsage, strconv.Itoa(n))
}

func (st *State) LastActiveDay(ctx context.Context) (string, error) {
	return st.getString(ctx, KeyLastActiveDay)
}

func (st *State) SetLastActiveDay(ctx context.Context, day string) error {
	return st.s.Set(ctx, KeyLastActiveDay, day)
}

func (st *State) LastMissionDate(ctx context.Context) (string, error) {
	return st.getString(ctx, KeyLastMissionDate)
}

func (st *State) SetLastMissionDate(ctx context.Context, day string) error {
	return st.s.Set(ctx, KeyLastMissionDate, day)
}

func (st *State) AppStartDate(ctx context.Context) (string, error) {
	return st.getString(ctx, KeyAppStartDate)
}

func (st *State) SetAppStartDate(ctx context.Context, day string) error {
	return st.s.Set(ctx, KeyAppStartDate, day)
}

func (st *State) LastShieldCreditDate(ctx context.Context) (string, error) {
	return st.getString(ctx, KeyLastShieldCredit)
}

func (st *State) SetLastShieldCreditDate(ctx context.Context, day string) error {
	return st.s.Set(ctx, KeyLastShieldCredit, day)
}

func (st *State) getJSON(ctx context.Context, key string, out any, reset func()) error {
	raw, ok, err := st.s.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		st.log.Warn().Str("key", key).Err(err).Msg("discarding malformed stored value")
		reset()
	}
	return nil
}

func (st *State) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return st.s.Set(ctx, key, string(raw))
}

func (st *State) getString(ctx context.Context, key string) (string, error) {
	raw, ok, err := st.s.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return "", nil
	}
	return raw, nil
}

// Raw counters are stored as string-encoded integers. Anything that does
// not parse counts as zero.
func (st *State) getCounter(ctx context.Context, key string) (int, error) {
	raw, ok, err := st.s.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		st.log.Warn().Str("key", key).Str("value", raw).Msg("discarding malformed counter")
		return 0, nil
	}
	return n, nil
}
