package engine

import (
	"testing"

	"github.com/vitandes/innershield/internal/storage"
)

func TestCalculateShieldLevelZero(t *testing.T) {
	if got := CalculateShieldLevel(ShieldInputs{}); got != 0 {
		t.Fatalf("CalculateShieldLevel(zero) = %d, want 0", got)
	}
}

func TestCalculateShieldLevelSaturates(t *testing.T) {
	// 70+50+35+42+21 = 218 points > 200, clamped to 100.
	in := ShieldInputs{ActiveDays: 7, Exercises: 10, JournalEntries: 7, Missions: 14, SleepSessions: 7}
	if got := CalculateShieldLevel(in); got != 100 {
		t.Fatalf("CalculateShieldLevel(full week) = %d, want 100", got)
	}
}

func TestCalculateShieldLevelBounds(t *testing.T) {
	cases := []ShieldInputs{
		{},
		{ActiveDays: 1},
		{ActiveDays: 3, Exercises: 2, JournalEntries: 1},
		{Missions: 5, SleepSessions: 5},
		{ActiveDays: 100, Exercises: 100, JournalEntries: 100, Missions: 100, SleepSessions: 100},
	}
	for _, in := range cases {
		got := CalculateShieldLevel(in)
		if got < 0 || got > 100 {
			t.Fatalf("CalculateShieldLevel(%+v) = %d, out of [0,100]", in, got)
		}
	}
}

func TestCalculateShieldLevelMonotonic(t *testing.T) {
	base := ShieldInputs{ActiveDays: 2, Exercises: 3, JournalEntries: 1, Missions: 4, SleepSessions: 2}
	baseLevel := CalculateShieldLevel(base)

	bumps := []ShieldInputs{
		{ActiveDays: base.ActiveDays + 1, Exercises: base.Exercises, JournalEntries: base.JournalEntries, Missions: base.Missions, SleepSessions: base.SleepSessions},
		{ActiveDays: base.ActiveDays, Exercises: base.Exercises + 1, JournalEntries: base.JournalEntries, Missions: base.Missions, SleepSessions: base.SleepSessions},
		{ActiveDays: base.ActiveDays, Exercises: base.Exercises, JournalEntries: base.JournalEntries + 1, Missions: base.Missions, SleepSessions: base.SleepSessions},
		{ActiveDays: base.ActiveDays, Exercises: base.Exercises, JournalEntries: base.JournalEntries, Missions: base.Missions + 1, SleepSessions: base.SleepSessions},
		{ActiveDays: base.ActiveDays, Exercises: base.Exercises, JournalEntries: base.JournalEntries, Missions: base.Missions, SleepSessions: base.SleepSessions + 1},
	}
	for i, in := range bumps {
		if got := CalculateShieldLevel(in); got < baseLevel {
			t.Fatalf("bump %d: level %d < base %d", i, got, baseLevel)
		}
	}
}

func TestCalculateMoodAverage(t *testing.T) {
	cases := []struct {
		name    string
		entries []storage.MoodEntry
		want    int
	}{
		{"empty", nil, 0},
		{"all zero", []storage.MoodEntry{{Mood: 0}, {Mood: 0}}, 0},
		{"skips zero days", []storage.MoodEntry{{Mood: 0}, {Mood: 8}, {Mood: 6}}, 7},
		{"rounds", []storage.MoodEntry{{Mood: 8}, {Mood: 7}}, 8},
		{"single", []storage.MoodEntry{{Mood: 5}}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateMoodAverage(tc.entries); got != tc.want {
				t.Fatalf("CalculateMoodAverage = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	// Month folds 25% of the latest week in, year 10%.
	if got := blend(0, 8, monthBlendWeight); got != 2 {
		t.Fatalf("blend(0,8,month) = %d, want 2", got)
	}
	if got := blend(50, 8, monthBlendWeight); got != 40 {
		t.Fatalf("blend(50,8,month) = %d, want 40", got)
	}
	if got := blend(50, 8, yearBlendWeight); got != 46 {
		t.Fatalf("blend(50,8,year) = %d, want 46", got)
	}
}

func TestTrendAgainst(t *testing.T) {
	if got := trendAgainst(5, 3); got != TrendUp {
		t.Fatalf("trendAgainst(5,3) = %q", got)
	}
	if got := trendAgainst(3, 5); got != TrendDown {
		t.Fatalf("trendAgainst(3,5) = %q", got)
	}
	if got := trendAgainst(5, 5); got != TrendStable {
		t.Fatalf("trendAgainst(5,5) = %q", got)
	}
}
