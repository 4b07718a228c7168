package engine

import (
	"errors"
	"testing"
)

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		input   string
		want    Period
		wantErr bool
	}{
		{"week", PeriodWeek, false},
		{"MONTH", PeriodMonth, false},
		{"  year ", PeriodYear, false},
		{"", "", true},
		{"decade", "", true},
	}
	for _, tc := range cases {
		got, err := ParsePeriod(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePeriod(%q) = %q, want error", tc.input, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParsePeriod(%q) = %q, %v, want %q", tc.input, got, err, tc.want)
		}
	}
}

func TestPeriodDays(t *testing.T) {
	if PeriodWeek.Days() != 7 || PeriodMonth.Days() != 30 || PeriodYear.Days() != 365 {
		t.Fatalf("period days = %d/%d/%d", PeriodWeek.Days(), PeriodMonth.Days(), PeriodYear.Days())
	}
}

func TestParseMood(t *testing.T) {
	cases := []struct {
		input string
		want  Mood
	}{
		// Named moods carry the check-in palette colors.
		{"happy", Mood{Value: 10, Color: "#4CAF50"}},
		{"Grateful", Mood{Value: 9, Color: "#E91E63"}},
		{"calm", Mood{Value: 8, Color: "#2196F3"}},
		{"anxious", Mood{Value: 4, Color: "#FF9800"}},
		{"sad", Mood{Value: 3, Color: "#9C27B0"}},
		{"stressed", Mood{Value: 2, Color: "#F44336"}},
		// Raw values fall back to band colors.
		{"7", Mood{Value: 7, Color: "#8BC34A"}},
		{" 10 ", Mood{Value: 10, Color: "#4CAF50"}},
		{"1", Mood{Value: 1, Color: "#F44336"}},
	}
	for _, tc := range cases {
		got, err := ParseMood(tc.input)
		if err != nil || got != tc.want {
			t.Errorf("ParseMood(%q) = %+v, %v, want %+v", tc.input, got, err, tc.want)
		}
	}

	if _, err := ParseMood("0"); !errors.Is(err, ErrInvalidMood) {
		t.Errorf("ParseMood(0) err = %v, want ErrInvalidMood", err)
	}
	if _, err := ParseMood("11"); !errors.Is(err, ErrInvalidMood) {
		t.Errorf("ParseMood(11) err = %v, want ErrInvalidMood", err)
	}
	if _, err := ParseMood("meh"); err == nil {
		t.Errorf("ParseMood(meh) succeeded")
	}
}

func TestMoodOfBounds(t *testing.T) {
	if _, err := MoodOf(0); !errors.Is(err, ErrInvalidMood) {
		t.Errorf("MoodOf(0) err = %v, want ErrInvalidMood", err)
	}
	if _, err := MoodOf(11); !errors.Is(err, ErrInvalidMood) {
		t.Errorf("MoodOf(11) err = %v, want ErrInvalidMood", err)
	}
	m, err := MoodOf(5)
	if err != nil || m.Value != 5 || m.Color == "" {
		t.Errorf("MoodOf(5) = %+v, %v", m, err)
	}
}
