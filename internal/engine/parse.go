package engine

import (
	"fmt"
	"strconv"
	"strings"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// Days is the nominal length of the period in calendar days.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 0
	}
}

func ParsePeriod(input string) (Period, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	p := Period(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid period: %q (want week|month|year)", input)
	}
	return p, nil
}

// Mood is a validated check-in: the 1-10 value plus the display color
// stored alongside it in the mood week.
type Mood struct {
	Value int
	Color string
}

// namedMoods is the check-in palette. The colors are the exact strings
// the mobile app has always written for these moods, so a datafile
// produced here matches one produced on the phone.
var namedMoods = map[string]Mood{
	"happy":    {Value: 10, Color: "#4CAF50"},
	"grateful": {Value: 9, Color: "#E91E63"},
	"calm":     {Value: 8, Color: "#2196F3"},
	"anxious":  {Value: 4, Color: "#FF9800"},
	"sad":      {Value: 3, Color: "#9C27B0"},
	"stressed": {Value: 2, Color: "#F44336"},
}

// ParseMood accepts either a named mood from the check-in palette or a
// raw 1-10 value. Named moods keep their palette color; numeric input
// gets a value-band color.
func ParseMood(input string) (Mood, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if m, ok := namedMoods[s]; ok {
		return m, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Mood{}, fmt.Errorf("invalid mood: %q", input)
	}
	return MoodOf(n)
}

// MoodOf builds a Mood from a raw 1-10 value.
func MoodOf(value int) (Mood, error) {
	if value < 1 || value > 10 {
		return Mood{}, ErrInvalidMood
	}
	return Mood{Value: value, Color: moodColor(value)}, nil
}
