package storage

// JSON field names match the blobs the mobile app has been writing since
// the first release; changing them would orphan existing data.

// PeriodMetrics is one week/month/year bucket of derived wellness metrics.
type PeriodMetrics struct {
	ShieldLevel        int    `json:"shieldLevel"`
	MoodAverage        int    `json:"moodAverage"`
	ActiveDays         int    `json:"activeDays"`
	CompletedExercises int    `json:"completedExercises"`
	Trend              string `json:"trend"`
}

type WellnessMetrics struct {
	Week  PeriodMetrics `json:"week"`
	Month PeriodMetrics `json:"month"`
	Year  PeriodMetrics `json:"year"`
}

// MoodEntry is one weekday slot of the rolling mood week.
// Mood 0 means "no data recorded for this day".
type MoodEntry struct {
	Day               string `json:"day"`
	Mood              int    `json:"mood"`
	Color             string `json:"color"`
	CompletedMissions int    `json:"completedMissions"`
}

type Mission struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Icon      string `json:"icon"`
}

// Achievement progress runs 0..100; once Earned is set the record is frozen.
type Achievement struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Earned      bool    `json:"earned"`
	Date        string  `json:"date,omitempty"`
	Progress    float64 `json:"progress"`
}

type StreakData struct {
	Count    int    `json:"count"`
	LastDate string `json:"lastDate,omitempty"`
}

type JournalEntry struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
	Mood int    `json:"mood"`
	Text string `json:"entry"`
}
