package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitandes/innershield/internal/engine"
	"github.com/vitandes/innershield/internal/storage"
	"github.com/vitandes/innershield/internal/ui"
)

var periods = []engine.Period{engine.PeriodWeek, engine.PeriodMonth, engine.PeriodYear}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	period       int
	stats        *engine.WeightedStats
	moodWeek     []storage.MoodEntry
	missions     []storage.Mission
	achievements []storage.Achievement
	streak       int

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	stats        *engine.WeightedStats
	moodWeek     []storage.MoodEntry
	missions     []storage.Mission
	achievements []storage.Achievement
	streak       int
	err          error
}

type toggledMsg struct {
	id  int
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	period := periods[m.period]
	return func() tea.Msg {
		stats, err := m.svc.WeightedStats(m.ctx, period)
		if err != nil {
			return loadedMsg{err: err}
		}
		moodWeek, err := m.svc.MoodWeek(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		missions, err := m.svc.Missions(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		achievements, err := m.svc.Achievements(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		streak, err := m.svc.StreakCount(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{stats: stats, moodWeek: moodWeek, missions: missions, achievements: achievements, streak: streak}
	}
}

func (m boardModel) toggleCmd(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.ToggleMission(m.ctx, id)
		return toggledMsg{id: id, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.moodWeek = msg.moodWeek
		m.missions = msg.missions
		m.achievements = msg.achievements
		m.streak = msg.streak
		if m.selected >= len(m.missions) {
			m.selected = len(m.missions) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Mission %d toggled.", msg.id)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "left", "h":
			if m.period > 0 {
				m.period--
				m.loading = true
				return m, m.loadCmd()
			}
			return m, nil
		case "right", "l":
			if m.period < len(periods)-1 {
				m.period++
				m.loading = true
				return m, m.loadCmd()
			}
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.missions)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			if m.selected < 0 || m.selected >= len(m.missions) {
				return m, nil
			}
			mission := m.missions[m.selected]
			m.lastLog = fmt.Sprintf("Toggling %d…", mission.ID)
			return m, m.toggleCmd(mission.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	tabs := make([]string, 0, len(periods))
	for i, p := range periods {
		label := string(p)
		if i == m.period {
			label = "[" + label + "]"
		}
		tabs = append(tabs, label)
	}
	if m.stats == nil {
		return "InnerShield — loading… | " + strings.Join(tabs, " ")
	}
	bar := ui.ProgressBar(m.stats.ShieldLevel, 100, 30)
	return fmt.Sprintf("InnerShield | Shield %d%% %s | Streak %d | %s",
		m.stats.ShieldLevel, bar, m.streak, strings.Join(tabs, " "))
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Today's Missions"}
	if len(m.missions) == 0 {
		lines = append(lines, "(none)")
	}
	for i, mission := range m.missions {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		check := "[ ]"
		if mission.Completed {
			check = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, check, mission.Title))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ←/→ or h/l: period")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- space/enter: toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading || m.stats == nil {
		return "Loading…"
	}

	var out []string
	out = append(out, fmt.Sprintf("Metrics (%s)", periods[m.period]))
	out = append(out, fmt.Sprintf("- Shield: %d%% (%s)", m.stats.ShieldLevel, m.stats.Trend))
	out = append(out, fmt.Sprintf("- Mood avg: %d/10", m.stats.MoodAverage))
	out = append(out, fmt.Sprintf("- Active days: %d of %d (%d%%)", m.stats.ActiveDays, m.stats.EffectiveDays, m.stats.UsageEfficiency))
	out = append(out, fmt.Sprintf("- Exercises: %d", m.stats.CompletedExercises))
	out = append(out, fmt.Sprintf("- Days in app: %d", m.stats.TotalDaysInApp))
	out = append(out, "")

	out = append(out, "Weekly Mood")
	for _, e := range m.moodWeek {
		bar := strings.Repeat("█", e.Mood)
		if e.Mood == 0 {
			bar = "·"
		}
		out = append(out, fmt.Sprintf("- %s %-10s %d", e.Day, bar, e.Mood))
	}
	out = append(out, "")

	out = append(out, "Achievements")
	for _, a := range m.achievements {
		mark := " "
		if a.Earned {
			mark = "★"
		}
		out = append(out, fmt.Sprintf("- %s %s %s %.0f%%", mark, a.Title, ui.ProgressBar(int(a.Progress), 100, 14), a.Progress))
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
