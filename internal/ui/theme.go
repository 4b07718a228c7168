package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InnerShield theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconShield  = "🛡️"
	IconSparkle = "✨"
	IconBreath  = "🌬️"
	IconJournal = "📓"
	IconSleep   = "🌙"
	IconMission = "🎯"
	IconStreak  = "🔥"
	IconTrophy  = "🏆"
	IconCompass = "🧭"
	IconMood    = "🙂"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconDone    = "✅"
)

var (
	cPrimary = lipgloss.Color("39")  // blue
	cAccent  = lipgloss.Color("78")  // calm green
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TrendText renders a trend direction with an arrow and matching color.
func TrendText(trend string) string {
	switch strings.ToLower(strings.TrimSpace(trend)) {
	case "up":
		return Good.Render("↑ up")
	case "down":
		return Bad.Render("↓ down")
	default:
		return Warn.Render("→ stable")
	}
}

// ProgressBar renders a [####----] bar for value out of total.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
