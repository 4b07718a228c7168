package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitandes/innershield/internal/engine"
	"github.com/vitandes/innershield/internal/ui"
)

func newInsightsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show wellness metrics, mood and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := engine.ParsePeriod(period)
			if err != nil {
				return err
			}

			stats, err := svc.WeightedStats(ctx, p)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShield, "Wellness Analysis"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Period", string(p)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.LabelValue("Shield", fmt.Sprintf("%d%%", stats.ShieldLevel)),
				ui.ProgressBar(stats.ShieldLevel, 100, 20),
				ui.TrendText(stats.Trend))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mood average", fmt.Sprintf("%d/10", stats.MoodAverage)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Active days", fmt.Sprintf("%d of %d (%d%%)", stats.ActiveDays, stats.EffectiveDays, stats.UsageEfficiency)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Exercises", stats.CompletedExercises))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Days in app", stats.TotalDaysInApp))

			streak, err := svc.StreakCount(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%d %s", streak, ui.IconStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			moodWeek, err := svc.MoodWeek(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconMood+" Weekly Mood"))
			for _, e := range moodWeek {
				bar := strings.Repeat("█", e.Mood)
				if e.Mood == 0 {
					bar = ui.Muted.Render("·")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %-10s %d\n", ui.Key.Render(e.Day), bar, e.Mood)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, a := range achievements {
				if a.Earned {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", ui.Gold.Render("★"), a.Title, ui.Muted.Render("earned "+a.Date))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "-   %s %s %s\n", a.Title, ui.ProgressBar(int(a.Progress), 100, 14), ui.Muted.Render(fmt.Sprintf("%.0f%%", a.Progress)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "week", "Period (week|month|year)")

	return cmd
}
