package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitandes/innershield/internal/engine"
	"github.com/vitandes/innershield/internal/ui"
)

func newBreatheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Breathing exercises",
	}

	cmd.AddCommand(newBreatheDoneCmd())
	return cmd
}

func newBreatheDoneCmd() *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Record a completed breathing exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			total, err := svc.RecordBreathingSession(ctx)
			if err != nil {
				return err
			}

			if mood != "" {
				m, err := engine.ParseMood(mood)
				if err != nil {
					return err
				}
				if err := svc.RecordBreathingFeedback(ctx, m); err != nil {
					return err
				}
			}

			level, err := svc.ShieldLevel(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconBreath+" Breathing session recorded"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total sessions", total))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Shield", fmt.Sprintf("%d%%", level)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "", "How you feel afterwards (name or 1-10)")

	return cmd
}
