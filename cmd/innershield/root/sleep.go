package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitandes/innershield/internal/ui"
)

func newSleepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Sleep melodies",
	}

	cmd.AddCommand(newSleepPlayedCmd())
	return cmd
}

func newSleepPlayedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "played",
		Short: "Record a sleep-melody session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			total, err := svc.RecordSleepSession(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSleep+" Sleep session recorded"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total sessions", total))
			return nil
		},
	}

	return cmd
}
