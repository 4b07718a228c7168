package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vitandes/innershield/internal/engine"
	"github.com/vitandes/innershield/internal/storage"
	"github.com/vitandes/innershield/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Show today's missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			missions, err := svc.Missions(ctx)
			if err != nil {
				return err
			}
			printMissions(cmd, missions)
			return nil
		},
	}

	cmd.AddCommand(newMissionsDoneCmd())
	return cmd
}

func newMissionsDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a mission",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.Atoi(args[0])
			missions, err := svc.ToggleMission(ctx, id)
			if err != nil {
				return err
			}
			printMissions(cmd, missions)

			level, err := svc.ShieldLevel(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Shield", fmt.Sprintf("%d%%", level)))
			return nil
		},
	}

	return cmd
}

func printMissions(cmd *cobra.Command, missions []storage.Mission) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMission, "Today's Missions"))
	for _, m := range missions {
		check := ui.Muted.Render("[ ]")
		if m.Completed {
			check = ui.Good.Render("[x]")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", check, m.ID, m.Title)
	}
	completed := engine.CountCompleted(missions)
	fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%d of %d missions completed", completed, len(missions))))
}
