package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitandes/innershield/internal/engine"
	"github.com/vitandes/innershield/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and browse journal entries",
	}

	cmd.AddCommand(newJournalAddCmd(), newJournalListCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Save a journal entry with a mood check-in",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("entry text is required")
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

			m, err := engine.ParseMood(mood)
			if err != nil {
				return err
			}

			entry, err := svc.RecordJournalEntry(ctx, strings.Join(args, " "), m)
			if err != nil {
				return err
			}

			level, err := svc.ShieldLevel(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconJournal+" Entry saved")+" "+ui.Muted.Render(entry.Date+" "+entry.Time))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Shield", fmt.Sprintf("%d%%", level)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "calm", "Mood (happy|grateful|calm|anxious|sad|stressed or 1-10)")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.JournalEntries(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no entries yet)"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, "Journal"))
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(e.Date),
					ui.Muted.Render(fmt.Sprintf("%s mood=%d", e.Time, e.Mood)),
					e.Text)
			}
			return nil
		},
	}

	return cmd
}
