package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitandes/innershield/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "innershield",
	Short:         "InnerShield — local-first wellness companion",
	Long:          "InnerShield tracks breathing sessions, journal entries, sleep sounds and daily missions, and turns them into a weekly shield level, mood trends and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newJournalCmd(),
		newBreatheCmd(),
		newSleepCmd(),
		newMissionsCmd(),
		newInsightsCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
