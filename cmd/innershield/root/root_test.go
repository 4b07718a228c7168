package root

import (
	"testing"

	"github.com/spf13/cobra"
)

func findSub(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("%s has no %q subcommand", parent.Name(), name)
	return nil
}

func TestCommandTree(t *testing.T) {
	findSub(t, newBreatheCmd(), "done")
	findSub(t, newSleepCmd(), "played")

	journal := newJournalCmd()
	findSub(t, journal, "add")
	findSub(t, journal, "list")

	findSub(t, newMissionsCmd(), "done")
}

func TestBreatheDoneMoodFlag(t *testing.T) {
	cmd := findSub(t, newBreatheCmd(), "done")
	if cmd.Flags().Lookup("mood") == nil {
		t.Fatalf("breathe done has no --mood flag")
	}
}
