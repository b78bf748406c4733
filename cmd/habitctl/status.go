package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habittrack/habittrack/internal/client"
	"github.com/habittrack/habittrack/internal/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show completion status for a date",
	Long: `Status shows which habits are completed on the given date, the
overall completion percentage, and profile streak values.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&flagDate, "date", "", "calendar day YYYY-MM-DD (default: today)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	c := newClient()
	ctx := cmd.Context()

	user, err := c.User(ctx)
	if err != nil {
		return err
	}
	habits, err := c.Habits(ctx)
	if err != nil {
		return err
	}
	completions, err := c.Completions(ctx)
	if err != nil {
		return err
	}

	view := client.NewViewState()
	if flagDate != "" {
		if _, errParse := time.Parse(models.DateLayout, flagDate); errParse != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagDate)
		}
		view.SelectDate(flagDate)
	}

	completed := view.CompletedHabitIDs(completions)
	fmt.Printf("%s on %s\n", user.Name, view.SelectedDate)
	for _, habit := range habits {
		mark := " "
		if completed[habit.ID] {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, habit.Name)
	}
	fmt.Printf("%d%% complete, streak %d (best %d)\n",
		view.CompletionRate(habits, completions), user.CurrentStreak, user.LongestStreak)
	return nil
}
