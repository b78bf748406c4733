package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habittrack/habittrack/internal/models"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <habit-id>",
	Short: "Toggle a habit's completion for a date",
	Long: `Toggle flips a habit's completion for the given date: an existing
completion is removed, otherwise one is recorded with value 1.

Example:
  habitctl toggle 7f3a... --date 2025-06-01
  habitctl toggle 7f3a...              (defaults to today)`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	toggleCmd.Flags().StringVar(&flagDate, "date", "", "calendar day YYYY-MM-DD (default: today)")
}

func runToggle(cmd *cobra.Command, args []string) error {
	date := flagDate
	if date == "" {
		date = time.Now().UTC().Format(models.DateLayout)
	}
	if _, errParse := time.Parse(models.DateLayout, date); errParse != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	c := newClient()
	completed, err := c.ToggleCompletion(cmd.Context(), args[0], date)
	if err != nil {
		return err
	}
	if completed {
		fmt.Printf("Completed for %s\n", date)
	} else {
		fmt.Printf("Cleared for %s\n", date)
	}
	return nil
}
