package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habittrack/habittrack/internal/client"
)

// Habit creation flag values.
var (
	habitName        string
	habitDescription string
	habitFrequency   string
	habitTarget      int
	habitColor       string
	habitGroup       string
	habitShared      bool
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Manage habits",
}

var habitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your habits",
	RunE:  runHabitsList,
}

var habitsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new habit",
	Long: `Add creates a new habit.

Example:
  habitctl habits add --name "Morning Exercise" --frequency daily
  habitctl habits add --name "Weekly Review" --frequency weekly --target 1`,
	RunE: runHabitsAdd,
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm <habit-id>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitsRm,
}

func init() {
	habitsAddCmd.Flags().StringVar(&habitName, "name", "", "habit name (required)")
	habitsAddCmd.Flags().StringVar(&habitDescription, "description", "", "habit description")
	habitsAddCmd.Flags().StringVar(&habitFrequency, "frequency", "", "daily, weekly or monthly (default: daily)")
	habitsAddCmd.Flags().IntVar(&habitTarget, "target", 1, "target value per period (1-10)")
	habitsAddCmd.Flags().StringVar(&habitColor, "color", "", "display color")
	habitsAddCmd.Flags().StringVar(&habitGroup, "group", "", "group id")
	habitsAddCmd.Flags().BoolVar(&habitShared, "shared", false, "mark as collaborative")
	_ = habitsAddCmd.MarkFlagRequired("name")

	habitsCmd.AddCommand(habitsListCmd)
	habitsCmd.AddCommand(habitsAddCmd)
	habitsCmd.AddCommand(habitsRmCmd)
}

func runHabitsList(cmd *cobra.Command, args []string) error {
	c := newClient()
	habits, err := c.Habits(cmd.Context())
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet")
		return nil
	}
	for _, habit := range habits {
		shared := ""
		if habit.IsCollaborative {
			shared = " (shared)"
		}
		fmt.Printf("%s  %-24s %s x%d%s\n", habit.ID, habit.Name, habit.Frequency, habit.TargetValue, shared)
	}
	return nil
}

func runHabitsAdd(cmd *cobra.Command, args []string) error {
	params := client.CreateHabitParams{
		Name:            habitName,
		Frequency:       habitFrequency,
		TargetValue:     habitTarget,
		Color:           habitColor,
		IsCollaborative: habitShared,
	}
	if habitDescription != "" {
		params.Description = &habitDescription
	}
	if habitGroup != "" {
		params.GroupID = &habitGroup
	}

	c := newClient()
	habit, err := c.CreateHabit(cmd.Context(), params)
	if err != nil {
		return err
	}
	fmt.Printf("Created habit: %s\n", habit.ID)
	return nil
}

func runHabitsRm(cmd *cobra.Command, args []string) error {
	c := newClient()
	if err := c.DeleteHabit(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted")
	return nil
}
