package week

import (
	"fmt"

	"github.com/pwnd-u/life-planner/internal/display"
	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/spf13/cobra"
)

var generateDryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate [date]",
	Short: "Run the weekly scheduler",
	Long: `Runs the scheduler for the week containing the given date (default: the
current week) and replaces that week's stored schedule. Fixed events are
placed first, then deadline tasks, then goal sessions by tier, then one micro
task per day.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		weekStart, err := resolveWeekStart(arg)
		if err != nil {
			return err
		}

		capacity, err := store.LoadSettings()
		if err != nil {
			return err
		}
		goals, err := store.LoadGoals()
		if err != nil {
			return err
		}
		tasks, err := store.LoadTasks()
		if err != nil {
			return err
		}

		result, err := planner.RunWeeklyScheduler(goals, tasks, capacity, weekStart)
		if err != nil {
			return fmt.Errorf("scheduling failed: %w", err)
		}

		if !generateDryRun {
			if err := store.SaveSchedule(weekStart, result.Blocks); err != nil {
				return err
			}
		}

		rendered, err := display.RenderWeek(weekStart, result.Blocks, tasks, capacity)
		if err != nil {
			return err
		}
		fmt.Printf("Week of %s (%d blocks)\n\n", weekStart, len(result.Blocks))
		fmt.Print(rendered)
		if out := display.RenderUnscheduled(result.Unscheduled, tasks); out != "" {
			fmt.Println()
			fmt.Print(out)
		}
		if generateDryRun {
			fmt.Println("\nDry run - nothing saved.")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Preview the schedule without saving it")
}
