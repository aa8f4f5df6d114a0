package week

import (
	"fmt"

	"github.com/pwnd-u/life-planner/internal/display"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the stored schedule for a week",
	Args:  cobra.MaximumNArgs(1),
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
		tasks, err := store.LoadTasks()
		if err != nil {
			return err
		}
		blocks, err := store.LoadSchedule(weekStart)
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			fmt.Printf("No schedule for the week of %s. Run 'planner week generate %s'.\n", weekStart, weekStart)
			return nil
		}

		rendered, err := display.RenderWeek(weekStart, blocks, tasks, capacity)
		if err != nil {
			return err
		}
		fmt.Printf("Week of %s\n\n", weekStart)
		fmt.Print(rendered)
		return nil
	},
}
