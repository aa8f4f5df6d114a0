package week

import (
	"time"

	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/spf13/cobra"
)

// WeekCmd is the parent command for weekly-schedule subcommands.
var WeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Generate and inspect weekly schedules",
}

func init() {
	WeekCmd.AddCommand(generateCmd)
	WeekCmd.AddCommand(showCmd)
}

// resolveWeekStart maps an optional date argument to the Monday of its week.
// An empty argument means the current week.
func resolveWeekStart(arg string) (string, error) {
	if arg == "" {
		arg = time.Now().Format(planner.DateLayout)
	}
	return planner.WeekStart(arg)
}
