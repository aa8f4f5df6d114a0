package cli

import (
	"github.com/pwnd-u/life-planner/internal/cli/week"
	"github.com/pwnd-u/life-planner/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "planner",
	Short:   "Personal weekly time-allocation engine",
	Long:    `Planner places your goals and tasks into calendar time blocks for the week, respecting daily capacity and deep-work limits.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(week.WeekCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
