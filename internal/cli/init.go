package cli

import (
	"fmt"

	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the planner in the current directory",
	Long:  "Creates a .planner/ folder with default capacity settings, goals, tasks and weekly schedules.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := store.Init(); err != nil {
		return err
	}

	fmt.Println("Initialized planner in .planner")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Add a goal:  planner goal add \"Learn Go\" --tier 1 --sessions 5")
	fmt.Println("  2. Add tasks:   planner task add \"Read chapter\" --goal <id> --estimate 60 --energy deep")
	fmt.Println("  3. Generate:    planner week generate")
	return nil
}
