package cli

import (
	"fmt"

	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/spf13/cobra"
)

var (
	blockWeek  string
	skipReason string
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Advance scheduled block status",
	Long:  `Start, complete or skip a scheduled block. Status changes are the only mutation applied to a generated schedule between scheduler runs.`,
}

var blockStartCmd = &cobra.Command{
	Use:   "start <blockID>",
	Short: "Mark a block in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weekStart, err := resolveBlockWeek()
		if err != nil {
			return err
		}
		if err := store.StartBlock(weekStart, args[0]); err != nil {
			return err
		}
		fmt.Printf("Block started: %s\n", args[0])
		return nil
	},
}

var blockCompleteCmd = &cobra.Command{
	Use:   "complete <blockID>",
	Short: "Mark a block completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weekStart, err := resolveBlockWeek()
		if err != nil {
			return err
		}
		if err := store.CompleteBlock(weekStart, args[0]); err != nil {
			return err
		}
		fmt.Printf("Block completed: %s\n", args[0])
		return nil
	},
}

var blockSkipCmd = &cobra.Command{
	Use:   "skip <blockID>",
	Short: "Mark a block skipped",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weekStart, err := resolveBlockWeek()
		if err != nil {
			return err
		}
		if err := store.SkipBlock(weekStart, args[0], skipReason); err != nil {
			return err
		}
		fmt.Printf("Block skipped: %s\n", args[0])
		return nil
	},
}

// resolveBlockWeek returns the Monday of the week the block commands operate
// on: --week if given, else the current week.
func resolveBlockWeek() (string, error) {
	if blockWeek != "" {
		return planner.WeekStart(blockWeek)
	}
	return planner.WeekStart(today())
}

func init() {
	blockCmd.PersistentFlags().StringVar(&blockWeek, "week", "", "Any date inside the target week (YYYY-MM-DD, default today)")
	blockSkipCmd.Flags().StringVar(&skipReason, "reason", "", "Why the block was skipped")

	blockCmd.AddCommand(blockStartCmd)
	blockCmd.AddCommand(blockCompleteCmd)
	blockCmd.AddCommand(blockSkipCmd)
}
