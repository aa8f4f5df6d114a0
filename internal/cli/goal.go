package cli

import (
	"fmt"

	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/pwnd-u/life-planner/internal/util"
	"github.com/spf13/cobra"
)

var (
	goalTier     int
	goalHours    float64
	goalSessions int
	goalDaily    int
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a goal",
	Long:  `Add a goal with an optional weekly quota (hours or sessions). At most 3 goals may be active at once.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if goalTier < planner.TierHighest || goalTier > planner.TierLowest {
			return fmt.Errorf("tier must be between %d and %d", planner.TierHighest, planner.TierLowest)
		}
		if goalHours > 0 && goalSessions > 0 {
			return fmt.Errorf("set either --hours or --sessions, not both")
		}

		id, err := util.GenerateShortID()
		if err != nil {
			return fmt.Errorf("failed to generate goal ID: %w", err)
		}

		g := planner.Goal{
			ID:                  id,
			Name:                args[0],
			WeeklyQuotaHours:    goalHours,
			WeeklyQuotaSessions: goalSessions,
			DailyRepeat:         goalDaily,
			Tier:                goalTier,
			Active:              true,
		}
		if err := store.AddGoal(g); err != nil {
			return err
		}

		fmt.Printf("Goal added: %s (%s)\n", g.Name, g.ID)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := store.LoadGoals()
		if err != nil {
			return err
		}
		if len(goals) == 0 {
			fmt.Println("No goals yet. Run 'planner goal add <name>'.")
			return nil
		}

		for _, g := range goals {
			state := "active"
			if !g.Active {
				state = "inactive"
			}
			quota := "no quota"
			switch {
			case g.WeeklyQuotaSessions > 0:
				quota = fmt.Sprintf("%d sessions/week", g.WeeklyQuotaSessions)
			case g.WeeklyQuotaHours > 0:
				quota = fmt.Sprintf("%.1f hours/week", g.WeeklyQuotaHours)
			}
			fmt.Printf("%s  tier %d  %-20s %s  %s\n", g.ID, g.Tier, quota, state, g.Name)
		}
		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Deactivate a goal",
	Long:  `Deactivates a goal so the scheduler stops allocating sessions for it. The goal is kept so past schedules stay valid.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeactivateGoal(args[0]); err != nil {
			return err
		}
		fmt.Printf("Goal deactivated: %s\n", args[0])
		return nil
	},
}

func init() {
	goalAddCmd.Flags().IntVar(&goalTier, "tier", 2, "Priority tier (1=highest, 3=lowest)")
	goalAddCmd.Flags().Float64Var(&goalHours, "hours", 0, "Weekly quota in hours")
	goalAddCmd.Flags().IntVar(&goalSessions, "sessions", 0, "Weekly quota in sessions")
	goalAddCmd.Flags().IntVar(&goalDaily, "daily", 0, "Daily repetition count")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalDoneCmd)
}
