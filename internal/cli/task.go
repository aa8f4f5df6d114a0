package cli

import (
	"fmt"
	"time"

	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/pwnd-u/life-planner/internal/util"
	"github.com/spf13/cobra"
)

var (
	taskKind     string
	taskGoal     string
	taskEstimate int
	taskEnergy   string
	taskDeadline string
	taskAt       string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateTaskFlags(); err != nil {
			return err
		}

		id, err := util.GenerateShortID()
		if err != nil {
			return fmt.Errorf("failed to generate task ID: %w", err)
		}

		t := planner.Task{
			ID:               id,
			Title:            args[0],
			Kind:             taskKind,
			GoalID:           taskGoal,
			EstimatedMinutes: taskEstimate,
			Energy:           taskEnergy,
			Deadline:         taskDeadline,
			FixedTime:        taskAt,
		}
		if err := store.AddTask(t); err != nil {
			return err
		}

		fmt.Printf("Task added: %s (%s)\n", t.Title, t.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := store.LoadTasks()
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Run 'planner task add <title>'.")
			return nil
		}

		for _, t := range tasks {
			state := " "
			if t.Completed {
				state = "x"
			}
			extra := ""
			if t.Deadline != "" {
				extra += "  due " + t.Deadline
			}
			if t.FixedTime != "" {
				extra += "  at " + t.FixedTime
			}
			fmt.Printf("[%s] %s  %-12s %3d min  %-5s %s%s\n", state, t.ID, t.Kind, t.EstimatedMinutes, t.Energy, t.Title, extra)
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.CompleteTask(args[0]); err != nil {
			return err
		}
		fmt.Printf("Task completed: %s\n", args[0])
		return nil
	},
}

// validateTaskFlags rejects malformed task input before it reaches the store;
// the scheduler would refuse the whole run otherwise.
func validateTaskFlags() error {
	switch taskKind {
	case planner.TaskKindGoal, planner.TaskKindDeadline, planner.TaskKindFixed,
		planner.TaskKindLocation, planner.TaskKindMicro:
	default:
		return fmt.Errorf("invalid kind %q: must be goal, deadline, fixed_event, location or micro", taskKind)
	}

	switch taskEnergy {
	case planner.EnergyDeep, planner.EnergyLight, planner.EnergyAdmin:
	default:
		return fmt.Errorf("invalid energy %q: must be deep, light or admin", taskEnergy)
	}

	if taskEstimate <= 0 {
		return fmt.Errorf("estimate must be positive")
	}
	if taskKind == planner.TaskKindMicro && taskEstimate > planner.MicroEstimateMax {
		return fmt.Errorf("micro tasks must be %d minutes or less", planner.MicroEstimateMax)
	}

	if taskDeadline != "" {
		if _, err := time.Parse(planner.DateLayout, taskDeadline); err != nil {
			return fmt.Errorf("invalid deadline %q: must be YYYY-MM-DD", taskDeadline)
		}
	}
	if taskAt != "" {
		if _, err := planner.TimeToMinutes(taskAt); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	taskAddCmd.Flags().StringVar(&taskKind, "kind", planner.TaskKindGoal, "Task kind (goal, deadline, fixed_event, location, micro)")
	taskAddCmd.Flags().StringVar(&taskGoal, "goal", "", "Linked goal ID")
	taskAddCmd.Flags().IntVar(&taskEstimate, "estimate", 30, "Estimated duration in minutes")
	taskAddCmd.Flags().StringVar(&taskEnergy, "energy", planner.EnergyLight, "Energy classification (deep, light, admin)")
	taskAddCmd.Flags().StringVar(&taskDeadline, "deadline", "", "Deadline date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskAt, "at", "", "Fixed clock time (HH:mm)")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
}
