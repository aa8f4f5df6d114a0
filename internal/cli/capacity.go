package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pwnd-u/life-planner/internal/planner"
	"github.com/pwnd-u/life-planner/internal/store"
	"github.com/spf13/cobra"
)

var capacityDeep bool

var capacityCmd = &cobra.Command{
	Use:   "capacity <date> <minutes>",
	Short: "Check whether a block would fit a day's limits",
	Long: `Previews a manual add: reports whether placing <minutes> of work on <date>
would exceed the daily planned-time or deep-block caps. A failed check is a
normal answer, not an error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]
		if _, err := time.Parse(planner.DateLayout, date); err != nil {
			return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", date)
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			return fmt.Errorf("invalid minutes %q: must be a positive integer", args[1])
		}

		capacity, err := store.LoadSettings()
		if err != nil {
			return err
		}

		weekStart, err := planner.WeekStart(date)
		if err != nil {
			return err
		}
		blocks, err := store.LoadSchedule(weekStart)
		if err != nil {
			return err
		}

		energy := planner.EnergyLight
		if capacityDeep {
			energy = planner.EnergyDeep
		}

		check := planner.WouldExceedLimits(capacity, blocks, date, minutes, energy)
		if check.OK {
			planned := planner.PlannedMinutes(blocks, date, true)
			fmt.Printf("OK: %d min fits on %s (%d/%d min already planned)\n",
				minutes, date, planned, capacity.DailyCapMinutes())
		} else {
			fmt.Printf("Does not fit: %s\n", check.Reason)
		}
		return nil
	},
}

func init() {
	capacityCmd.Flags().BoolVar(&capacityDeep, "deep", false, "Treat the candidate as a deep-work block")
}
