package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pwnd-u/life-planner/internal/util"
)

// ScheduleResult is the scheduler's output: the week's blocks, sorted by date
// then sort order, plus the IDs of tasks that were considered but could not
// be placed without breaching a daily limit. The unscheduled list lets
// callers distinguish "not needed this week" from "didn't fit".
type ScheduleResult struct {
	Blocks      []ScheduledBlock `json:"blocks"`
	Unscheduled []string         `json:"unscheduled,omitempty"`
}

// micro blocks are placed with a fixed 15-minute estimate and 5-minute buffer
// regardless of the task's own numbers.
const (
	microEstimate = 15
	microBuffer   = 5
)

// microHeadroom is the slack a day must have left before it receives a micro
// block.
const microHeadroom = 20

// scheduler holds the immutable inputs of one run.
type scheduler struct {
	goals     []Goal
	tasks     []Task
	capacity  CapacitySettings
	dates     []string
	workStart int
	workEnd   int
}

// allocation is the accumulator threaded through the four passes. Later
// passes see earlier placements by querying blocks through the capacity
// evaluator.
type allocation struct {
	blocks    []ScheduledBlock
	scheduled map[string]bool // task IDs placed so far
	blocked   map[string]bool // task IDs that failed a capacity check
}

// RunWeeklyScheduler places tasks into the seven-day window starting at
// weekStart (a Monday, YYYY-MM-DD). It is deterministic for identical inputs
// and returns a complete new block set; it never mutates its arguments or
// returns a partial result. Individual tasks that cannot be placed are a
// normal outcome and surface only in ScheduleResult.Unscheduled — the only
// errors are malformed inputs.
func RunWeeklyScheduler(goals []Goal, tasks []Task, capacity CapacitySettings, weekStart string) (*ScheduleResult, error) {
	dates, err := WeekWindowDates(weekStart)
	if err != nil {
		return nil, err
	}

	workStart, err := TimeToMinutes(capacity.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("invalid work start: %w", err)
	}
	workEnd, err := TimeToMinutes(capacity.WorkEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid work end: %w", err)
	}

	if err := validateTasks(tasks); err != nil {
		return nil, err
	}

	s := scheduler{
		goals:     goals,
		tasks:     tasks,
		capacity:  capacity,
		dates:     dates,
		workStart: workStart,
		workEnd:   workEnd,
	}

	a := allocation{
		scheduled: make(map[string]bool),
		blocked:   make(map[string]bool),
	}
	a = s.placeFixed(a)
	a = s.placeDeadlines(a)
	a = s.placeGoalSessions(a)
	a = s.placeMicro(a)

	sort.SliceStable(a.blocks, func(i, j int) bool {
		if a.blocks[i].Date != a.blocks[j].Date {
			return a.blocks[i].Date < a.blocks[j].Date
		}
		return a.blocks[i].SortOrder < a.blocks[j].SortOrder
	})
	for i := range a.blocks {
		a.blocks[i].ID = util.GenerateBlockID(i)
	}

	return &ScheduleResult{
		Blocks:      a.blocks,
		Unscheduled: s.unscheduledIDs(a),
	}, nil
}

// validateTasks rejects malformed date/time strings up front so the passes
// never run against partially valid input.
func validateTasks(tasks []Task) error {
	for _, t := range tasks {
		if t.FixedTime != "" {
			if _, err := TimeToMinutes(t.FixedTime); err != nil {
				return fmt.Errorf("task %s: invalid fixed time: %w", t.ID, err)
			}
		}
		if t.Deadline != "" {
			if _, err := time.Parse(DateLayout, t.Deadline); err != nil {
				return fmt.Errorf("task %s: invalid deadline %q: must be YYYY-MM-DD", t.ID, t.Deadline)
			}
		}
	}
	return nil
}

// Pass 1: fixed placements. Fixed events, and deadline tasks carrying an
// explicit clock time, go exactly where they ask — no capacity or collision
// check, since they represent commitments already made elsewhere.
func (s scheduler) placeFixed(a allocation) allocation {
	for _, t := range s.tasks {
		if t.Completed {
			continue
		}
		if t.Kind != TaskKindFixed && !(t.Kind == TaskKindDeadline && t.FixedTime != "") {
			continue
		}

		date := t.Deadline
		if date == "" {
			date = s.dates[0]
		}

		start := s.workStart
		if t.FixedTime != "" {
			start, _ = TimeToMinutes(t.FixedTime) // validated up front
		}

		duration := s.capacity.BufferedMinutes(t.EstimatedMinutes)
		a = s.commit(a, t, date, start, duration, duration-t.EstimatedMinutes, t.Energy, SortOrderFixed)
	}
	return a
}

// Pass 2: deadline tasks without a fixed time, placed on their deadline date
// when capacity allows.
func (s scheduler) placeDeadlines(a allocation) allocation {
	for _, t := range s.tasks {
		if t.Completed || a.scheduled[t.ID] {
			continue
		}
		if t.Kind != TaskKindDeadline || t.FixedTime != "" {
			continue
		}
		if t.Deadline == "" || !s.inWindow(t.Deadline) {
			continue
		}

		duration := s.capacity.BufferedMinutes(t.EstimatedMinutes)
		if check := WouldExceedLimits(s.capacity, a.blocks, t.Deadline, duration, t.Energy); !check.OK {
			a.blocked[t.ID] = true
			continue
		}

		start := s.stackedStart(a.blocks, t.Deadline, duration)
		a = s.commit(a, t, t.Deadline, start, duration, duration-t.EstimatedMinutes, t.Energy, SortOrderDeadline)
	}
	return a
}

// Pass 3: goal quotas, tier 1 first. Each goal gets at most one session per
// window date until its weekly target is met; a task is scheduled at most
// once across the whole run.
func (s scheduler) placeGoalSessions(a allocation) allocation {
	goals := make([]Goal, len(s.goals))
	copy(goals, s.goals)
	sort.SliceStable(goals, func(i, j int) bool { return goals[i].Tier < goals[j].Tier })

	for _, g := range goals {
		if !g.Active {
			continue
		}

		target := g.WeeklyQuotaSessions
		if target == 0 && g.WeeklyQuotaHours > 0 {
			target = int(math.Ceil(g.WeeklyQuotaHours))
		}
		if target == 0 {
			continue
		}

		placed := 0
		for _, date := range s.dates {
			if placed >= target {
				break
			}

			t, ok := s.pickGoalTask(a, g.ID, date)
			if !ok {
				break // goal has no unscheduled tasks left
			}

			duration := s.capacity.BufferedMinutes(t.EstimatedMinutes)
			if check := WouldExceedLimits(s.capacity, a.blocks, date, duration, t.Energy); !check.OK {
				a.blocked[t.ID] = true
				continue
			}

			start := s.stackedStart(a.blocks, date, duration)
			a = s.commit(a, t, date, start, duration, duration-t.EstimatedMinutes, t.Energy, SortOrderGoal)
			placed++
		}
	}
	return a
}

// pickGoalTask selects the goal's next session task for date: a Deep task
// while the day still has deep headroom, otherwise a non-Deep task, falling
// back to the first unscheduled task regardless of energy. The caller still
// runs the capacity check on the pick.
func (s scheduler) pickGoalTask(a allocation, goalID, date string) (Task, bool) {
	var candidates []Task
	for _, t := range s.tasks {
		if t.Completed || a.scheduled[t.ID] || t.GoalID != goalID {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return Task{}, false
	}

	if DeepBlockCount(a.blocks, date) < s.capacity.MaxDeepBlocksPerDay {
		for _, t := range candidates {
			if t.Energy == EnergyDeep {
				return t, true
			}
		}
	} else {
		for _, t := range candidates {
			if t.Energy != EnergyDeep {
				return t, true
			}
		}
	}

	return candidates[0], true
}

// Pass 4: one micro task per day with headroom, always 15+5 minutes and
// forced to Light energy to keep the cognitive cost minimal.
func (s scheduler) placeMicro(a allocation) allocation {
	for _, date := range s.dates {
		if PlannedMinutes(a.blocks, date, true) >= s.capacity.DailyCapMinutes()-microHeadroom {
			continue
		}

		t, ok := s.nextMicroTask(a)
		if !ok {
			break
		}

		duration := microEstimate + microBuffer
		start := s.stackedStart(a.blocks, date, duration)
		a = s.commit(a, t, date, start, duration, microBuffer, EnergyLight, SortOrderMicro)
	}
	return a
}

func (s scheduler) nextMicroTask(a allocation) (Task, bool) {
	for _, t := range s.tasks {
		if t.Completed || a.scheduled[t.ID] {
			continue
		}
		if t.Kind == TaskKindMicro && t.EstimatedMinutes <= MicroEstimateMax {
			return t, true
		}
	}
	return Task{}, false
}

// stackedStart stacks a new block after the day's planned minutes, clamped so
// the start never sits past the last point the block could begin and still
// end at workEnd. The result is not re-checked against the work window; a
// crowded day can push the end past workEnd (see MinutesToTime).
func (s scheduler) stackedStart(blocks []ScheduledBlock, date string, duration int) int {
	offset := PlannedMinutes(blocks, date, true)
	if latest := (s.workEnd - s.workStart) - duration; offset > latest {
		offset = latest
	}
	return s.workStart + offset
}

// commit appends a pending block for the task and marks the task consumed.
func (s scheduler) commit(a allocation, t Task, date string, start, duration, buffer int, energy string, sortOrder int) allocation {
	a.blocks = append(a.blocks, ScheduledBlock{
		TaskID:        t.ID,
		Date:          date,
		StartTime:     MinutesToTime(start),
		EndTime:       MinutesToTime(start + duration),
		BufferMinutes: buffer,
		Energy:        energy,
		Status:        BlockStatusPending,
		SortOrder:     sortOrder,
	})
	a.scheduled[t.ID] = true
	return a
}

func (s scheduler) inWindow(date string) bool {
	return date >= s.dates[0] && date <= s.dates[6]
}

// unscheduledIDs lists, in input order, tasks that hit a capacity limit and
// never found a home.
func (s scheduler) unscheduledIDs(a allocation) []string {
	var ids []string
	for _, t := range s.tasks {
		if a.blocked[t.ID] && !a.scheduled[t.ID] {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
