package planner

// Task represents a single unit of schedulable work.
type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Kind             string `json:"kind"`
	GoalID           string `json:"goalId,omitempty"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Energy           string `json:"energy"`
	Deadline         string `json:"deadline,omitempty"`  // YYYY-MM-DD
	FixedTime        string `json:"fixedTime,omitempty"` // HH:mm
	Completed        bool   `json:"completed"`
}

// Task kind constants
const (
	TaskKindGoal     = "goal"
	TaskKindDeadline = "deadline"
	TaskKindFixed    = "fixed_event"
	TaskKindLocation = "location"
	TaskKindMicro    = "micro"
)

// Energy classification constants
const (
	EnergyDeep  = "deep"
	EnergyLight = "light"
	EnergyAdmin = "admin"
)

// MicroEstimateMax is the largest estimate (in minutes) a task may carry and
// still count as a micro task.
const MicroEstimateMax = 15
