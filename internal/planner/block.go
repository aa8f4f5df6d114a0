package planner

// ScheduledBlock is one scheduled occurrence of a task on a specific date and
// time range. A week's full set is created by one scheduler run and replaced
// wholesale on the next; only the status-transition path mutates blocks after
// that.
type ScheduledBlock struct {
	ID            string `json:"id"`
	TaskID        string `json:"taskId"`
	Date          string `json:"date"` // YYYY-MM-DD
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	BufferMinutes int    `json:"bufferMinutes"`
	Energy        string `json:"energy"`
	Status        string `json:"status"`
	SkipReason    string `json:"skipReason,omitempty"`
	SortOrder     int    `json:"sortOrder"`
}

// Block status constants
const (
	BlockStatusPending    = "pending"
	BlockStatusInProgress = "in_progress"
	BlockStatusCompleted  = "completed"
	BlockStatusSkipped    = "skipped"
)

// Sort orders group blocks within a day: 1-3 are the priority passes, 4 is
// the micro pass, 5 is reserved for explicit buffer blocks.
const (
	SortOrderFixed    = 1
	SortOrderDeadline = 2
	SortOrderGoal     = 3
	SortOrderMicro    = 4
	SortOrderBuffer   = 5
)
