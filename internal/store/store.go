package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pwnd-u/life-planner/internal/planner"
)

const (
	plannerDir   = ".planner"
	weeksDir     = "weeks"
	settingsFile = "settings.json"
	goalsFile    = "goals.json"
	tasksFile    = "tasks.json"
	scheduleFile = "schedule.json"
)

// MaxActiveGoals caps how many goals may be active at once. The cap lives
// here, not in the scheduler: the scheduler trusts its inputs.
const MaxActiveGoals = 3

// Init creates the .planner/ directory structure with default capacity
// settings. It fails if the planner is already initialized.
func Init() error {
	if IsInitialized() {
		return fmt.Errorf("planner is already initialized in this directory")
	}

	dirs := []string{
		plannerDir,
		filepath.Join(plannerDir, weeksDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return SaveSettings(planner.DefaultSettings())
}

// IsInitialized reports whether a .planner/ directory exists here.
func IsInitialized() bool {
	info, err := os.Stat(plannerDir)
	return err == nil && info.IsDir()
}

// LoadSettings reads the capacity settings. A missing planner directory is an
// error; the user must run init first.
func LoadSettings() (planner.CapacitySettings, error) {
	var settings planner.CapacitySettings
	if err := loadJSON(filepath.Join(plannerDir, settingsFile), &settings); err != nil {
		if os.IsNotExist(err) {
			return settings, fmt.Errorf("planner not initialized. Run 'planner init' first")
		}
		return settings, err
	}
	return settings, nil
}

// SaveSettings writes the capacity settings.
func SaveSettings(settings planner.CapacitySettings) error {
	return saveJSON(filepath.Join(plannerDir, settingsFile), settings)
}

// LoadGoals reads all goals. A missing file means no goals yet.
func LoadGoals() ([]planner.Goal, error) {
	var goals []planner.Goal
	if err := loadJSON(filepath.Join(plannerDir, goalsFile), &goals); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return goals, nil
}

// SaveGoals writes the full goal list.
func SaveGoals(goals []planner.Goal) error {
	return saveJSON(filepath.Join(plannerDir, goalsFile), goals)
}

// AddGoal appends a goal, enforcing the active-goal cap.
func AddGoal(g planner.Goal) error {
	goals, err := LoadGoals()
	if err != nil {
		return err
	}

	if g.Active {
		active := 0
		for _, existing := range goals {
			if existing.Active {
				active++
			}
		}
		if active >= MaxActiveGoals {
			return fmt.Errorf("cannot add goal: %d goals are already active (max %d)", active, MaxActiveGoals)
		}
	}

	return SaveGoals(append(goals, g))
}

// DeactivateGoal soft-removes a goal. The goal record stays so history
// referencing it remains valid.
func DeactivateGoal(id string) error {
	goals, err := LoadGoals()
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID == id {
			goals[i].Active = false
			return SaveGoals(goals)
		}
	}
	return fmt.Errorf("goal not found: %s", id)
}

// LoadTasks reads all tasks. A missing file means no tasks yet.
func LoadTasks() ([]planner.Task, error) {
	var tasks []planner.Task
	if err := loadJSON(filepath.Join(plannerDir, tasksFile), &tasks); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return tasks, nil
}

// SaveTasks writes the full task list.
func SaveTasks(tasks []planner.Task) error {
	return saveJSON(filepath.Join(plannerDir, tasksFile), tasks)
}

// AddTask appends a task.
func AddTask(t planner.Task) error {
	tasks, err := LoadTasks()
	if err != nil {
		return err
	}
	return SaveTasks(append(tasks, t))
}

// CompleteTask marks a task completed. Completion is independent of
// scheduling; the scheduler simply stops considering the task.
func CompleteTask(id string) error {
	tasks, err := LoadTasks()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = true
			return SaveTasks(tasks)
		}
	}
	return fmt.Errorf("task not found: %s", id)
}

// loadJSON reads and unmarshals a JSON file.
func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// saveJSON atomically writes v as indented JSON using a temp file + rename.
func saveJSON(path string, v interface{}) error {
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
