package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pwnd-u/life-planner/internal/planner"
)

// SaveSchedule wholesale-replaces the stored block set for the week starting
// at weekStart. The scheduler is idempotent per run, not incremental, so
// there is never a partial merge.
func SaveSchedule(weekStart string, blocks []planner.ScheduledBlock) error {
	weekPath := filepath.Join(plannerDir, weeksDir, weekStart)
	if err := os.MkdirAll(weekPath, 0755); err != nil {
		return fmt.Errorf("failed to create week folder: %w", err)
	}
	return saveJSON(filepath.Join(weekPath, scheduleFile), blocks)
}

// LoadSchedule reads the stored block set for a week. A missing file means no
// schedule has been generated yet.
func LoadSchedule(weekStart string) ([]planner.ScheduledBlock, error) {
	var blocks []planner.ScheduledBlock
	path := filepath.Join(plannerDir, weeksDir, weekStart, scheduleFile)
	if err := loadJSON(path, &blocks); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return blocks, nil
}

// StartBlock transitions a pending block to in_progress.
func StartBlock(weekStart, blockID string) error {
	return transitionBlock(weekStart, blockID, planner.BlockStatusInProgress, "")
}

// CompleteBlock transitions a pending or in-progress block to completed.
// Completed blocks stop consuming planned capacity.
func CompleteBlock(weekStart, blockID string) error {
	return transitionBlock(weekStart, blockID, planner.BlockStatusCompleted, "")
}

// SkipBlock transitions a pending or in-progress block to skipped with an
// optional reason.
func SkipBlock(weekStart, blockID, reason string) error {
	return transitionBlock(weekStart, blockID, planner.BlockStatusSkipped, reason)
}

func transitionBlock(weekStart, blockID, next, reason string) error {
	blocks, err := LoadSchedule(weekStart)
	if err != nil {
		return err
	}

	for i := range blocks {
		if blocks[i].ID != blockID {
			continue
		}
		if err := checkTransition(blocks[i].Status, next); err != nil {
			return fmt.Errorf("block %s: %w", blockID, err)
		}
		blocks[i].Status = next
		blocks[i].SkipReason = reason
		return SaveSchedule(weekStart, blocks)
	}
	return fmt.Errorf("block not found: %s", blockID)
}

// checkTransition enforces the block lifecycle: pending → in_progress, and
// pending or in_progress → completed or skipped. Completed and skipped are
// terminal.
func checkTransition(current, next string) error {
	switch next {
	case planner.BlockStatusInProgress:
		if current != planner.BlockStatusPending {
			return fmt.Errorf("cannot start a %s block", current)
		}
	case planner.BlockStatusCompleted, planner.BlockStatusSkipped:
		if current != planner.BlockStatusPending && current != planner.BlockStatusInProgress {
			return fmt.Errorf("cannot move a %s block to %s", current, next)
		}
	default:
		return fmt.Errorf("unknown status: %s", next)
	}
	return nil
}
