package cli

import (
	"time"

	"github.com/pwnd-u/life-planner/internal/planner"
)

func today() string {
	return time.Now().Format(planner.DateLayout)
}
