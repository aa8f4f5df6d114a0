package planner

// Goal represents a user-declared objective the weekly scheduler allocates
// sessions toward. Goals are deactivated rather than deleted so that history
// referencing them stays valid.
type Goal struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	WeeklyQuotaHours    float64 `json:"weeklyQuotaHours,omitempty"`
	WeeklyQuotaSessions int     `json:"weeklyQuotaSessions,omitempty"`
	DailyRepeat         int     `json:"dailyRepeat,omitempty"`
	Tier                int     `json:"tier"`
	Active              bool    `json:"active"`
}

// Goal priority tiers. Tier 1 is allocated first.
const (
	TierHighest = 1
	TierLowest  = 3
)
