package teamstats

import (
	"fmt"
	"time"
)

// SeasonStats holds one team's counters for one season, unique on
// (TeamID, Season). Rates (point percentage, special-teams percentages) are
// computed by the remote source, never derived locally, and are nil when the
// source omits them.
type SeasonStats struct {
	ID                int64
	TeamID            int64
	Season            string
	GamesPlayed       int
	Wins              int
	Losses            int
	OvertimeLosses    int
	Points            int
	PointPct          *float64
	GoalsFor          int
	GoalsAgainst      int
	GoalDifferential  int
	ShotsForPerGame   *float64
	ShotsAgainstPerGame *float64
	PowerPlayPct      *float64
	PenaltyKillPct    *float64
	FaceoffWinPct     *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (s SeasonStats) Validate() error {
	if s.TeamID <= 0 {
		return fmt.Errorf("team season stats team id is required")
	}
	if s.Season == "" {
		return fmt.Errorf("team season stats season is required")
	}

	return nil
}
