package playerstats

import (
	"fmt"
	"time"
)

// SeasonStats holds one player's counters for one season, unique on
// (PlayerID, Season). Skater and goalie counter groups are both present; a
// row populates whichever group applies to the player's role and leaves the
// other zeroed. Percentage-valued fields come from the remote source verbatim
// and are nil when the source omits them.
type SeasonStats struct {
	ID          int64
	PlayerID    int64
	Season      string
	TeamID      *int64
	GamesPlayed int

	// Skater counters.
	Goals              int
	Assists            int
	Points             int
	PlusMinus          int
	PenaltyMinutes     int
	PowerPlayGoals     int
	PowerPlayPoints    int
	ShortHandedGoals   int
	ShortHandedPoints  int
	GameWinningGoals   int
	OvertimeGoals      int
	Shots              int
	ShootingPct        *float64
	TimeOnIcePerGame   *float64
	FaceoffPct         *float64

	// Goalie counters.
	Wins                int
	Losses              int
	OvertimeLosses      int
	Saves               int
	ShotsAgainst        int
	GoalsAgainst        int
	SavePct             *float64
	GoalsAgainstAverage *float64
	Shutouts            int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s SeasonStats) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("player season stats player id is required")
	}
	if s.Season == "" {
		return fmt.Errorf("player season stats season is required")
	}

	return nil
}
