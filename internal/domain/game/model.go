package game

import (
	"fmt"
	"time"
)

// Game states as reported by the league API.
const (
	StateScheduled = "SCHEDULED"
	StateLive      = "LIVE"
	StateFinal     = "FINAL"
)

// Stored game type labels.
const (
	TypePreseason = "PR"
	TypeRegular   = "R"
	TypePlayoff   = "P"
)

// TypeFromID maps the numeric gameType id from the league API onto the
// stored label. Unknown ids are stored as their decimal form.
func TypeFromID(id int) string {
	switch id {
	case 1:
		return TypePreseason
	case 2:
		return TypeRegular
	case 3:
		return TypePlayoff
	default:
		return fmt.Sprintf("%d", id)
	}
}

// Game is a single scheduled or played NHL game. Team references are nil when
// the corresponding team is not yet known locally.
type Game struct {
	ID         int64
	NHLID      int64
	Season     string
	GameType   string
	GameDate   time.Time
	HomeTeamID *int64
	AwayTeamID *int64
	HomeScore  *int
	AwayScore  *int
	GameState  string
	Venue      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (g Game) Validate() error {
	if g.NHLID <= 0 {
		return fmt.Errorf("game nhl id is required")
	}
	if g.Season == "" {
		return fmt.Errorf("game season is required")
	}
	if g.GameDate.IsZero() {
		return fmt.Errorf("game date is required")
	}

	return nil
}

// NormalizeState maps raw provider state strings onto the known set.
func NormalizeState(raw string) string {
	switch raw {
	case "FUT", "PRE", StateScheduled:
		return StateScheduled
	case "LIVE", "CRIT":
		return StateLive
	case "FINAL", "OFF", "OVER":
		return StateFinal
	default:
		return StateScheduled
	}
}
