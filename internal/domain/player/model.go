package player

import (
	"fmt"
	"time"
)

// Player is an NHL player. TeamID points at the player's current team and is
// nil when the player has no team or the team is not yet known locally.
type Player struct {
	ID            int64
	NHLID         int64
	FirstName     string
	LastName      string
	JerseyNumber  *int
	Position      string
	ShootsCatches string
	HeightInches  *int
	WeightPounds  *int
	BirthDate     *time.Time
	BirthCity     string
	BirthCountry  string
	Nationality   string
	TeamID        *int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Player) Validate() error {
	if p.NHLID <= 0 {
		return fmt.Errorf("player nhl id is required")
	}
	if p.FirstName == "" && p.LastName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
