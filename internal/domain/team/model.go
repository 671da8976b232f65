package team

import (
	"fmt"
	"time"
)

// Team is an NHL franchise. NHLID is the immutable identifier assigned by the
// league API and is the reconciliation key; Abbreviation is the human-facing
// lookup key used by CLI commands.
type Team struct {
	ID           int64
	NHLID        int64
	Name         string
	Abbreviation string
	City         string
	Conference   string
	Division     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t Team) Validate() error {
	if t.NHLID <= 0 {
		return fmt.Errorf("team nhl id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}
