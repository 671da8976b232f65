package postgres

import (
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/team"
)

type teamTableModel struct {
	ID           int64     `db:"id"`
	NHLID        int64     `db:"nhl_id"`
	Name         string    `db:"name"`
	Abbreviation string    `db:"abbreviation"`
	City         string    `db:"city"`
	Conference   string    `db:"conference"`
	Division     string    `db:"division"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:           m.ID,
		NHLID:        m.NHLID,
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		City:         m.City,
		Conference:   m.Conference,
		Division:     m.Division,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
