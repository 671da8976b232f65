package postgres

import (
	"database/sql"
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/player"
)

type playerTableModel struct {
	ID            int64           `db:"id"`
	NHLID         int64           `db:"nhl_id"`
	FirstName     string          `db:"first_name"`
	LastName      string          `db:"last_name"`
	JerseyNumber  sql.NullInt64   `db:"jersey_number"`
	Position      string          `db:"position"`
	ShootsCatches string          `db:"shoots_catches"`
	HeightInches  sql.NullInt64   `db:"height_inches"`
	WeightPounds  sql.NullInt64   `db:"weight_pounds"`
	BirthDate     sql.NullTime    `db:"birth_date"`
	BirthCity     string          `db:"birth_city"`
	BirthCountry  string          `db:"birth_country"`
	Nationality   string          `db:"nationality"`
	TeamID        sql.NullInt64   `db:"team_id"`
	Active        bool            `db:"active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.ID,
		NHLID:         m.NHLID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		JerseyNumber:  nullIntToPtr(m.JerseyNumber),
		Position:      m.Position,
		ShootsCatches: m.ShootsCatches,
		HeightInches:  nullIntToPtr(m.HeightInches),
		WeightPounds:  nullIntToPtr(m.WeightPounds),
		BirthDate:     nullTimeToPtr(m.BirthDate),
		BirthCity:     m.BirthCity,
		BirthCountry:  m.BirthCountry,
		Nationality:   m.Nationality,
		TeamID:        nullInt64ToPtr(m.TeamID),
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
