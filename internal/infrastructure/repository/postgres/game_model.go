package postgres

import (
	"database/sql"
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/game"
)

type gameTableModel struct {
	ID         int64         `db:"id"`
	NHLID      int64         `db:"nhl_id"`
	Season     string        `db:"season"`
	GameType   string        `db:"game_type"`
	GameDate   time.Time     `db:"game_date"`
	HomeTeamID sql.NullInt64 `db:"home_team_id"`
	AwayTeamID sql.NullInt64 `db:"away_team_id"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	GameState  string        `db:"game_state"`
	Venue      string        `db:"venue"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:         m.ID,
		NHLID:      m.NHLID,
		Season:     m.Season,
		GameType:   m.GameType,
		GameDate:   m.GameDate,
		HomeTeamID: nullInt64ToPtr(m.HomeTeamID),
		AwayTeamID: nullInt64ToPtr(m.AwayTeamID),
		HomeScore:  nullIntToPtr(m.HomeScore),
		AwayScore:  nullIntToPtr(m.AwayScore),
		GameState:  m.GameState,
		Venue:      m.Venue,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
