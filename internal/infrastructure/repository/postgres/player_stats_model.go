package postgres

import (
	"database/sql"
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/playerstats"
)

type playerStatsTableModel struct {
	ID          int64         `db:"id"`
	PlayerID    int64         `db:"player_id"`
	Season      string        `db:"season"`
	TeamID      sql.NullInt64 `db:"team_id"`
	GamesPlayed int           `db:"games_played"`

	Goals             int             `db:"goals"`
	Assists           int             `db:"assists"`
	Points            int             `db:"points"`
	PlusMinus         int             `db:"plus_minus"`
	PenaltyMinutes    int             `db:"penalty_minutes"`
	PowerPlayGoals    int             `db:"power_play_goals"`
	PowerPlayPoints   int             `db:"power_play_points"`
	ShortHandedGoals  int             `db:"short_handed_goals"`
	ShortHandedPoints int             `db:"short_handed_points"`
	GameWinningGoals  int             `db:"game_winning_goals"`
	OvertimeGoals     int             `db:"overtime_goals"`
	Shots             int             `db:"shots"`
	ShootingPct       sql.NullFloat64 `db:"shooting_percentage"`
	TimeOnIcePerGame  sql.NullFloat64 `db:"time_on_ice_per_game"`
	FaceoffPct        sql.NullFloat64 `db:"faceoff_percentage"`

	Wins                int             `db:"wins"`
	Losses              int             `db:"losses"`
	OvertimeLosses      int             `db:"overtime_losses"`
	Saves               int             `db:"saves"`
	ShotsAgainst        int             `db:"shots_against"`
	GoalsAgainst        int             `db:"goals_against"`
	SavePct             sql.NullFloat64 `db:"save_percentage"`
	GoalsAgainstAverage sql.NullFloat64 `db:"goals_against_average"`
	Shutouts            int             `db:"shutouts"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m playerStatsTableModel) toDomain() playerstats.SeasonStats {
	return playerstats.SeasonStats{
		ID:          m.ID,
		PlayerID:    m.PlayerID,
		Season:      m.Season,
		TeamID:      nullInt64ToPtr(m.TeamID),
		GamesPlayed: m.GamesPlayed,

		Goals:             m.Goals,
		Assists:           m.Assists,
		Points:            m.Points,
		PlusMinus:         m.PlusMinus,
		PenaltyMinutes:    m.PenaltyMinutes,
		PowerPlayGoals:    m.PowerPlayGoals,
		PowerPlayPoints:   m.PowerPlayPoints,
		ShortHandedGoals:  m.ShortHandedGoals,
		ShortHandedPoints: m.ShortHandedPoints,
		GameWinningGoals:  m.GameWinningGoals,
		OvertimeGoals:     m.OvertimeGoals,
		Shots:             m.Shots,
		ShootingPct:       nullFloatToPtr(m.ShootingPct),
		TimeOnIcePerGame:  nullFloatToPtr(m.TimeOnIcePerGame),
		FaceoffPct:        nullFloatToPtr(m.FaceoffPct),

		Wins:                m.Wins,
		Losses:              m.Losses,
		OvertimeLosses:      m.OvertimeLosses,
		Saves:               m.Saves,
		ShotsAgainst:        m.ShotsAgainst,
		GoalsAgainst:        m.GoalsAgainst,
		SavePct:             nullFloatToPtr(m.SavePct),
		GoalsAgainstAverage: nullFloatToPtr(m.GoalsAgainstAverage),
		Shutouts:            m.Shutouts,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
