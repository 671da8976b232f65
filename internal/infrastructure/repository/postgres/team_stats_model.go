package postgres

import (
	"database/sql"
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/teamstats"
)

type teamStatsTableModel struct {
	ID                  int64           `db:"id"`
	TeamID              int64           `db:"team_id"`
	Season              string          `db:"season"`
	GamesPlayed         int             `db:"games_played"`
	Wins                int             `db:"wins"`
	Losses              int             `db:"losses"`
	OvertimeLosses      int             `db:"overtime_losses"`
	Points              int             `db:"points"`
	PointPct            sql.NullFloat64 `db:"point_percentage"`
	GoalsFor            int             `db:"goals_for"`
	GoalsAgainst        int             `db:"goals_against"`
	GoalDifferential    int             `db:"goal_differential"`
	ShotsForPerGame     sql.NullFloat64 `db:"shots_for_per_game"`
	ShotsAgainstPerGame sql.NullFloat64 `db:"shots_against_per_game"`
	PowerPlayPct        sql.NullFloat64 `db:"power_play_percentage"`
	PenaltyKillPct      sql.NullFloat64 `db:"penalty_kill_percentage"`
	FaceoffWinPct       sql.NullFloat64 `db:"faceoff_win_percentage"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (m teamStatsTableModel) toDomain() teamstats.SeasonStats {
	return teamstats.SeasonStats{
		ID:                  m.ID,
		TeamID:              m.TeamID,
		Season:              m.Season,
		GamesPlayed:         m.GamesPlayed,
		Wins:                m.Wins,
		Losses:              m.Losses,
		OvertimeLosses:      m.OvertimeLosses,
		Points:              m.Points,
		PointPct:            nullFloatToPtr(m.PointPct),
		GoalsFor:            m.GoalsFor,
		GoalsAgainst:        m.GoalsAgainst,
		GoalDifferential:    m.GoalDifferential,
		ShotsForPerGame:     nullFloatToPtr(m.ShotsForPerGame),
		ShotsAgainstPerGame: nullFloatToPtr(m.ShotsAgainstPerGame),
		PowerPlayPct:        nullFloatToPtr(m.PowerPlayPct),
		PenaltyKillPct:      nullFloatToPtr(m.PenaltyKillPct),
		FaceoffWinPct:       nullFloatToPtr(m.FaceoffWinPct),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
