package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/internal/domain/teamstats"
	qb "github.com/pucktrack/pucktrack/internal/platform/querybuilder"
)

const teamStatsColumns = "id, team_id, season, games_played, wins, losses, overtime_losses, points, " +
	"point_percentage, goals_for, goals_against, goal_differential, shots_for_per_game, " +
	"shots_against_per_game, power_play_percentage, penalty_kill_percentage, faceoff_win_percentage, " +
	"created_at, updated_at"

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetByTeamSeason(ctx context.Context, teamID int64, season string) (teamstats.SeasonStats, bool, error) {
	query, args, err := qb.Select(teamStatsColumns).From("team_stats").
		Where(qb.Eq("team_id", teamID), qb.Eq("season", season)).
		ToSQL()
	if err != nil {
		return teamstats.SeasonStats{}, false, fmt.Errorf("build select team stats query: %w", err)
	}

	var row teamStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.SeasonStats{}, false, nil
		}
		return teamstats.SeasonStats{}, false, fmt.Errorf("select team stats team_id=%d season=%s: %w", teamID, season, err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamStatsRepository) Insert(ctx context.Context, item teamstats.SeasonStats) (int64, error) {
	query, args, err := qb.InsertInto("team_stats").
		Set("team_id", item.TeamID).
		Set("season", item.Season).
		Set("games_played", item.GamesPlayed).
		Set("wins", item.Wins).
		Set("losses", item.Losses).
		Set("overtime_losses", item.OvertimeLosses).
		Set("points", item.Points).
		Set("point_percentage", ptrToNullFloat(item.PointPct)).
		Set("goals_for", item.GoalsFor).
		Set("goals_against", item.GoalsAgainst).
		Set("goal_differential", item.GoalDifferential).
		Set("shots_for_per_game", ptrToNullFloat(item.ShotsForPerGame)).
		Set("shots_against_per_game", ptrToNullFloat(item.ShotsAgainstPerGame)).
		Set("power_play_percentage", ptrToNullFloat(item.PowerPlayPct)).
		Set("penalty_kill_percentage", ptrToNullFloat(item.PenaltyKillPct)).
		Set("faceoff_win_percentage", ptrToNullFloat(item.FaceoffWinPct)).
		Set("created_at", item.CreatedAt).
		Set("updated_at", item.UpdatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert team stats query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert team stats team_id=%d season=%s: %w", item.TeamID, item.Season, err)
	}

	return id, nil
}

func (r *TeamStatsRepository) Update(ctx context.Context, item teamstats.SeasonStats) error {
	query, args, err := qb.Update("team_stats").
		Set("games_played", item.GamesPlayed).
		Set("wins", item.Wins).
		Set("losses", item.Losses).
		Set("overtime_losses", item.OvertimeLosses).
		Set("points", item.Points).
		Set("point_percentage", ptrToNullFloat(item.PointPct)).
		Set("goals_for", item.GoalsFor).
		Set("goals_against", item.GoalsAgainst).
		Set("goal_differential", item.GoalDifferential).
		Set("shots_for_per_game", ptrToNullFloat(item.ShotsForPerGame)).
		Set("shots_against_per_game", ptrToNullFloat(item.ShotsAgainstPerGame)).
		Set("power_play_percentage", ptrToNullFloat(item.PowerPlayPct)).
		Set("penalty_kill_percentage", ptrToNullFloat(item.PenaltyKillPct)).
		Set("faceoff_win_percentage", ptrToNullFloat(item.FaceoffWinPct)).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("team_id", item.TeamID), qb.Eq("season", item.Season)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team stats query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team stats team_id=%d season=%s: %w", item.TeamID, item.Season, err)
	}

	return nil
}

func (r *TeamStatsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM team_stats"); err != nil {
		return 0, fmt.Errorf("count team stats: %w", err)
	}

	return count, nil
}
