package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/internal/domain/playerstats"
	qb "github.com/pucktrack/pucktrack/internal/platform/querybuilder"
)

const playerStatsColumns = "id, player_id, season, team_id, games_played, goals, assists, points, " +
	"plus_minus, penalty_minutes, power_play_goals, power_play_points, short_handed_goals, " +
	"short_handed_points, game_winning_goals, overtime_goals, shots, shooting_percentage, " +
	"time_on_ice_per_game, faceoff_percentage, wins, losses, overtime_losses, saves, shots_against, " +
	"goals_against, save_percentage, goals_against_average, shutouts, created_at, updated_at"

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) GetByPlayerSeason(ctx context.Context, playerID int64, season string) (playerstats.SeasonStats, bool, error) {
	query, args, err := qb.Select(playerStatsColumns).From("player_stats").
		Where(qb.Eq("player_id", playerID), qb.Eq("season", season)).
		ToSQL()
	if err != nil {
		return playerstats.SeasonStats{}, false, fmt.Errorf("build select player stats query: %w", err)
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.SeasonStats{}, false, nil
		}
		return playerstats.SeasonStats{}, false, fmt.Errorf("select player stats player_id=%d season=%s: %w", playerID, season, err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerStatsRepository) Insert(ctx context.Context, item playerstats.SeasonStats) (int64, error) {
	query, args, err := qb.InsertInto("player_stats").
		Set("player_id", item.PlayerID).
		Set("season", item.Season).
		Set("team_id", ptrToNullInt64(item.TeamID)).
		Set("games_played", item.GamesPlayed).
		Set("goals", item.Goals).
		Set("assists", item.Assists).
		Set("points", item.Points).
		Set("plus_minus", item.PlusMinus).
		Set("penalty_minutes", item.PenaltyMinutes).
		Set("power_play_goals", item.PowerPlayGoals).
		Set("power_play_points", item.PowerPlayPoints).
		Set("short_handed_goals", item.ShortHandedGoals).
		Set("short_handed_points", item.ShortHandedPoints).
		Set("game_winning_goals", item.GameWinningGoals).
		Set("overtime_goals", item.OvertimeGoals).
		Set("shots", item.Shots).
		Set("shooting_percentage", ptrToNullFloat(item.ShootingPct)).
		Set("time_on_ice_per_game", ptrToNullFloat(item.TimeOnIcePerGame)).
		Set("faceoff_percentage", ptrToNullFloat(item.FaceoffPct)).
		Set("wins", item.Wins).
		Set("losses", item.Losses).
		Set("overtime_losses", item.OvertimeLosses).
		Set("saves", item.Saves).
		Set("shots_against", item.ShotsAgainst).
		Set("goals_against", item.GoalsAgainst).
		Set("save_percentage", ptrToNullFloat(item.SavePct)).
		Set("goals_against_average", ptrToNullFloat(item.GoalsAgainstAverage)).
		Set("shutouts", item.Shutouts).
		Set("created_at", item.CreatedAt).
		Set("updated_at", item.UpdatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert player stats query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert player stats player_id=%d season=%s: %w", item.PlayerID, item.Season, err)
	}

	return id, nil
}

func (r *PlayerStatsRepository) Update(ctx context.Context, item playerstats.SeasonStats) error {
	query, args, err := qb.Update("player_stats").
		Set("team_id", ptrToNullInt64(item.TeamID)).
		Set("games_played", item.GamesPlayed).
		Set("goals", item.Goals).
		Set("assists", item.Assists).
		Set("points", item.Points).
		Set("plus_minus", item.PlusMinus).
		Set("penalty_minutes", item.PenaltyMinutes).
		Set("power_play_goals", item.PowerPlayGoals).
		Set("power_play_points", item.PowerPlayPoints).
		Set("short_handed_goals", item.ShortHandedGoals).
		Set("short_handed_points", item.ShortHandedPoints).
		Set("game_winning_goals", item.GameWinningGoals).
		Set("overtime_goals", item.OvertimeGoals).
		Set("shots", item.Shots).
		Set("shooting_percentage", ptrToNullFloat(item.ShootingPct)).
		Set("time_on_ice_per_game", ptrToNullFloat(item.TimeOnIcePerGame)).
		Set("faceoff_percentage", ptrToNullFloat(item.FaceoffPct)).
		Set("wins", item.Wins).
		Set("losses", item.Losses).
		Set("overtime_losses", item.OvertimeLosses).
		Set("saves", item.Saves).
		Set("shots_against", item.ShotsAgainst).
		Set("goals_against", item.GoalsAgainst).
		Set("save_percentage", ptrToNullFloat(item.SavePct)).
		Set("goals_against_average", ptrToNullFloat(item.GoalsAgainstAverage)).
		Set("shutouts", item.Shutouts).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("player_id", item.PlayerID), qb.Eq("season", item.Season)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player stats query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player stats player_id=%d season=%s: %w", item.PlayerID, item.Season, err)
	}

	return nil
}

func (r *PlayerStatsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM player_stats"); err != nil {
		return 0, fmt.Errorf("count player stats: %w", err)
	}

	return count, nil
}
