package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/internal/domain/game"
	qb "github.com/pucktrack/pucktrack/internal/platform/querybuilder"
)

const gameColumns = "id, nhl_id, season, game_type, game_date, home_team_id, away_team_id, " +
	"home_score, away_score, game_state, venue, created_at, updated_at"

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByNHLID(ctx context.Context, nhlID int64) (game.Game, bool, error) {
	query, args, err := qb.Select(gameColumns).From("games").
		Where(qb.Eq("nhl_id", nhlID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game by nhl id query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("select game by nhl id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) Insert(ctx context.Context, item game.Game) (int64, error) {
	query, args, err := qb.InsertInto("games").
		Set("nhl_id", item.NHLID).
		Set("season", item.Season).
		Set("game_type", item.GameType).
		Set("game_date", item.GameDate).
		Set("home_team_id", ptrToNullInt64(item.HomeTeamID)).
		Set("away_team_id", ptrToNullInt64(item.AwayTeamID)).
		Set("home_score", ptrToNullInt(item.HomeScore)).
		Set("away_score", ptrToNullInt(item.AwayScore)).
		Set("game_state", item.GameState).
		Set("venue", item.Venue).
		Set("created_at", item.CreatedAt).
		Set("updated_at", item.UpdatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert game query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert game nhl_id=%d: %w", item.NHLID, err)
	}

	return id, nil
}

func (r *GameRepository) Update(ctx context.Context, item game.Game) error {
	query, args, err := qb.Update("games").
		Set("season", item.Season).
		Set("game_type", item.GameType).
		Set("game_date", item.GameDate).
		Set("home_team_id", ptrToNullInt64(item.HomeTeamID)).
		Set("away_team_id", ptrToNullInt64(item.AwayTeamID)).
		Set("home_score", ptrToNullInt(item.HomeScore)).
		Set("away_score", ptrToNullInt(item.AwayScore)).
		Set("game_state", item.GameState).
		Set("venue", item.Venue).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("nhl_id", item.NHLID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update game nhl_id=%d: %w", item.NHLID, err)
	}

	return nil
}

func (r *GameRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM games"); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}

	return count, nil
}
