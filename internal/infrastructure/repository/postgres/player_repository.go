package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/internal/domain/player"
	qb "github.com/pucktrack/pucktrack/internal/platform/querybuilder"
)

const playerColumns = "id, nhl_id, first_name, last_name, jersey_number, position, shoots_catches, " +
	"height_inches, weight_pounds, birth_date, birth_city, birth_country, nationality, team_id, " +
	"active, created_at, updated_at"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByNHLID(ctx context.Context, nhlID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns).From("players").
		Where(qb.Eq("nhl_id", nhlID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by nhl id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by nhl id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) (int64, error) {
	query, args, err := qb.InsertInto("players").
		Set("nhl_id", item.NHLID).
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("jersey_number", ptrToNullInt(item.JerseyNumber)).
		Set("position", item.Position).
		Set("shoots_catches", item.ShootsCatches).
		Set("height_inches", ptrToNullInt(item.HeightInches)).
		Set("weight_pounds", ptrToNullInt(item.WeightPounds)).
		Set("birth_date", ptrToNullTime(item.BirthDate)).
		Set("birth_city", item.BirthCity).
		Set("birth_country", item.BirthCountry).
		Set("nationality", item.Nationality).
		Set("team_id", ptrToNullInt64(item.TeamID)).
		Set("active", item.Active).
		Set("created_at", item.CreatedAt).
		Set("updated_at", item.UpdatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert player nhl_id=%d: %w", item.NHLID, err)
	}

	return id, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("jersey_number", ptrToNullInt(item.JerseyNumber)).
		Set("position", item.Position).
		Set("shoots_catches", item.ShootsCatches).
		Set("height_inches", ptrToNullInt(item.HeightInches)).
		Set("weight_pounds", ptrToNullInt(item.WeightPounds)).
		Set("birth_date", ptrToNullTime(item.BirthDate)).
		Set("birth_city", item.BirthCity).
		Set("birth_country", item.BirthCountry).
		Set("nationality", item.Nationality).
		Set("team_id", ptrToNullInt64(item.TeamID)).
		Set("active", item.Active).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("nhl_id", item.NHLID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player nhl_id=%d: %w", item.NHLID, err)
	}

	return nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM players"); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return count, nil
}
