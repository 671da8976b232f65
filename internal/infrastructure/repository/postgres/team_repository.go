package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/internal/domain/team"
	qb "github.com/pucktrack/pucktrack/internal/platform/querybuilder"
)

const teamColumns = "id, nhl_id, name, abbreviation, city, conference, division, active, created_at, updated_at"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByNHLID(ctx context.Context, nhlID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(qb.Eq("nhl_id", nhlID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by nhl id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by nhl id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByAbbreviation(ctx context.Context, abbrev string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(qb.Eq("abbreviation", abbrev)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by abbreviation query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by abbreviation: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListActive(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(qb.Eq("active", true)).
		OrderBy("abbreviation").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) (int64, error) {
	query, args, err := qb.InsertInto("teams").
		Set("nhl_id", item.NHLID).
		Set("name", item.Name).
		Set("abbreviation", item.Abbreviation).
		Set("city", item.City).
		Set("conference", item.Conference).
		Set("division", item.Division).
		Set("active", item.Active).
		Set("created_at", item.CreatedAt).
		Set("updated_at", item.UpdatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert team query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert team nhl_id=%d: %w", item.NHLID, err)
	}

	return id, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("abbreviation", item.Abbreviation).
		Set("city", item.City).
		Set("conference", item.Conference).
		Set("division", item.Division).
		Set("active", item.Active).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("nhl_id", item.NHLID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team nhl_id=%d: %w", item.NHLID, err)
	}

	return nil
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM teams"); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}

	return count, nil
}
