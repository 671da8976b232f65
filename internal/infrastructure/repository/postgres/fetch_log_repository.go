package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/internal/domain/fetchlog"
	qb "github.com/pucktrack/pucktrack/internal/platform/querybuilder"
)

const fetchLogColumns = "id, fetch_type, fetch_date, status, records_fetched, error_message, duration_seconds"

// FetchLogRepository is append-only: entries are inserted and listed, never
// updated or deleted.
type FetchLogRepository struct {
	db *sqlx.DB
}

func NewFetchLogRepository(db *sqlx.DB) *FetchLogRepository {
	return &FetchLogRepository{db: db}
}

func (r *FetchLogRepository) Append(ctx context.Context, entry fetchlog.Entry) (int64, error) {
	errorMessage := sql.NullString{}
	if entry.ErrorMessage != "" {
		errorMessage = sql.NullString{String: entry.ErrorMessage, Valid: true}
	}

	query, args, err := qb.InsertInto("fetch_log").
		Set("fetch_type", entry.FetchType).
		Set("fetch_date", entry.FetchDate).
		Set("status", entry.Status).
		Set("records_fetched", entry.RecordsFetched).
		Set("error_message", errorMessage).
		Set("duration_seconds", entry.DurationSeconds).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert fetch log query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("append fetch log type=%s: %w", entry.FetchType, err)
	}

	return id, nil
}

func (r *FetchLogRepository) ListRecent(ctx context.Context, limit int) ([]fetchlog.Entry, error) {
	query, args, err := qb.Select(fetchLogColumns).From("fetch_log").
		OrderBy("fetch_date DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fetch log query: %w", err)
	}

	var rows []fetchLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list recent fetch log entries: %w", err)
	}

	entries := make([]fetchlog.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}

	return entries, nil
}
