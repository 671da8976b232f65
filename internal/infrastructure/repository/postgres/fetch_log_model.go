package postgres

import (
	"database/sql"
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/fetchlog"
)

type fetchLogTableModel struct {
	ID              int64           `db:"id"`
	FetchType       string          `db:"fetch_type"`
	FetchDate       time.Time       `db:"fetch_date"`
	Status          string          `db:"status"`
	RecordsFetched  int             `db:"records_fetched"`
	ErrorMessage    sql.NullString  `db:"error_message"`
	DurationSeconds sql.NullFloat64 `db:"duration_seconds"`
}

func (m fetchLogTableModel) toDomain() fetchlog.Entry {
	entry := fetchlog.Entry{
		ID:             m.ID,
		FetchType:      m.FetchType,
		FetchDate:      m.FetchDate,
		Status:         m.Status,
		RecordsFetched: m.RecordsFetched,
	}
	if m.ErrorMessage.Valid {
		entry.ErrorMessage = m.ErrorMessage.String
	}
	if m.DurationSeconds.Valid {
		entry.DurationSeconds = m.DurationSeconds.Float64
	}

	return entry
}
