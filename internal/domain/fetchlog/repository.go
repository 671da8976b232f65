package fetchlog

import "context"

// Repository is append-only: entries are never mutated after Append.
type Repository interface {
	Append(ctx context.Context, entry Entry) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}
