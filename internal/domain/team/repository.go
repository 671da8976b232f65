package team

import "context"

// Repository describes team persistence needs from use cases. Insert and
// Update operate on a single row inside their own transaction.
type Repository interface {
	GetByNHLID(ctx context.Context, nhlID int64) (Team, bool, error)
	GetByAbbreviation(ctx context.Context, abbrev string) (Team, bool, error)
	ListActive(ctx context.Context) ([]Team, error)
	Insert(ctx context.Context, item Team) (int64, error)
	Update(ctx context.Context, item Team) error
	Count(ctx context.Context) (int, error)
}
