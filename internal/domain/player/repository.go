package player

import "context"

type Repository interface {
	GetByNHLID(ctx context.Context, nhlID int64) (Player, bool, error)
	Insert(ctx context.Context, item Player) (int64, error)
	Update(ctx context.Context, item Player) error
	Count(ctx context.Context) (int, error)
}
