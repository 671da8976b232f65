package game

import "context"

type Repository interface {
	GetByNHLID(ctx context.Context, nhlID int64) (Game, bool, error)
	Insert(ctx context.Context, item Game) (int64, error)
	Update(ctx context.Context, item Game) error
	Count(ctx context.Context) (int, error)
}
