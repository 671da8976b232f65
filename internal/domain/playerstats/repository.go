package playerstats

import "context"

type Repository interface {
	GetByPlayerSeason(ctx context.Context, playerID int64, season string) (SeasonStats, bool, error)
	Insert(ctx context.Context, item SeasonStats) (int64, error)
	Update(ctx context.Context, item SeasonStats) error
	Count(ctx context.Context) (int, error)
}
