package teamstats

import "context"

type Repository interface {
	GetByTeamSeason(ctx context.Context, teamID int64, season string) (SeasonStats, bool, error)
	Insert(ctx context.Context, item SeasonStats) (int64, error)
	Update(ctx context.Context, item SeasonStats) error
	Count(ctx context.Context) (int, error)
}
