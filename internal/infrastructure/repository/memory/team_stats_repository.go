package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pucktrack/pucktrack/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[string]teamstats.SeasonStats
}

func NewTeamStatsRepository() *TeamStatsRepository {
	return &TeamStatsRepository{nextID: 1, items: make(map[string]teamstats.SeasonStats)}
}

func teamSeasonKey(teamID int64, season string) string {
	return fmt.Sprintf("%d/%s", teamID, season)
}

func (r *TeamStatsRepository) GetByTeamSeason(_ context.Context, teamID int64, season string) (teamstats.SeasonStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamSeasonKey(teamID, season)]
	if !ok {
		return teamstats.SeasonStats{}, false, nil
	}

	return item, true, nil
}

func (r *TeamStatsRepository) Insert(_ context.Context, item teamstats.SeasonStats) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[teamSeasonKey(item.TeamID, item.Season)] = item

	return item.ID, nil
}

func (r *TeamStatsRepository) Update(_ context.Context, item teamstats.SeasonStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := teamSeasonKey(item.TeamID, item.Season)
	if existing, ok := r.items[key]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		r.items[key] = item
	}

	return nil
}

func (r *TeamStatsRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
