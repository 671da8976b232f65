package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pucktrack/pucktrack/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[string]playerstats.SeasonStats
}

func NewPlayerStatsRepository() *PlayerStatsRepository {
	return &PlayerStatsRepository{nextID: 1, items: make(map[string]playerstats.SeasonStats)}
}

func playerSeasonKey(playerID int64, season string) string {
	return fmt.Sprintf("%d/%s", playerID, season)
}

func (r *PlayerStatsRepository) GetByPlayerSeason(_ context.Context, playerID int64, season string) (playerstats.SeasonStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[playerSeasonKey(playerID, season)]
	if !ok {
		return playerstats.SeasonStats{}, false, nil
	}

	return item, true, nil
}

func (r *PlayerStatsRepository) Insert(_ context.Context, item playerstats.SeasonStats) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[playerSeasonKey(item.PlayerID, item.Season)] = item

	return item.ID, nil
}

func (r *PlayerStatsRepository) Update(_ context.Context, item playerstats.SeasonStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := playerSeasonKey(item.PlayerID, item.Season)
	if existing, ok := r.items[key]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		r.items[key] = item
	}

	return nil
}

func (r *PlayerStatsRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
