package memory

import (
	"context"
	"sync"

	"github.com/pucktrack/pucktrack/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]game.Game
}

func NewGameRepository() *GameRepository {
	return &GameRepository{nextID: 1, items: make(map[int64]game.Game)}
}

func (r *GameRepository) GetByNHLID(_ context.Context, nhlID int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[nhlID]
	if !ok {
		return game.Game{}, false, nil
	}

	return item, true, nil
}

func (r *GameRepository) Insert(_ context.Context, item game.Game) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.NHLID] = item

	return item.ID, nil
}

func (r *GameRepository) Update(_ context.Context, item game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.NHLID]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		r.items[item.NHLID] = item
	}

	return nil
}

func (r *GameRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
