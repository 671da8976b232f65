package memory

import (
	"context"
	"sync"

	"github.com/pucktrack/pucktrack/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{nextID: 1, items: make(map[int64]player.Player)}
}

func (r *PlayerRepository) GetByNHLID(_ context.Context, nhlID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[nhlID]
	if !ok {
		return player.Player{}, false, nil
	}

	return item, true, nil
}

func (r *PlayerRepository) Insert(_ context.Context, item player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.NHLID] = item

	return item.ID, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.NHLID]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		r.items[item.NHLID] = item
	}

	return nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
