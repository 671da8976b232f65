package memory

import (
	"context"
	"sync"

	"github.com/pucktrack/pucktrack/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]team.Team
	orders []int64
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{nextID: 1, items: make(map[int64]team.Team)}
}

func (r *TeamRepository) GetByNHLID(_ context.Context, nhlID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[nhlID]
	if !ok {
		return team.Team{}, false, nil
	}

	return item, true, nil
}

func (r *TeamRepository) GetByAbbreviation(_ context.Context, abbrev string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, nhlID := range r.orders {
		if r.items[nhlID].Abbreviation == abbrev {
			return r.items[nhlID], true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) ListActive(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, nhlID := range r.orders {
		if r.items[nhlID].Active {
			out = append(out, r.items[nhlID])
		}
	}

	return out, nil
}

func (r *TeamRepository) Insert(_ context.Context, item team.Team) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.NHLID] = item
	r.orders = append(r.orders, item.NHLID)

	return item.ID, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.NHLID]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		r.items[item.NHLID] = item
	}

	return nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
