package memory

import (
	"context"
	"sync"

	"KingdomsMap/internal/world/entity"
)

type StatsRepo struct {
	mu   sync.Mutex
	rows map[entity.KingdomID][]entity.KingdomStat
}

func NewStatsRepo() *StatsRepo {
	return &StatsRepo{rows: make(map[entity.KingdomID][]entity.KingdomStat)}
}

func (r *StatsRepo) SaveStats(_ context.Context, stats []entity.KingdomStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range stats {
		r.rows[s.ID] = append(r.rows[s.ID], s)
	}
	return nil
}

func (r *StatsRepo) History(_ context.Context, kid entity.KingdomID, limit int) ([]entity.KingdomStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.rows[kid]
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	out := make([]entity.KingdomStat, len(rows))
	copy(out, rows)
	return out, nil
}
