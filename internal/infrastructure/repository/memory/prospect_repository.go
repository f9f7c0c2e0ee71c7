package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
)

type ProspectRepository struct {
	mu           sync.RWMutex
	prospects    []prospect.Prospect
	index        map[int64]prospect.Prospect
	measurements map[int64]prospect.Measurement
}

func NewProspectRepository(prospects []prospect.Prospect, measurements []prospect.Measurement) *ProspectRepository {
	index := make(map[int64]prospect.Prospect, len(prospects))
	for _, p := range prospects {
		index[p.PlayerID] = p
	}
	byPlayer := make(map[int64]prospect.Measurement, len(measurements))
	for _, m := range measurements {
		byPlayer[m.PlayerID] = m
	}

	return &ProspectRepository{
		prospects:    append([]prospect.Prospect(nil), prospects...),
		index:        index,
		measurements: byPlayer,
	}
}

func (r *ProspectRepository) List(_ context.Context) ([]prospect.Prospect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prospect.Prospect, 0, len(r.prospects))
	out = append(out, r.prospects...)

	return out, nil
}

func (r *ProspectRepository) GetByID(_ context.Context, playerID int64) (prospect.Prospect, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[playerID]
	return item, ok, nil
}

func (r *ProspectRepository) GetMeasurement(_ context.Context, playerID int64) (prospect.Measurement, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.measurements[playerID]
	return item, ok, nil
}
