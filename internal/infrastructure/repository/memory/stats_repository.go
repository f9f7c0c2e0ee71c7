package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
)

type StatsRepository struct {
	mu             sync.RWMutex
	seasonLogs     []stats.SeasonLog
	seasonByPlayer map[int64][]stats.SeasonLog
	gamesByPlayer  map[int64][]stats.GameLog
}

func NewStatsRepository(seasonLogs []stats.SeasonLog, gameLogs []stats.GameLog) *StatsRepository {
	seasonByPlayer := make(map[int64][]stats.SeasonLog)
	for _, l := range seasonLogs {
		seasonByPlayer[l.PlayerID] = append(seasonByPlayer[l.PlayerID], l)
	}
	gamesByPlayer := make(map[int64][]stats.GameLog)
	for _, g := range gameLogs {
		gamesByPlayer[g.PlayerID] = append(gamesByPlayer[g.PlayerID], g)
	}

	return &StatsRepository{
		seasonLogs:     append([]stats.SeasonLog(nil), seasonLogs...),
		seasonByPlayer: seasonByPlayer,
		gamesByPlayer:  gamesByPlayer,
	}
}

func (r *StatsRepository) ListSeasonLogs(_ context.Context) ([]stats.SeasonLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]stats.SeasonLog(nil), r.seasonLogs...), nil
}

func (r *StatsRepository) ListSeasonLogsByPlayer(_ context.Context, playerID int64) ([]stats.SeasonLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]stats.SeasonLog(nil), r.seasonByPlayer[playerID]...), nil
}

func (r *StatsRepository) ListGameLogsByPlayer(_ context.Context, playerID int64) ([]stats.GameLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.gamesByPlayer[playerID]
	out := make([]stats.GameLog, 0, len(items))
	for _, g := range items {
		if g.IsHome != nil {
			v := *g.IsHome
			g.IsHome = &v
		}
		out = append(out, g)
	}

	return out, nil
}
