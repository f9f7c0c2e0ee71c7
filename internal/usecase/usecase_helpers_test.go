package usecase

import (
	"fmt"
	"math"
	"sync"

	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/repository/memory"
)

type sequenceIDGenerator struct {
	mu   sync.Mutex
	next int
	err  error
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func seededProspectRepo() *memory.ProspectRepository {
	return memory.NewProspectRepository(memory.SeedProspects(), memory.SeedMeasurements())
}

func seededStatsRepo() *memory.StatsRepository {
	return memory.NewStatsRepository(memory.SeedSeasonLogs(), memory.SeedGameLogs())
}

func seededScoutingRepo() *memory.ScoutingRepository {
	return memory.NewScoutingRepository(memory.SeedRankings(), memory.SeedReports())
}
