package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/logging"
)

type WarmupResult struct {
	Seasons int
	Warmed  int
	Skipped int
	Failed  int
}

// WarmupService precomputes draft-class averages for every season present in
// the dataset so the first request per season hits the cache.
type WarmupService struct {
	statsRepo    stats.Repository
	statsService *StatsService
	workers      int
	logger       *logging.Logger
}

func NewWarmupService(statsRepo stats.Repository, statsService *StatsService, workers int, logger *logging.Logger) *WarmupService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		statsRepo:    statsRepo,
		statsService: statsService,
		workers:      workers,
		logger:       logger,
	}
}

// Run warms every season. Seasons without NCAA rows are skipped; per-season
// failures are logged and counted but do not stop the run.
func (s *WarmupService) Run(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	logs, err := s.statsRepo.ListSeasonLogs(ctx)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("list season logs: %w", err)
	}
	seasons := stats.Seasons(logs)
	result := WarmupResult{Seasons: len(seasons)}
	if len(seasons) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(seasons)))
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var warmed, skipped, failed atomic.Int32
	var workers sync.WaitGroup
	for _, season := range seasons {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			_, err := s.statsService.DraftClassAverage(ctx, season)
			switch {
			case err == nil:
				warmed.Add(1)
			case errors.Is(err, stats.ErrNoDraftClassData):
				skipped.Add(1)
			default:
				failed.Add(1)
				s.logger.WarnContext(ctx, "warm draft class average failed", "season", season, "error", err)
			}
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit warmup task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.Warmed = int(warmed.Load())
	result.Skipped = int(skipped.Load())
	result.Failed = int(failed.Load())

	return result, nil
}
