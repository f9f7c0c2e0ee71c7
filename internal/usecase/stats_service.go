package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/cache"
)

// GameLogPage is one player's games for a single season together with every
// season the player has games in.
type GameLogPage struct {
	PlayerID int64
	Season   int
	Seasons  []int
	Games    []stats.GameLog
}

// DraftClassComparison pairs a player's combined rows for a season with the
// NCAA draft-class average of that season.
type DraftClassComparison struct {
	PlayerID   int64
	Season     int
	Player     []stats.SeasonLog
	DraftClass stats.SeasonLog
}

type StatsService struct {
	prospectRepo prospect.Repository
	statsRepo    stats.Repository
	cache        *cache.Store
}

// NewStatsService builds the service. A nil store disables summary caching.
func NewStatsService(prospectRepo prospect.Repository, statsRepo stats.Repository, store *cache.Store) *StatsService {
	return &StatsService{
		prospectRepo: prospectRepo,
		statsRepo:    statsRepo,
		cache:        store,
	}
}

// ListGameLogs returns the player's games for season, newest first. A season
// of zero selects the player's most recent season.
func (s *StatsService) ListGameLogs(ctx context.Context, playerID int64, season int) (GameLogPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListGameLogs")
	defer span.End()

	if season < 0 {
		return GameLogPage{}, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}
	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return GameLogPage{}, err
	}

	logs, err := s.statsRepo.ListGameLogsByPlayer(ctx, playerID)
	if err != nil {
		return GameLogPage{}, fmt.Errorf("list game logs: %w", err)
	}

	page := GameLogPage{
		PlayerID: playerID,
		Seasons:  stats.GameLogSeasons(logs),
		Games:    []stats.GameLog{},
	}
	if season == 0 {
		if len(page.Seasons) == 0 {
			return page, nil
		}
		season = page.Seasons[0]
	}
	page.Season = season
	page.Games = stats.SortGameLogsByDateDesc(stats.FilterGameLogsBySeason(logs, season))

	return page, nil
}

// ListSeasonLogs returns the player's season rows with multi-league seasons
// on one team merged into a single combined row.
func (s *StatsService) ListSeasonLogs(ctx context.Context, playerID int64) ([]stats.SeasonLog, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListSeasonLogs")
	defer span.End()

	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return nil, err
	}

	logs, err := s.statsRepo.ListSeasonLogsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list season logs: %w", err)
	}

	return stats.CombineSeasonLogs(logs), nil
}

// DraftClassAverage returns the NCAA average for season. Results are cached
// per season; a season without NCAA rows returns stats.ErrNoDraftClassData.
func (s *StatsService) DraftClassAverage(ctx context.Context, season int) (stats.SeasonLog, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.DraftClassAverage")
	defer span.End()

	if season <= 0 {
		return stats.SeasonLog{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	key := fmt.Sprintf("draft-class:%s:%d", stats.LeagueNCAA, season)
	avg, err := cache.Load(ctx, s.cache, key, func(ctx context.Context) (stats.SeasonLog, error) {
		logs, err := s.statsRepo.ListSeasonLogs(ctx)
		if err != nil {
			return stats.SeasonLog{}, fmt.Errorf("list season logs: %w", err)
		}
		return stats.DraftClassAverage(logs, season, stats.LeagueNCAA)
	})
	if err != nil {
		return stats.SeasonLog{}, fmt.Errorf("draft class average: %w", err)
	}

	return avg, nil
}

// CompareToDraftClass pairs the player's combined rows for season with the
// draft-class average. A season of zero selects the player's latest season.
func (s *StatsService) CompareToDraftClass(ctx context.Context, playerID int64, season int) (DraftClassComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.CompareToDraftClass")
	defer span.End()

	if season < 0 {
		return DraftClassComparison{}, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}

	combined, err := s.ListSeasonLogs(ctx, playerID)
	if err != nil {
		return DraftClassComparison{}, err
	}
	if season == 0 {
		seasons := stats.Seasons(combined)
		if len(seasons) == 0 {
			return DraftClassComparison{}, fmt.Errorf("%w: no season logs for player=%d", ErrNotFound, playerID)
		}
		season = seasons[0]
	}

	rows := make([]stats.SeasonLog, 0, 1)
	for _, row := range combined {
		if row.Season == season {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return DraftClassComparison{}, fmt.Errorf("%w: no season logs for player=%d season=%d", ErrNotFound, playerID, season)
	}

	avg, err := s.DraftClassAverage(ctx, season)
	if err != nil {
		return DraftClassComparison{}, err
	}

	return DraftClassComparison{
		PlayerID:   playerID,
		Season:     season,
		Player:     rows,
		DraftClass: avg,
	}, nil
}

// StatRanks ranks the player's latest-season value for stat against the whole
// dataset. An empty stat ranks every supported stat.
func (s *StatsService) StatRanks(ctx context.Context, playerID int64, stat string) ([]stats.StatRank, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.StatRanks")
	defer span.End()

	keys := stats.RankableStats
	if raw := strings.ToUpper(strings.TrimSpace(stat)); raw != "" {
		key, err := stats.ParseStatKey(raw)
		if err != nil {
			if errors.Is(err, stats.ErrUnknownStat) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return nil, err
		}
		keys = []stats.StatKey{key}
	}

	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return nil, err
	}

	logs, err := s.statsRepo.ListSeasonLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list season logs: %w", err)
	}

	out := make([]stats.StatRank, 0, len(keys))
	for _, key := range keys {
		rank, ok := stats.RankStat(logs, playerID, key)
		if !ok {
			return nil, fmt.Errorf("%w: no season logs for player=%d", ErrNotFound, playerID)
		}
		out = append(out, rank)
	}

	return out, nil
}
