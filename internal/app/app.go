package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/config"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/dataset"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/nba-draft-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/cache"
	idgen "github.com/riskibarqy/nba-draft-hub/internal/platform/id"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/logging"
	"github.com/riskibarqy/nba-draft-hub/internal/usecase"
)

// NewHTTPServer loads the dataset once, builds every service on top of the
// in-memory repositories and optionally warms the draft-class cache before
// returning.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	started := time.Now()
	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dataset loaded",
		"source", cfg.DatasetSource,
		"prospects", len(ds.Prospects),
		"season_logs", len(ds.SeasonLogs),
		"game_logs", len(ds.GameLogs),
		"draft_slots", len(ds.DraftOrder),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	prospectRepo := memory.NewProspectRepository(ds.Prospects, ds.Measurements)
	statsRepo := memory.NewStatsRepository(ds.SeasonLogs, ds.GameLogs)
	scoutingRepo := memory.NewScoutingRepository(ds.Rankings, ds.Reports)
	noteRepo := memory.NewNoteRepository()
	orderRepo := memory.NewDraftOrderRepository(ds.DraftOrder)
	mockDraftRepo := memory.NewMockDraftRepository(cfg.MockDraftTTL, cfg.MockDraftMaxSessions)
	ids := idgen.NewUUIDGenerator()

	var draftClassCache *cache.Store
	if cfg.CacheEnabled {
		draftClassCache = cache.NewStore(cfg.CacheTTL)
	}

	prospectSvc := usecase.NewProspectService(prospectRepo)
	statsSvc := usecase.NewStatsService(prospectRepo, statsRepo, draftClassCache)
	scoutingSvc := usecase.NewScoutingService(prospectRepo, scoutingRepo, noteRepo, ids)
	boardSvc := usecase.NewBoardService(prospectRepo, scoutingRepo, orderRepo, cfg.BigBoardLimit)
	mockDraftSvc := usecase.NewMockDraftService(orderRepo, prospectRepo, mockDraftRepo, ids)

	if cfg.WarmupEnabled && draftClassCache != nil {
		warmup := usecase.NewWarmupService(statsRepo, statsSvc, cfg.WarmupWorkers, logger)
		result, err := warmup.Run(ctx)
		if err != nil {
			logger.Warn("draft class warmup failed", "error", err)
		} else {
			logger.Info("draft class warmup finished",
				"seasons", result.Seasons,
				"warmed", result.Warmed,
				"skipped", result.Skipped,
				"failed", result.Failed,
			)
		}
	}

	handler := httpapi.NewHandler(prospectSvc, statsSvc, scoutingSvc, boardSvc, mockDraftSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func loadDataset(ctx context.Context, cfg config.Config) (*dataset.Dataset, error) {
	switch cfg.DatasetSource {
	case config.DatasetSourcePostgres:
		db, err := postgres.Open(ctx, postgres.Options{
			URL:                   cfg.DBURL,
			DisablePreparedBinary: cfg.DBDisablePreparedBinary,
			MaxOpenConns:          8,
		})
		if err != nil {
			return nil, err
		}
		defer db.Close()

		return postgres.NewDatasetSource(db, cfg.DraftYear).Load(ctx)
	default:
		return dataset.FileSource{
			DatasetPath:    cfg.DatasetPath,
			DraftOrderPath: cfg.DraftOrderPath,
		}.Load(ctx)
	}
}
