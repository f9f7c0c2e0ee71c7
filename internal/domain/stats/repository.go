package stats

import "context"

// Repository describes season and game log reads needed by use cases.
type Repository interface {
	ListSeasonLogs(ctx context.Context) ([]SeasonLog, error)
	ListSeasonLogsByPlayer(ctx context.Context, playerID int64) ([]SeasonLog, error)
	ListGameLogsByPlayer(ctx context.Context, playerID int64) ([]GameLog, error)
}
