package scouting

import "context"

// Repository describes reads of external rankings and reports.
type Repository interface {
	ListRankings(ctx context.Context) ([]ScoutRanking, error)
	GetRankingByPlayer(ctx context.Context, playerID int64) (ScoutRanking, bool, error)
	ListReportsByPlayer(ctx context.Context, playerID int64) ([]Report, error)
}

// NoteRepository keeps internal notes for the lifetime of the process.
type NoteRepository interface {
	Add(ctx context.Context, note Note) error
	ListByPlayer(ctx context.Context, playerID int64) ([]Note, error)
}
