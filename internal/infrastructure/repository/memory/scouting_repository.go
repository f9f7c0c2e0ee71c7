package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
)

type ScoutingRepository struct {
	mu              sync.RWMutex
	rankings        []scouting.ScoutRanking
	rankingByPlayer map[int64]scouting.ScoutRanking
	reportsByPlayer map[int64][]scouting.Report
}

func NewScoutingRepository(rankings []scouting.ScoutRanking, reports []scouting.Report) *ScoutingRepository {
	byPlayer := make(map[int64]scouting.ScoutRanking, len(rankings))
	for _, r := range rankings {
		byPlayer[r.PlayerID] = r
	}
	reportsByPlayer := make(map[int64][]scouting.Report)
	for _, rep := range reports {
		reportsByPlayer[rep.PlayerID] = append(reportsByPlayer[rep.PlayerID], rep)
	}

	return &ScoutingRepository{
		rankings:        append([]scouting.ScoutRanking(nil), rankings...),
		rankingByPlayer: byPlayer,
		reportsByPlayer: reportsByPlayer,
	}
}

func (r *ScoutingRepository) ListRankings(_ context.Context) ([]scouting.ScoutRanking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]scouting.ScoutRanking(nil), r.rankings...), nil
}

func (r *ScoutingRepository) GetRankingByPlayer(_ context.Context, playerID int64) (scouting.ScoutRanking, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rankingByPlayer[playerID]
	return item, ok, nil
}

func (r *ScoutingRepository) ListReportsByPlayer(_ context.Context, playerID int64) ([]scouting.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]scouting.Report(nil), r.reportsByPlayer[playerID]...), nil
}

// NoteRepository keeps internal notes until the process exits.
type NoteRepository struct {
	mu       sync.RWMutex
	byPlayer map[int64][]scouting.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{byPlayer: make(map[int64][]scouting.Note)}
}

func (r *NoteRepository) Add(_ context.Context, note scouting.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPlayer[note.PlayerID] = append(r.byPlayer[note.PlayerID], note)
	return nil
}

func (r *NoteRepository) ListByPlayer(_ context.Context, playerID int64) ([]scouting.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]scouting.Note(nil), r.byPlayer[playerID]...), nil
}
