package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
)

const DefaultBigBoardLimit = 1000

// BigBoardRow is one line of the big board. Rank is the 1-based board
// position, not a scout rank.
type BigBoardRow struct {
	Rank        int
	Prospect    prospect.Prospect
	AverageRank float64
	Ranked      bool
}

type BoardService struct {
	prospectRepo prospect.Repository
	scoutingRepo scouting.Repository
	orderRepo    draft.OrderRepository
	maxLimit     int
}

func NewBoardService(
	prospectRepo prospect.Repository,
	scoutingRepo scouting.Repository,
	orderRepo draft.OrderRepository,
	maxLimit int,
) *BoardService {
	if maxLimit <= 0 {
		maxLimit = DefaultBigBoardLimit
	}
	return &BoardService{
		prospectRepo: prospectRepo,
		scoutingRepo: scoutingRepo,
		orderRepo:    orderRepo,
		maxLimit:     maxLimit,
	}
}

// BigBoard ranks every prospect by average scout rank, unranked prospects
// last. A limit outside 1..maxLimit falls back to maxLimit.
func (s *BoardService) BigBoard(ctx context.Context, limit int) ([]BigBoardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.BigBoard")
	defer span.End()

	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	prospects, err := s.prospectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	rankings, err := s.scoutingRepo.ListRankings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scout rankings: %w", err)
	}

	byPlayer := make(map[int64]scouting.ScoutRanking, len(rankings))
	for _, r := range rankings {
		byPlayer[r.PlayerID] = r
	}

	byID := make(map[int64]prospect.Prospect, len(prospects))
	entries := make([]draft.BoardEntry, 0, len(prospects))
	for _, p := range prospects {
		byID[p.PlayerID] = p
		entry := draft.BoardEntry{PlayerID: p.PlayerID}
		if r, ok := byPlayer[p.PlayerID]; ok {
			entry.AverageRank, entry.Ranked = scouting.AverageRank(r)
		}
		entries = append(entries, entry)
	}

	board := draft.BigBoard(entries, limit)
	out := make([]BigBoardRow, 0, len(board))
	for i, entry := range board {
		out = append(out, BigBoardRow{
			Rank:        i + 1,
			Prospect:    byID[entry.PlayerID],
			AverageRank: entry.AverageRank,
			Ranked:      entry.Ranked,
		})
	}

	return out, nil
}

// DraftOrder returns the configured order sorted by pick number.
func (s *BoardService) DraftOrder(ctx context.Context) ([]draft.Slot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.DraftOrder")
	defer span.End()

	slots, err := s.orderRepo.ListOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("list draft order: %w", err)
	}

	out := slices.Clone(slots)
	slices.SortStableFunc(out, func(a, b draft.Slot) int { return a.Pick - b.Pick })
	return out, nil
}
