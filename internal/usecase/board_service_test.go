package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/repository/memory"
	draftmock "github.com/riskibarqy/nba-draft-hub/internal/mocks/domain/draft"
	prospectmock "github.com/riskibarqy/nba-draft-hub/internal/mocks/domain/prospect"
	scoutingmock "github.com/riskibarqy/nba-draft-hub/internal/mocks/domain/scouting"
	"github.com/stretchr/testify/mock"
)

func newSeededBoardService(maxLimit int) *BoardService {
	return NewBoardService(
		seededProspectRepo(),
		seededScoutingRepo(),
		memory.NewDraftOrderRepository(memory.SeedDraftOrder()),
		maxLimit,
	)
}

func TestBoardService_BigBoard_OrdersByAverageRank(t *testing.T) {
	svc := newSeededBoardService(0)

	rows, err := svc.BigBoard(t.Context(), 0)
	if err != nil {
		t.Fatalf("big board: %v", err)
	}

	wantOrder := []int64{memory.SeedPlayerFlagg, memory.SeedPlayerHarper, memory.SeedPlayerBailey, memory.SeedPlayerTraore}
	if len(rows) != len(wantOrder) {
		t.Fatalf("unexpected board size: %d", len(rows))
	}
	for i, playerID := range wantOrder {
		if rows[i].Prospect.PlayerID != playerID || rows[i].Rank != i+1 {
			t.Fatalf("unexpected row %d: %+v", i, rows[i])
		}
	}
	if rows[1].AverageRank != 2.2 {
		t.Fatalf("unexpected average for second row: %v", rows[1].AverageRank)
	}
	if rows[3].Ranked {
		t.Fatalf("expected last row to be unranked")
	}
}

func TestBoardService_BigBoard_Limit(t *testing.T) {
	svc := newSeededBoardService(3)

	rows, err := svc.BigBoard(t.Context(), 2)
	if err != nil {
		t.Fatalf("big board: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	rows, err = svc.BigBoard(t.Context(), 50)
	if err != nil {
		t.Fatalf("big board: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected limit to be capped at 3, got %d", len(rows))
	}
}

func TestBoardService_DraftOrder_SortedByPick(t *testing.T) {
	svc := newSeededBoardService(0)

	slots, err := svc.DraftOrder(t.Context())
	if err != nil {
		t.Fatalf("draft order: %v", err)
	}
	for i, slot := range slots {
		if slot.Pick != i+1 {
			t.Fatalf("unexpected pick at %d: %d", i, slot.Pick)
		}
	}
	if slots[0].Team != "Dallas Mavericks" {
		t.Fatalf("unexpected first team: %s", slots[0].Team)
	}
}

func TestBoardService_BigBoard_RankingErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoErr := errors.New("rankings unavailable")
	prospectRepo := prospectmock.NewRepository(t)
	prospectRepo.
		On("List", mock.Anything).
		Return([]prospect.Prospect{{PlayerID: 1}}, nil).
		Once()
	scoutingRepo := scoutingmock.NewRepository(t)
	scoutingRepo.
		On("ListRankings", mock.Anything).
		Return([]scouting.ScoutRanking(nil), repoErr).
		Once()

	svc := NewBoardService(prospectRepo, scoutingRepo, draftmock.NewOrderRepository(t), 10)
	if _, err := svc.BigBoard(ctx, 0); !errors.Is(err, repoErr) {
		t.Fatalf("expected rankings error, got %v", err)
	}
}

func TestBoardService_DraftOrder_DoesNotMutateRepositoryUsingMockery(t *testing.T) {
	t.Parallel()

	order := []draft.Slot{{Pick: 2, Team: "B"}, {Pick: 1, Team: "A"}}
	orderRepo := draftmock.NewOrderRepository(t)
	orderRepo.
		On("ListOrder", mock.Anything).
		Return(order, nil).
		Once()

	svc := NewBoardService(prospectmock.NewRepository(t), scoutingmock.NewRepository(t), orderRepo, 10)
	slots, err := svc.DraftOrder(context.Background())
	if err != nil {
		t.Fatalf("draft order: %v", err)
	}
	if slots[0].Pick != 1 || order[0].Pick != 2 {
		t.Fatalf("expected sorted copy, got slots=%+v order=%+v", slots, order)
	}
}
