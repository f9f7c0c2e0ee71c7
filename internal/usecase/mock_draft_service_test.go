package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/repository/memory"
	draftmock "github.com/riskibarqy/nba-draft-hub/internal/mocks/domain/draft"
	prospectmock "github.com/riskibarqy/nba-draft-hub/internal/mocks/domain/prospect"
	"github.com/stretchr/testify/mock"
)

func newSeededMockDraftService(order []draft.Slot) *MockDraftService {
	svc := NewMockDraftService(
		memory.NewDraftOrderRepository(order),
		seededProspectRepo(),
		memory.NewMockDraftRepository(memory.DefaultMockDraftTTL, memory.DefaultMockDraftMaxSessions),
		&sequenceIDGenerator{},
	)
	svc.now = func() time.Time { return time.Date(2025, 6, 25, 20, 0, 0, 0, time.UTC) }
	return svc
}

func TestMockDraftService_CreateAndPick(t *testing.T) {
	svc := newSeededMockDraftService(memory.SeedDraftOrder())

	session, err := svc.Create(t.Context())
	if err != nil {
		t.Fatalf("create mock draft: %v", err)
	}
	if session.ID != "id-1" || len(session.Picks) != 3 || len(session.Available) != 4 {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Picks[0].Team != "Dallas Mavericks" {
		t.Fatalf("expected picks sorted by number, got %+v", session.Picks)
	}

	updated, selection, err := svc.Pick(t.Context(), session.ID, memory.SeedPlayerFlagg)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if selection.PickNumber != 1 || selection.Team != "Dallas Mavericks" || selection.PlayerID != memory.SeedPlayerFlagg {
		t.Fatalf("unexpected selection: %+v", selection)
	}
	if updated.Current != 1 || updated.IsAvailable(memory.SeedPlayerFlagg) {
		t.Fatalf("expected pick to advance and remove player: %+v", updated)
	}

	stored, err := svc.Get(t.Context(), session.ID)
	if err != nil {
		t.Fatalf("get mock draft: %v", err)
	}
	if stored.Current != 1 {
		t.Fatalf("expected stored session to advance, got current=%d", stored.Current)
	}
}

func TestMockDraftService_Pick_Errors(t *testing.T) {
	svc := newSeededMockDraftService(memory.SeedDraftOrder())

	session, err := svc.Create(t.Context())
	if err != nil {
		t.Fatalf("create mock draft: %v", err)
	}
	if _, _, err := svc.Pick(t.Context(), session.ID, memory.SeedPlayerFlagg); err != nil {
		t.Fatalf("first pick: %v", err)
	}

	if _, _, err := svc.Pick(t.Context(), session.ID, memory.SeedPlayerFlagg); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for taken player, got %v", err)
	}
	if _, _, err := svc.Pick(t.Context(), session.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
	if _, _, err := svc.Pick(t.Context(), "missing", memory.SeedPlayerHarper); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown draft, got %v", err)
	}
	if _, _, err := svc.Pick(t.Context(), " ", memory.SeedPlayerHarper); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank draft id, got %v", err)
	}

	if _, _, err := svc.Pick(t.Context(), session.ID, memory.SeedPlayerHarper); err != nil {
		t.Fatalf("second pick: %v", err)
	}
	if _, _, err := svc.Pick(t.Context(), session.ID, memory.SeedPlayerBailey); err != nil {
		t.Fatalf("third pick: %v", err)
	}
	_, _, err = svc.Pick(t.Context(), session.ID, memory.SeedPlayerTraore)
	if !errors.Is(err, ErrConflict) || !errors.Is(err, draft.ErrDraftComplete) {
		t.Fatalf("expected completed draft conflict, got %v", err)
	}
}

func TestMockDraftService_Create_EmptyOrder(t *testing.T) {
	svc := newSeededMockDraftService(nil)

	if _, err := svc.Create(t.Context()); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for empty draft order, got %v", err)
	}
}

func TestMockDraftService_Get_NotFound(t *testing.T) {
	svc := newSeededMockDraftService(memory.SeedDraftOrder())

	if _, err := svc.Get(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockDraftService_Create_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoErr := errors.New("duplicate id")
	orderRepo := draftmock.NewOrderRepository(t)
	orderRepo.
		On("ListOrder", mock.Anything).
		Return([]draft.Slot{{Pick: 1, Team: "Dallas Mavericks"}}, nil).
		Once()
	prospectRepo := prospectmock.NewRepository(t)
	prospectRepo.
		On("List", mock.Anything).
		Return(nil, nil).
		Once()
	draftRepo := draftmock.NewMockDraftRepository(t)
	draftRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(d draft.MockDraft) bool { return d.ID == "id-1" })).
		Return(repoErr).
		Once()

	svc := NewMockDraftService(orderRepo, prospectRepo, draftRepo, &sequenceIDGenerator{})
	if _, err := svc.Create(ctx); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
