package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/id"
)

type MockDraftService struct {
	orderRepo    draft.OrderRepository
	prospectRepo prospect.Repository
	draftRepo    draft.MockDraftRepository
	idGen        id.Generator
	now          func() time.Time
}

func NewMockDraftService(
	orderRepo draft.OrderRepository,
	prospectRepo prospect.Repository,
	draftRepo draft.MockDraftRepository,
	idGen id.Generator,
) *MockDraftService {
	return &MockDraftService{
		orderRepo:    orderRepo,
		prospectRepo: prospectRepo,
		draftRepo:    draftRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

// Create starts a session from the draft order with every prospect available.
func (s *MockDraftService) Create(ctx context.Context) (draft.MockDraft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MockDraftService.Create")
	defer span.End()

	order, err := s.orderRepo.ListOrder(ctx)
	if err != nil {
		return draft.MockDraft{}, fmt.Errorf("list draft order: %w", err)
	}
	prospects, err := s.prospectRepo.List(ctx)
	if err != nil {
		return draft.MockDraft{}, fmt.Errorf("list prospects: %w", err)
	}

	pool := make([]int64, 0, len(prospects))
	for _, p := range prospects {
		pool = append(pool, p.PlayerID)
	}

	draftID, err := s.idGen.NewID()
	if err != nil {
		return draft.MockDraft{}, fmt.Errorf("generate mock draft id: %w", err)
	}

	session, err := draft.NewMockDraft(draftID, order, pool, s.now().UTC())
	if err != nil {
		if errors.Is(err, draft.ErrEmptyDraftOrder) {
			return draft.MockDraft{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return draft.MockDraft{}, fmt.Errorf("new mock draft: %w", err)
	}
	if err := s.draftRepo.Create(ctx, session); err != nil {
		return draft.MockDraft{}, fmt.Errorf("create mock draft: %w", err)
	}

	return session, nil
}

func (s *MockDraftService) Get(ctx context.Context, draftID string) (draft.MockDraft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MockDraftService.Get")
	defer span.End()

	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return draft.MockDraft{}, fmt.Errorf("%w: mock draft id is required", ErrInvalidInput)
	}

	session, exists, err := s.draftRepo.Get(ctx, draftID)
	if err != nil {
		return draft.MockDraft{}, fmt.Errorf("get mock draft: %w", err)
	}
	if !exists {
		return draft.MockDraft{}, fmt.Errorf("%w: mock draft=%s", ErrNotFound, draftID)
	}

	return session, nil
}

// Pick selects playerID for the team on the clock and returns the updated
// session with the selection just made.
func (s *MockDraftService) Pick(ctx context.Context, draftID string, playerID int64) (draft.MockDraft, draft.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MockDraftService.Pick")
	defer span.End()

	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return draft.MockDraft{}, draft.Selection{}, fmt.Errorf("%w: mock draft id is required", ErrInvalidInput)
	}
	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return draft.MockDraft{}, draft.Selection{}, err
	}

	var selection draft.Selection
	session, err := s.draftRepo.Update(ctx, draftID, func(d *draft.MockDraft) error {
		picked, err := d.Pick(playerID, s.now().UTC())
		if err != nil {
			return err
		}
		selection = picked
		return nil
	})
	switch {
	case err == nil:
		return session, selection, nil
	case errors.Is(err, draft.ErrMockDraftNotFound):
		return draft.MockDraft{}, draft.Selection{}, fmt.Errorf("%w: mock draft=%s", ErrNotFound, draftID)
	case errors.Is(err, draft.ErrPlayerUnavailable), errors.Is(err, draft.ErrDraftComplete):
		return draft.MockDraft{}, draft.Selection{}, fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return draft.MockDraft{}, draft.Selection{}, fmt.Errorf("pick in mock draft: %w", err)
	}
}
