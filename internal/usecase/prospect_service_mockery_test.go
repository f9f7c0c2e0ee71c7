package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	prospectmock "github.com/riskibarqy/nba-draft-hub/internal/mocks/domain/prospect"
	"github.com/stretchr/testify/mock"
)

func TestProspectService_ListProspects_FiltersUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := prospectmock.NewRepository(t)
	repo.
		On("List", mock.Anything).
		Return([]prospect.Prospect{
			{PlayerID: 1, Name: "Cooper Flagg", CurrentTeam: "Duke", League: "NCAA"},
			{PlayerID: 2, Name: "Dylan Harper", CurrentTeam: "Rutgers", League: "NCAA"},
			{PlayerID: 3, Name: "Nolan Traore", CurrentTeam: "Saint-Quentin", League: "LNB"},
		}, nil).
		Once()

	service := NewProspectService(repo)
	got, err := service.ListProspects(ctx, "RUTGERS")
	if err != nil {
		t.Fatalf("list prospects: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != 2 {
		t.Fatalf("unexpected search result: %+v", got)
	}
}

func TestProspectService_GetProspect_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := prospectmock.NewRepository(t)
	repo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(42)).
		Return(prospect.Prospect{}, false, nil).
		Once()

	_, err := NewProspectService(repo).GetProspect(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProspectService_GetProspect_InvalidIDSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := prospectmock.NewRepository(t)

	_, err := NewProspectService(repo).GetProspect(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProspectService_GetMeasurement_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoErr := errors.New("connection reset")
	repo := prospectmock.NewRepository(t)
	repo.
		On("GetByID", mock.Anything, int64(7)).
		Return(prospect.Prospect{PlayerID: 7}, true, nil).
		Once()
	repo.
		On("GetMeasurement", mock.Anything, int64(7)).
		Return(prospect.Measurement{}, false, repoErr).
		Once()

	_, err := NewProspectService(repo).GetMeasurement(ctx, 7)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestProspectService_GetMeasurement_MissingIsNotFound(t *testing.T) {
	svc := NewProspectService(seededProspectRepo())

	if _, err := svc.GetMeasurement(t.Context(), 102); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for prospect without measurements, got %v", err)
	}

	m, err := svc.GetMeasurement(t.Context(), 101)
	if err != nil {
		t.Fatalf("get measurement: %v", err)
	}
	if m.Wingspan == nil || *m.Wingspan != 84 {
		t.Fatalf("unexpected wingspan: %+v", m.Wingspan)
	}
}
