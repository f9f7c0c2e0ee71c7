package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
)

type ProspectService struct {
	prospectRepo prospect.Repository
}

func NewProspectService(prospectRepo prospect.Repository) *ProspectService {
	return &ProspectService{prospectRepo: prospectRepo}
}

// ListProspects returns every prospect matching query. An empty query lists
// the whole directory in dataset order.
func (s *ProspectService) ListProspects(ctx context.Context, query string) ([]prospect.Prospect, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.ListProspects")
	defer span.End()

	items, err := s.prospectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}

	return prospect.Filter(items, query), nil
}

func (s *ProspectService) GetProspect(ctx context.Context, playerID int64) (prospect.Prospect, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.GetProspect")
	defer span.End()

	return getProspect(ctx, s.prospectRepo, playerID)
}

func (s *ProspectService) GetMeasurement(ctx context.Context, playerID int64) (prospect.Measurement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.GetMeasurement")
	defer span.End()

	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return prospect.Measurement{}, err
	}

	item, exists, err := s.prospectRepo.GetMeasurement(ctx, playerID)
	if err != nil {
		return prospect.Measurement{}, fmt.Errorf("get measurement: %w", err)
	}
	if !exists {
		return prospect.Measurement{}, fmt.Errorf("%w: measurements for player=%d", ErrNotFound, playerID)
	}

	return item, nil
}

// getProspect validates playerID and resolves it against the directory.
func getProspect(ctx context.Context, repo prospect.Repository, playerID int64) (prospect.Prospect, error) {
	if playerID <= 0 {
		return prospect.Prospect{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, playerID)
	if err != nil {
		return prospect.Prospect{}, fmt.Errorf("get prospect: %w", err)
	}
	if !exists {
		return prospect.Prospect{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return item, nil
}
