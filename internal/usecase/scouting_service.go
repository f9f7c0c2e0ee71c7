package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/id"
)

const maxNoteBodyLength = 4000

// ScoutingSummary is everything the scouting view shows for one prospect.
// HasAverage is false when no scout ranked the player.
type ScoutingSummary struct {
	PlayerID    int64
	Ranking     scouting.ScoutRanking
	AverageRank float64
	HasAverage  bool
	Opinions    []scouting.ScoutOpinion
	Reports     []scouting.Report
}

type ScoutingService struct {
	prospectRepo prospect.Repository
	scoutingRepo scouting.Repository
	noteRepo     scouting.NoteRepository
	idGen        id.Generator
	now          func() time.Time
}

func NewScoutingService(
	prospectRepo prospect.Repository,
	scoutingRepo scouting.Repository,
	noteRepo scouting.NoteRepository,
	idGen id.Generator,
) *ScoutingService {
	return &ScoutingService{
		prospectRepo: prospectRepo,
		scoutingRepo: scoutingRepo,
		noteRepo:     noteRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *ScoutingService) GetSummary(ctx context.Context, playerID int64) (ScoutingSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.GetSummary")
	defer span.End()

	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return ScoutingSummary{}, err
	}

	ranking, exists, err := s.scoutingRepo.GetRankingByPlayer(ctx, playerID)
	if err != nil {
		return ScoutingSummary{}, fmt.Errorf("get scout ranking: %w", err)
	}
	if !exists {
		ranking = scouting.ScoutRanking{PlayerID: playerID}
	}

	reports, err := s.scoutingRepo.ListReportsByPlayer(ctx, playerID)
	if err != nil {
		return ScoutingSummary{}, fmt.Errorf("list scouting reports: %w", err)
	}

	avg, ok := scouting.AverageRank(ranking)
	return ScoutingSummary{
		PlayerID:    playerID,
		Ranking:     ranking,
		AverageRank: avg,
		HasAverage:  ok,
		Opinions:    scouting.Classify(ranking, avg),
		Reports:     reports,
	}, nil
}

type AddNoteInput struct {
	PlayerID int64
	Author   string
	Body     string
}

func (s *ScoutingService) AddNote(ctx context.Context, input AddNoteInput) (scouting.Note, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.AddNote")
	defer span.End()

	body := strings.TrimSpace(input.Body)
	if body == "" {
		return scouting.Note{}, fmt.Errorf("%w: note body is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(body) > maxNoteBodyLength {
		return scouting.Note{}, fmt.Errorf("%w: note body must be at most %d characters", ErrInvalidInput, maxNoteBodyLength)
	}
	if _, err := getProspect(ctx, s.prospectRepo, input.PlayerID); err != nil {
		return scouting.Note{}, err
	}

	noteID, err := s.idGen.NewID()
	if err != nil {
		return scouting.Note{}, fmt.Errorf("generate note id: %w", err)
	}

	note := scouting.Note{
		ID:        noteID,
		PlayerID:  input.PlayerID,
		Author:    strings.TrimSpace(input.Author),
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := note.Validate(); err != nil {
		return scouting.Note{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.noteRepo.Add(ctx, note); err != nil {
		return scouting.Note{}, fmt.Errorf("add note: %w", err)
	}

	return note, nil
}

func (s *ScoutingService) ListNotes(ctx context.Context, playerID int64) ([]scouting.Note, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.ListNotes")
	defer span.End()

	if _, err := getProspect(ctx, s.prospectRepo, playerID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}
