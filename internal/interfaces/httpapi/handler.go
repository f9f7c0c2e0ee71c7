package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nba-draft-hub/internal/platform/logging"
	"github.com/riskibarqy/nba-draft-hub/internal/usecase"
)

type Handler struct {
	prospectService  *usecase.ProspectService
	statsService     *usecase.StatsService
	scoutingService  *usecase.ScoutingService
	boardService     *usecase.BoardService
	mockDraftService *usecase.MockDraftService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	prospectService *usecase.ProspectService,
	statsService *usecase.StatsService,
	scoutingService *usecase.ScoutingService,
	boardService *usecase.BoardService,
	mockDraftService *usecase.MockDraftService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		prospectService:  prospectService,
		statsService:     statsService,
		scoutingService:  scoutingService,
		boardService:     boardService,
		mockDraftService: mockDraftService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs err at warn for client errors and at error for server errors,
// then writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
