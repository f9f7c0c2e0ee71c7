package httpapi

import (
	"net/http"

	"github.com/riskibarqy/nba-draft-hub/internal/usecase"
)

func (h *Handler) GetScouting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScouting")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.scoutingService.GetSummary(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get scouting summary failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutingSummaryToDTO(summary))
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNotes")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	notes, err := h.scoutingService.ListNotes(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list notes failed", err, "player_id", playerID)
		return
	}

	out := make([]noteDTO, 0, len(notes))
	for _, note := range notes {
		out = append(out, noteToDTO(note))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddNote")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	note, err := h.scoutingService.AddNote(ctx, usecase.AddNoteInput{
		PlayerID: playerID,
		Author:   req.Author,
		Body:     req.Body,
	})
	if err != nil {
		h.fail(ctx, w, "add note failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, noteToDTO(note))
}
