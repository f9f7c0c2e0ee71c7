package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftOrder")
	defer span.End()

	slots, err := h.boardService.DraftOrder(ctx)
	if err != nil {
		h.fail(ctx, w, "get draft order failed", err)
		return
	}

	out := make([]draftSlotDTO, 0, len(slots))
	for _, slot := range slots {
		out = append(out, draftSlotDTO{
			Pick:    slot.Pick,
			Team:    slot.Team,
			GM:      slot.GM,
			Contact: slot.Contact,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetBigBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBigBoard")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.boardService.BigBoard(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "get big board failed", err, "limit", limit)
		return
	}

	out := make([]bigBoardRowDTO, 0, len(rows))
	for _, row := range rows {
		dto := bigBoardRowDTO{
			Rank:     row.Rank,
			Prospect: prospectToDTO(row.Prospect),
		}
		if row.Ranked {
			avg := row.AverageRank
			dto.AverageRank = &avg
		}
		out = append(out, dto)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateMockDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMockDraft")
	defer span.End()

	session, err := h.mockDraftService.Create(ctx)
	if err != nil {
		h.fail(ctx, w, "create mock draft failed", err)
		return
	}

	h.logger.InfoContext(ctx, "mock draft created", "draft_id", session.ID, "picks", len(session.Picks))
	writeSuccess(ctx, w, http.StatusCreated, mockDraftToDTO(session))
}

func (h *Handler) GetMockDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMockDraft")
	defer span.End()

	draftID := strings.TrimSpace(r.PathValue("draftID"))
	session, err := h.mockDraftService.Get(ctx, draftID)
	if err != nil {
		h.fail(ctx, w, "get mock draft failed", err, "draft_id", draftID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mockDraftToDTO(session))
}

func (h *Handler) PickInMockDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PickInMockDraft")
	defer span.End()

	draftID := strings.TrimSpace(r.PathValue("draftID"))
	var req mockDraftPickRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, selection, err := h.mockDraftService.Pick(ctx, draftID, req.PlayerID)
	if err != nil {
		h.fail(ctx, w, "mock draft pick failed", err, "draft_id", draftID, "player_id", req.PlayerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mockDraftPickDTO{
		Selection: selectionToDTO(selection),
		Draft:     mockDraftToDTO(session),
	})
}
