package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListProspects(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProspects")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	items, err := h.prospectService.ListProspects(ctx, query)
	if err != nil {
		h.fail(ctx, w, "list prospects failed", err, "query", query)
		return
	}

	out := make([]prospectDTO, 0, len(items))
	for _, item := range items {
		out = append(out, prospectToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetProspect(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProspect")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.prospectService.GetProspect(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get prospect failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prospectToDTO(item))
}

func (h *Handler) GetMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMeasurements")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.prospectService.GetMeasurement(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get measurements failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, measurementToDTO(item))
}
