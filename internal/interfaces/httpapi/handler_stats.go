package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListGameLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameLogs")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.statsService.ListGameLogs(ctx, playerID, season)
	if err != nil {
		h.fail(ctx, w, "list game logs failed", err, "player_id", playerID, "season", season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameLogPageToDTO(page))
}

func (h *Handler) ListSeasonLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonLogs")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.ListSeasonLogs(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list season logs failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonLogsToDTO(rows))
}

func (h *Handler) CompareToDraftClass(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareToDraftClass")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cmp, err := h.statsService.CompareToDraftClass(ctx, playerID, season)
	if err != nil {
		h.fail(ctx, w, "compare to draft class failed", err, "player_id", playerID, "season", season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftClassComparisonDTO{
		PlayerID:   cmp.PlayerID,
		Season:     cmp.Season,
		Player:     seasonLogsToDTO(cmp.Player),
		DraftClass: seasonLogToDTO(cmp.DraftClass),
	})
}

func (h *Handler) ListStatRanks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatRanks")
	defer span.End()

	playerID, err := pathPlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	stat := strings.TrimSpace(r.URL.Query().Get("stat"))

	ranks, err := h.statsService.StatRanks(ctx, playerID, stat)
	if err != nil {
		h.fail(ctx, w, "list stat ranks failed", err, "player_id", playerID, "stat", stat)
		return
	}

	out := make([]statRankDTO, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, statRankDTO{
			Stat:  string(rank.Stat),
			Value: rank.Value,
			Rank:  rank.Rank,
			Total: rank.Total,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetDraftClassAverages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftClassAverages")
	defer span.End()

	season, err := pathInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	avg, err := h.statsService.DraftClassAverage(ctx, season)
	if err != nil {
		h.fail(ctx, w, "get draft class averages failed", err, "season", season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonLogToDTO(avg))
}
