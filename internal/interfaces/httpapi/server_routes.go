package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerProspectRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/prospects", handler.ListProspects)
	mux.HandleFunc("GET /v1/prospects/{playerID}", handler.GetProspect)
	mux.HandleFunc("GET /v1/prospects/{playerID}/measurements", handler.GetMeasurements)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/prospects/{playerID}/game-logs", handler.ListGameLogs)
	mux.HandleFunc("GET /v1/prospects/{playerID}/season-logs", handler.ListSeasonLogs)
	mux.HandleFunc("GET /v1/prospects/{playerID}/season-logs/compare", handler.CompareToDraftClass)
	mux.HandleFunc("GET /v1/prospects/{playerID}/stat-ranks", handler.ListStatRanks)
	mux.HandleFunc("GET /v1/draft-class/{season}/averages", handler.GetDraftClassAverages)
}

func registerScoutingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/prospects/{playerID}/scouting", handler.GetScouting)
	mux.HandleFunc("GET /v1/prospects/{playerID}/notes", handler.ListNotes)
	mux.HandleFunc("POST /v1/prospects/{playerID}/notes", handler.AddNote)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/draft/order", handler.GetDraftOrder)
	mux.HandleFunc("GET /v1/draft/big-board", handler.GetBigBoard)
	mux.HandleFunc("POST /v1/mock-drafts", handler.CreateMockDraft)
	mux.HandleFunc("GET /v1/mock-drafts/{draftID}", handler.GetMockDraft)
	mux.HandleFunc("POST /v1/mock-drafts/{draftID}/picks", handler.PickInMockDraft)
}
