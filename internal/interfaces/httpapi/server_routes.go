package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/roster", handler.ListLeagueRoster)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/draft/turn", handler.GetDraftTurn)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matchups", handler.ListWeeklyMatchups)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/trades", handler.ListTrades)
	mux.HandleFunc("GET /v1/wrestlers", handler.ListWrestlers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedDraftRoutes(mux, handler, verifier)
	registerAuthorizedDiscoveryRoutes(mux, handler, verifier)
	registerAuthorizedTradeRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-standings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshStandingsJob)))
}

func registerAuthorizedDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/draft/order", RequireAuth(verifier, http.HandlerFunc(handler.GenerateDraftOrder)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/picks", RequireAuth(verifier, http.HandlerFunc(handler.MakeDraftPick)))
}

func registerAuthorizedDiscoveryRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/discovery/redemptions", RequireAuth(verifier, http.HandlerFunc(handler.RedeemDiscoveryPick)))
	mux.Handle("GET /v1/leagues/{leagueID}/discovery/holdings", RequireAuth(verifier, http.HandlerFunc(handler.ListDiscoveryHoldings)))
	mux.Handle("PUT /v1/discovery/holdings/{holdingID}/debut", RequireAuth(verifier, http.HandlerFunc(handler.SetDiscoveryDebutDate)))
	mux.Handle("POST /v1/discovery/holdings/{holdingID}/activate", RequireAuth(verifier, http.HandlerFunc(handler.ActivateDiscoveryHolding)))
}

func registerAuthorizedTradeRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/trades", RequireAuth(verifier, http.HandlerFunc(handler.ExecuteTrade)))
}
