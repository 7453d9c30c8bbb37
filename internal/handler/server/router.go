package server

import (
	"net/http"

	"github.com/bagdasarian/team-voting/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("POST /auth/login", h.WithLogging(h.Login))
	mux.HandleFunc("POST /auth/register", h.WithLogging(h.Register))

	mux.HandleFunc("GET /teams", h.WithLogging(h.RequireSession(h.ListTeams)))
	mux.HandleFunc("POST /teams", h.WithLogging(h.RequireSession(h.AddTeam)))
	mux.HandleFunc("POST /teams/reconcile", h.WithLogging(h.RequireSession(h.ReconcileTeams)))
	mux.HandleFunc("DELETE /teams/{name}", h.WithLogging(h.RequireSession(h.DeleteTeam)))

	mux.HandleFunc("POST /votes", h.WithLogging(h.RequireSession(h.CastVote)))
	mux.HandleFunc("GET /results", h.WithLogging(h.RequireSession(h.GetResults)))
}
