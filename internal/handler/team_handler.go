package handler

import (
	"net/http"

	"github.com/bagdasarian/team-voting/internal/domain"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.teamService.AddTeam(r.Context(), req.TeamName); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TeamResponse{TeamName: req.TeamName})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamName := r.PathValue("name")
	if teamName == "" {
		h.handleError(w, r, domain.NewBadRequestError("team name is required"))
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamName); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamResponse{TeamName: teamName})
}

func (h *Handler) ReconcileTeams(w http.ResponseWriter, r *http.Request) {
	result, err := h.teamService.Reconcile(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainReconcileToHTTP(result))
}
