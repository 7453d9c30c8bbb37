package handler

import (
	"net/http"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/report"
)

func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.handleError(w, r, domain.ErrUnauthorized)
		return
	}

	var req VoteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	recorded, err := h.voteService.CastVote(r.Context(), session, req.TeamName, req.Vote)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, VoteResponse{
		TeamName: req.TeamName,
		Vote:     req.Vote,
		Recorded: recorded,
	})
}

// GetResults отдает JSON, а с ?format=table - текстовые таблицы
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.voteService.Report(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, domainReportToHTTP(results))
	case "table":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		report.NewResultsReport(results).Write(w)
	default:
		h.handleError(w, r, domain.NewBadRequestError("format must be json or table"))
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
