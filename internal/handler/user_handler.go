package handler

import (
	"net/http"

	"github.com/bagdasarian/team-voting/internal/domain"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{Username: session.Username})
}

// Register сам проверяет подтверждение пароля: сервис этого не делает
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.Password != req.ConfirmPassword {
		h.handleError(w, r, domain.ErrPasswordMismatch)
		return
	}

	if err := h.userService.Register(r.Context(), req.Username, req.Password); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "user registered", "username", req.Username)
	writeJSON(w, http.StatusCreated, UserResponse{Username: req.Username})
}
