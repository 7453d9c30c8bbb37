package handler

import (
	"log/slog"

	"github.com/bagdasarian/team-voting/internal/service"
)

type Handler struct {
	userService service.UserService
	teamService service.TeamService
	voteService service.VoteService
	logger      *slog.Logger
}

func NewHandler(
	userService service.UserService,
	teamService service.TeamService,
	voteService service.VoteService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		userService: userService,
		teamService: teamService,
		voteService: voteService,
		logger:      logger,
	}
}
