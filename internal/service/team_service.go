package service

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
)

type TeamService interface {
	ListTeams(ctx context.Context) (domain.Teams, error)
	AddTeam(ctx context.Context, name string) error
	DeleteTeam(ctx context.Context, name string) error
	Reconcile(ctx context.Context) (*domain.ReconcileResult, error)
}
