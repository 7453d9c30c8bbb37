package repository

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
)

type TeamRepository interface {
	LoadTeams(ctx context.Context) (domain.Teams, error)
	SaveTeams(ctx context.Context, teams domain.Teams) error
}
