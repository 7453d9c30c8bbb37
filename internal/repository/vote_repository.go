package repository

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
)

type VoteRepository interface {
	LoadVotes(ctx context.Context) (*domain.Ledger, error)
	SaveVotes(ctx context.Context, ledger *domain.Ledger) error
}
