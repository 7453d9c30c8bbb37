package service

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
)

type VoteService interface {
	RecordVote(ctx context.Context, team string, value int, voter string) (bool, error)
	CastVote(ctx context.Context, session *domain.Session, team string, value int) (bool, error)
	Report(ctx context.Context) (*domain.Report, error)
}
