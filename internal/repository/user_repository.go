package repository

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
)

type UserRepository interface {
	LoadUsers(ctx context.Context) (domain.Credentials, error)
	SaveUsers(ctx context.Context, users domain.Credentials) error
}
