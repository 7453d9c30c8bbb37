package service

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
)

type UserService interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Register(ctx context.Context, username, password string) error
}
