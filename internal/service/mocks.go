package service

import (
	"context"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) LoadUsers(ctx context.Context) (domain.Credentials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Credentials), args.Error(1)
}

func (m *MockUserRepository) SaveUsers(ctx context.Context, users domain.Credentials) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) LoadTeams(ctx context.Context) (domain.Teams, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Teams), args.Error(1)
}

func (m *MockTeamRepository) SaveTeams(ctx context.Context, teams domain.Teams) error {
	args := m.Called(ctx, teams)
	return args.Error(0)
}

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) LoadVotes(ctx context.Context) (*domain.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockVoteRepository) SaveVotes(ctx context.Context, ledger *domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}
