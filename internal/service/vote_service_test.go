package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVoteService_RecordVote(t *testing.T) {
	t.Run("голос добавляется в запись", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		ledger := newLedger("Red")
		mockVoteRepo.On("LoadVotes", mock.Anything).Return(ledger, nil).Once()
		mockVoteRepo.On("SaveVotes", mock.Anything, ledger).Return(nil).Once()

		recorded, err := service.RecordVote(context.Background(), "Red", 7, "alice")

		require.NoError(t, err)
		assert.True(t, recorded)
		entry, _ := ledger.Entry("Red")
		assert.Equal(t, 7, entry.TotalVotes)
		assert.Equal(t, []domain.VoterRecord{{Username: "alice", Vote: 7}}, entry.Voters)
		mockVoteRepo.AssertExpectations(t)
	})

	t.Run("отсутствующая команда - тихий no-op", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		ledger := newLedger("Red")
		mockVoteRepo.On("LoadVotes", mock.Anything).Return(ledger, nil).Once()

		recorded, err := service.RecordVote(context.Background(), "Ghost", 3, "alice")

		require.NoError(t, err)
		assert.False(t, recorded)
		assert.False(t, ledger.Has("Ghost"))
		mockVoteRepo.AssertNotCalled(t, "SaveVotes", mock.Anything, mock.Anything)
	})

	t.Run("сумма равна сумме голосов", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		ledger := newLedger("Red")
		mockVoteRepo.On("LoadVotes", mock.Anything).Return(ledger, nil)
		mockVoteRepo.On("SaveVotes", mock.Anything, ledger).Return(nil)

		values := []int{1, 10, 4, 4, 7}
		for _, v := range values {
			_, err := service.RecordVote(context.Background(), "Red", v, "alice")
			require.NoError(t, err)
		}

		entry, _ := ledger.Entry("Red")
		sum := 0
		for _, voter := range entry.Voters {
			sum += voter.Vote
		}
		assert.Equal(t, 26, entry.TotalVotes)
		assert.Equal(t, sum, entry.TotalVotes)
		assert.Len(t, entry.Voters, len(values))
	})
}

func TestVoteService_CastVote(t *testing.T) {
	session := &domain.Session{Username: "alice"}

	t.Run("успешное голосование", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		ledger := newLedger("Red")
		mockTeamRepo.On("LoadTeams", mock.Anything).Return(domain.Teams{"Red"}, nil).Once()
		mockVoteRepo.On("LoadVotes", mock.Anything).Return(ledger, nil).Once()
		mockVoteRepo.On("SaveVotes", mock.Anything, ledger).Return(nil).Once()

		recorded, err := service.CastVote(context.Background(), session, "Red", 9)

		require.NoError(t, err)
		assert.True(t, recorded)
		mockTeamRepo.AssertExpectations(t)
		mockVoteRepo.AssertExpectations(t)
	})

	t.Run("ошибка: нет сессии", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		_, err := service.CastVote(context.Background(), nil, "Red", 5)

		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: значение вне диапазона", func(t *testing.T) {
		for _, value := range []int{0, 11, -3} {
			mockTeamRepo := new(MockTeamRepository)
			mockVoteRepo := new(MockVoteRepository)
			service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

			_, err := service.CastVote(context.Background(), session, "Red", value)

			var domainErr *domain.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, domain.CodeInvalidVote, domainErr.Code)
		}
	})

	t.Run("ошибка: команда не зарегистрирована", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		mockTeamRepo.On("LoadTeams", mock.Anything).Return(domain.Teams{"Red"}, nil).Once()

		_, err := service.CastVote(context.Background(), session, "red", 5)

		assert.True(t, errors.Is(err, domain.ErrTeamNotFound))
		assert.Contains(t, err.Error(), "did you mean 'Red'?")
		mockVoteRepo.AssertNotCalled(t, "LoadVotes", mock.Anything)
	})

	t.Run("команда без записи журнала", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockVoteRepo := new(MockVoteRepository)
		service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

		mockTeamRepo.On("LoadTeams", mock.Anything).Return(domain.Teams{"Red"}, nil).Once()
		mockVoteRepo.On("LoadVotes", mock.Anything).Return(newLedger(), nil).Once()

		recorded, err := service.CastVote(context.Background(), session, "Red", 5)

		require.NoError(t, err)
		assert.False(t, recorded)
		mockVoteRepo.AssertNotCalled(t, "SaveVotes", mock.Anything, mock.Anything)
	})
}

func TestVoteService_Report(t *testing.T) {
	mockTeamRepo := new(MockTeamRepository)
	mockVoteRepo := new(MockVoteRepository)
	service := NewVoteService(&sync.Mutex{}, mockTeamRepo, mockVoteRepo)

	ledger := newLedger("Red", "Blue")
	ledger.Record("Blue", "bob", 3)
	ledger.Record("Red", "alice", 7)
	mockVoteRepo.On("LoadVotes", mock.Anything).Return(ledger, nil).Once()

	report, err := service.Report(context.Background())

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Red", report.Rows[0].Team)
	assert.Equal(t, 7, report.Rows[0].TotalVotes)
	assert.Equal(t, "Blue", report.Rows[1].Team)
	assert.Equal(t, 1, report.Rows[1].VoterCount)
}
