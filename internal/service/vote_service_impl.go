package service

import (
	"context"
	"sync"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/repository"
)

type voteService struct {
	locker   sync.Locker
	teamRepo repository.TeamRepository
	voteRepo repository.VoteRepository
}

// NewVoteService создает новый экземпляр VoteService
func NewVoteService(locker sync.Locker, teamRepo repository.TeamRepository, voteRepo repository.VoteRepository) VoteService {
	return &voteService{
		locker:   locker,
		teamRepo: teamRepo,
		voteRepo: voteRepo,
	}
}

// RecordVote добавляет голос в журнал. Если ключа команды в журнале нет,
// ничего не меняет и возвращает false без ошибки.
func (s *voteService) RecordVote(ctx context.Context, team string, value int, voter string) (bool, error) {
	s.locker.Lock()
	defer s.locker.Unlock()

	return s.recordVote(ctx, team, value, voter)
}

// CastVote требует сессию и зарегистрированную команду, затем вызывает RecordVote
func (s *voteService) CastVote(ctx context.Context, session *domain.Session, team string, value int) (bool, error) {
	if session == nil || session.Username == "" {
		return false, domain.ErrUnauthorized
	}
	if !domain.ValidVote(value) {
		return false, domain.NewInvalidVoteError(value)
	}

	s.locker.Lock()
	defer s.locker.Unlock()

	teams, err := s.teamRepo.LoadTeams(ctx)
	if err != nil {
		return false, err
	}
	if !teams.Contains(team) {
		return false, domain.NewTeamNotFoundError(team, SuggestTeam(team, teams))
	}

	return s.recordVote(ctx, team, value, session.Username)
}

// Report строит отчет в порядке ключей журнала
func (s *voteService) Report(ctx context.Context) (*domain.Report, error) {
	s.locker.Lock()
	defer s.locker.Unlock()

	ledger, err := s.voteRepo.LoadVotes(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Report(), nil
}

func (s *voteService) recordVote(ctx context.Context, team string, value int, voter string) (bool, error) {
	ledger, err := s.voteRepo.LoadVotes(ctx)
	if err != nil {
		return false, err
	}
	if !ledger.Record(team, voter, value) {
		return false, nil
	}
	if err := s.voteRepo.SaveVotes(ctx, ledger); err != nil {
		return false, err
	}
	return true, nil
}
