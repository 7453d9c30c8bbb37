package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/repository"
)

type teamService struct {
	locker   sync.Locker
	teamRepo repository.TeamRepository
	voteRepo repository.VoteRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(locker sync.Locker, teamRepo repository.TeamRepository, voteRepo repository.VoteRepository) TeamService {
	return &teamService{
		locker:   locker,
		teamRepo: teamRepo,
		voteRepo: voteRepo,
	}
}

// ListTeams возвращает команды в порядке создания
func (s *teamService) ListTeams(ctx context.Context) (domain.Teams, error) {
	s.locker.Lock()
	defer s.locker.Unlock()

	return s.teamRepo.LoadTeams(ctx)
}

// AddTeam сохраняет список команд, затем журнал голосов.
// Между двумя записями команда может остаться без записи в журнале, это чинит Reconcile.
func (s *teamService) AddTeam(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewBadRequestError("team name is required")
	}

	s.locker.Lock()
	defer s.locker.Unlock()

	teams, err := s.teamRepo.LoadTeams(ctx)
	if err != nil {
		return err
	}
	if teams.Contains(name) {
		return domain.NewTeamExistsError(name)
	}

	teams = append(teams, name)
	if err := s.teamRepo.SaveTeams(ctx, teams); err != nil {
		return err
	}

	ledger, err := s.voteRepo.LoadVotes(ctx)
	if err != nil {
		return err
	}
	if !ledger.Init(name) {
		return nil
	}
	return s.voteRepo.SaveVotes(ctx, ledger)
}

// DeleteTeam удаляет команду и ее запись в журнале голосов двумя отдельными записями
func (s *teamService) DeleteTeam(ctx context.Context, name string) error {
	s.locker.Lock()
	defer s.locker.Unlock()

	teams, err := s.teamRepo.LoadTeams(ctx)
	if err != nil {
		return err
	}
	teams, ok := teams.Remove(name)
	if !ok {
		return domain.NewTeamNotFoundError(name, SuggestTeam(name, teams))
	}
	if err := s.teamRepo.SaveTeams(ctx, teams); err != nil {
		return err
	}

	ledger, err := s.voteRepo.LoadVotes(ctx)
	if err != nil {
		return err
	}
	if !ledger.Remove(name) {
		return nil
	}
	return s.voteRepo.SaveVotes(ctx, ledger)
}

// Reconcile объединяет список команд и ключи журнала: недостающие записи журнала
// создаются пустыми, ключи журнала без команды добавляются в конец списка.
func (s *teamService) Reconcile(ctx context.Context) (*domain.ReconcileResult, error) {
	s.locker.Lock()
	defer s.locker.Unlock()

	teams, err := s.teamRepo.LoadTeams(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.voteRepo.LoadVotes(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.ReconcileResult{
		CreatedEntries: []string{},
		AdoptedTeams:   []string{},
	}
	for _, key := range ledger.Keys() {
		if !teams.Contains(key) {
			teams = append(teams, key)
			result.AdoptedTeams = append(result.AdoptedTeams, key)
		}
	}
	for _, team := range teams {
		if ledger.Init(team) {
			result.CreatedEntries = append(result.CreatedEntries, team)
		}
	}

	if len(result.AdoptedTeams) > 0 {
		if err := s.teamRepo.SaveTeams(ctx, teams); err != nil {
			return nil, err
		}
	}
	if len(result.CreatedEntries) > 0 {
		if err := s.voteRepo.SaveVotes(ctx, ledger); err != nil {
			return nil, err
		}
	}

	if result.Changed() {
		slog.InfoContext(ctx, "teams reconciled",
			"created_entries", result.CreatedEntries,
			"adopted_teams", result.AdoptedTeams,
		)
	}
	return result, nil
}
