package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bagdasarian/team-voting/internal/domain"
)

// Store читает и пишет документы users, teams и votes поверх Backend.
// Отсутствующий или поврежденный документ заменяется значением по умолчанию
// и сразу сохраняется. Ошибки ввода-вывода возвращаются вызывающему коду.
type Store struct {
	mu           sync.Mutex
	backend      Backend
	defaultUsers domain.Credentials
	logger       *slog.Logger
}

type Option func(*Store)

// WithDefaultAdmin задает учетную запись, которой заполняется пустой документ users
func WithDefaultAdmin(username, password string) Option {
	return func(s *Store) {
		s.defaultUsers = domain.Credentials{username: password}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:      backend,
		defaultUsers: domain.DefaultCredentials(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lock и Unlock сериализуют циклы чтение-изменение-запись внутри процесса
func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

func (s *Store) LoadUsers(ctx context.Context) (domain.Credentials, error) {
	var users domain.Credentials
	found, err := s.load(ctx, KindUsers, &users)
	if err != nil {
		return nil, err
	}
	if found && len(users) > 0 {
		return users, nil
	}

	users = s.defaultUsers.Clone()
	if err := s.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users domain.Credentials) error {
	if users == nil {
		users = domain.Credentials{}
	}
	return s.save(ctx, KindUsers, users)
}

func (s *Store) LoadTeams(ctx context.Context) (domain.Teams, error) {
	var teams domain.Teams
	found, err := s.load(ctx, KindTeams, &teams)
	if err != nil {
		return nil, err
	}
	if found {
		if teams == nil {
			teams = domain.Teams{}
		}
		return teams, nil
	}

	teams = domain.Teams{}
	if err := s.SaveTeams(ctx, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *Store) SaveTeams(ctx context.Context, teams domain.Teams) error {
	if teams == nil {
		teams = domain.Teams{}
	}
	return s.save(ctx, KindTeams, teams)
}

func (s *Store) LoadVotes(ctx context.Context) (*domain.Ledger, error) {
	ledger := domain.NewLedger()
	found, err := s.load(ctx, KindVotes, ledger)
	if err != nil {
		return nil, err
	}
	if found {
		return ledger, nil
	}

	ledger = domain.NewLedger()
	if err := s.SaveVotes(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (s *Store) SaveVotes(ctx context.Context, ledger *domain.Ledger) error {
	if ledger == nil {
		ledger = domain.NewLedger()
	}
	return s.save(ctx, KindVotes, ledger)
}

// load возвращает false, если документа нет или его не удалось разобрать
func (s *Store) load(ctx context.Context, kind Kind, v any) (bool, error) {
	data, err := s.backend.Read(ctx, kind)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s document: %w", kind, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.warn(ctx, Warning{Kind: kind, Err: err})
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, kind Kind, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", kind, err)
	}
	if err := s.backend.Write(ctx, kind, data); err != nil {
		return fmt.Errorf("failed to write %s document: %w", kind, err)
	}
	return nil
}

func (s *Store) warn(ctx context.Context, w Warning) {
	s.logger.WarnContext(ctx, "document reset to default", "kind", string(w.Kind), "error", w.Err)
	if collector := warningsFromContext(ctx); collector != nil {
		collector.Add(w)
	}
}
