package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/bagdasarian/team-voting/internal/repository/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	store *document.Store
	users UserService
	teams TeamService
	votes VoteService
}

func setupServices(t *testing.T) services {
	backend, err := file.NewBackend(t.TempDir())
	require.NoError(t, err)
	store := document.NewStore(backend)
	return services{
		store: store,
		users: NewUserService(store, store, nil),
		teams: NewTeamService(store, store, store),
		votes: NewVoteService(store, store, store),
	}
}

func TestScenario_RegisterAddVoteReport(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.users.Register(ctx, "alice", "pw"))
	session, err := s.users.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, s.teams.AddTeam(ctx, "Red"))
	recorded, err := s.votes.CastVote(ctx, session, "Red", 7)
	require.NoError(t, err)
	assert.True(t, recorded)

	report, err := s.votes.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReportRow{{
		Team:       "Red",
		TotalVotes: 7,
		VoterCount: 1,
		Voters:     []domain.VoterRecord{{Username: "alice", Vote: 7}},
	}}, report.Rows)
}

func TestScenario_RegisterTwice(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.users.Register(ctx, "alice", "pw"))
	err := s.users.Register(ctx, "alice", "pw2")
	assert.True(t, errors.Is(err, domain.ErrUserExists))

	users, err := s.store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "pw", users["alice"])
}

func TestScenario_AddTeamTwice(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.teams.AddTeam(ctx, "Red"))
	err := s.teams.AddTeam(ctx, "Red")
	assert.True(t, errors.Is(err, domain.ErrTeamExists))

	teams, err := s.teams.ListTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Teams{"Red"}, teams)
}

func TestScenario_DeleteCascade(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.teams.AddTeam(ctx, "X"))
	recorded, err := s.votes.RecordVote(ctx, "X", 5, "alice")
	require.NoError(t, err)
	require.True(t, recorded)
	require.NoError(t, s.teams.DeleteTeam(ctx, "X"))

	teams, err := s.teams.ListTeams(ctx)
	require.NoError(t, err)
	assert.NotContains(t, teams, "X")

	ledger, err := s.store.LoadVotes(ctx)
	require.NoError(t, err)
	assert.False(t, ledger.Has("X"))
}

func TestScenario_ReconcileAfterPartialWrite(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	// команда записана, журнал нет
	require.NoError(t, s.store.SaveTeams(ctx, domain.Teams{"Red"}))
	recorded, err := s.votes.CastVote(ctx, &domain.Session{Username: "alice"}, "Red", 5)
	require.NoError(t, err)
	assert.False(t, recorded)

	result, err := s.teams.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red"}, result.CreatedEntries)

	recorded, err = s.votes.CastVote(ctx, &domain.Session{Username: "alice"}, "Red", 5)
	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestScenario_ConcurrentVotes(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	require.NoError(t, s.teams.AddTeam(ctx, "Red"))

	const voters = 20
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		go func() {
			_, err := s.votes.CastVote(ctx, &domain.Session{Username: "alice"}, "Red", 1)
			errs <- err
		}()
	}
	for i := 0; i < voters; i++ {
		require.NoError(t, <-errs)
	}

	report, err := s.votes.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, voters, report.Rows[0].TotalVotes)
	assert.Equal(t, voters, report.Rows[0].VoterCount)
}
