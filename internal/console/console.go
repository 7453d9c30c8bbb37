package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/report"
	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/bagdasarian/team-voting/internal/service"
	"github.com/go-andiamo/splitter"
)

const prompt = "> "

const helpText = `Commands:
  register <username> <password> <confirm>
  login <username> <password>
  logout
  teams
  add "<team name>"
  delete "<team name>"
  vote "<team name>" <1-10>
  results
  reconcile
  help
  quit`

// Console - построчный интерфейс поверх сервисов. Сессия хранится в самой консоли
// и передается в операции голосования явно.
type Console struct {
	userService service.UserService
	teamService service.TeamService
	voteService service.VoteService

	in      *bufio.Scanner
	out     io.Writer
	split   func(string) ([]string, error)
	session *domain.Session
}

func New(
	userService service.UserService,
	teamService service.TeamService,
	voteService service.VoteService,
	in io.Reader,
	out io.Writer,
) (*Console, error) {
	// кавычки позволяют передавать имена команд с пробелами, например "Red Team"
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to create splitter: %w", err)
	}

	return &Console{
		userService: userService,
		teamService: teamService,
		voteService: voteService,
		in:          bufio.NewScanner(in),
		out:         out,
		split: func(line string) ([]string, error) {
			return spaceSplitter.Split(line)
		},
	}, nil
}

// Run читает команды до quit или конца ввода
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Voting App. Type 'help' for commands.")
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := c.Execute(ctx, c.in.Text()); quit {
			return nil
		}
	}
}

// Execute выполняет одну команду и возвращает true для quit
func (c *Console) Execute(ctx context.Context, line string) bool {
	args, err := c.parse(line)
	if err != nil {
		c.printError(err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	ctx, warnings := document.WithWarnings(ctx)
	defer func() {
		for _, warning := range warnings.Items() {
			fmt.Fprintf(c.out, "Warning: %s\n", warning.Error())
		}
	}()

	switch cmd, rest := strings.ToLower(args[0]), args[1:]; cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "register":
		c.register(ctx, rest)
	case "login":
		c.login(ctx, rest)
	case "logout":
		c.session = nil
		fmt.Fprintln(c.out, "Logged out.")
	case "teams":
		c.withSession(func() { c.listTeams(ctx) })
	case "add":
		c.withSession(func() { c.addTeam(ctx, rest) })
	case "delete":
		c.withSession(func() { c.deleteTeam(ctx, rest) })
	case "vote":
		c.withSession(func() { c.vote(ctx, rest) })
	case "results":
		c.withSession(func() { c.results(ctx) })
	case "reconcile":
		c.withSession(func() { c.reconcile(ctx) })
	default:
		fmt.Fprintf(c.out, "Unknown command '%s'. Type 'help' for commands.\n", cmd)
	}
	return false
}

func (c *Console) parse(line string) ([]string, error) {
	parts, err := c.split(strings.TrimSpace(line))
	if err != nil {
		return nil, domain.NewBadRequestError("invalid input: " + err.Error())
	}

	args := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if len(part) >= 2 && strings.HasPrefix(part, `"`) && strings.HasSuffix(part, `"`) {
			part = part[1 : len(part)-1]
		}
		args = append(args, part)
	}
	return args, nil
}

func (c *Console) withSession(fn func()) {
	if c.session == nil {
		c.printError(domain.ErrUnauthorized)
		return
	}
	fn()
}

func (c *Console) register(ctx context.Context, args []string) {
	if len(args) != 3 {
		c.printUsage("register <username> <password> <confirm>")
		return
	}
	if args[1] != args[2] {
		c.printError(domain.ErrPasswordMismatch)
		return
	}

	if err := c.userService.Register(ctx, args[0], args[1]); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "User '%s' registered successfully!\n", args[0])
}

func (c *Console) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.printUsage("login <username> <password>")
		return
	}

	session, err := c.userService.Login(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			fmt.Fprintln(c.out, "Invalid credentials. Please try again.")
			return
		}
		c.printError(err)
		return
	}
	c.session = session
	fmt.Fprintln(c.out, "Login successful!")
}

func (c *Console) listTeams(ctx context.Context) {
	teams, err := c.teamService.ListTeams(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if len(teams) == 0 {
		fmt.Fprintln(c.out, "No teams available.")
		return
	}
	for i, team := range teams {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, team)
	}
}

func (c *Console) addTeam(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.printUsage(`add "<team name>"`)
		return
	}

	if err := c.teamService.AddTeam(ctx, args[0]); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Team '%s' added!\n", args[0])
}

func (c *Console) deleteTeam(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.printUsage(`delete "<team name>"`)
		return
	}

	if err := c.teamService.DeleteTeam(ctx, args[0]); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Team '%s' and its votes have been deleted!\n", args[0])
}

func (c *Console) vote(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.printUsage(`vote "<team name>" <1-10>`)
		return
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		c.printError(domain.NewBadRequestError(fmt.Sprintf("vote value '%s' is not a number", args[1])))
		return
	}

	recorded, err := c.voteService.CastVote(ctx, c.session, args[0], value)
	if err != nil {
		c.printError(err)
		return
	}
	if !recorded {
		fmt.Fprintf(c.out, "Team '%s' has no vote entry, run 'reconcile' to repair it.\n", args[0])
		return
	}
	fmt.Fprintf(c.out, "Vote of %d for '%s' recorded!\n", value, args[0])
}

func (c *Console) results(ctx context.Context) {
	results, err := c.voteService.Report(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	report.NewResultsReport(results).Write(c.out)
}

func (c *Console) reconcile(ctx context.Context) {
	result, err := c.teamService.Reconcile(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if !result.Changed() {
		fmt.Fprintln(c.out, "Teams and votes are consistent.")
		return
	}
	for _, team := range result.CreatedEntries {
		fmt.Fprintf(c.out, "Created vote entry for '%s'.\n", team)
	}
	for _, team := range result.AdoptedTeams {
		fmt.Fprintf(c.out, "Restored team '%s' from votes.\n", team)
	}
}

func (c *Console) printUsage(usage string) {
	fmt.Fprintf(c.out, "Usage: %s\n", usage)
}

func (c *Console) printError(err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		fmt.Fprintf(c.out, "Error: %s\n", domainErr.Message)
		return
	}
	fmt.Fprintf(c.out, "Error: %v\n", err)
}
