package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/munch-accounts/internal/adapter"
	"github.com/MKhiriev/munch-accounts/internal/logger"
)

// Usage lists the commands understood by App.Run.
const Usage = `usage: client [-a host:port] [-request-timeout 5s] <command> [args]

commands:
  create <email> <username> <pass>   register a user
  auth <username> <pass>             check a password
  users                              list every user
  user <username>                    show one user
  version                            print the server version
`

type command struct {
	args int
	run  func(ctx context.Context, a adapter.AccountsAdapter, args []string) (any, error)
}

var commands = map[string]command{
	"create": {args: 3, run: func(ctx context.Context, a adapter.AccountsAdapter, args []string) (any, error) {
		return a.Create(ctx, args[0], args[1], args[2])
	}},
	"auth": {args: 2, run: func(ctx context.Context, a adapter.AccountsAdapter, args []string) (any, error) {
		return a.Authenticate(ctx, args[0], args[1])
	}},
	"users": {args: 0, run: func(ctx context.Context, a adapter.AccountsAdapter, _ []string) (any, error) {
		return a.ListUsers(ctx)
	}},
	"user": {args: 1, run: func(ctx context.Context, a adapter.AccountsAdapter, args []string) (any, error) {
		return a.GetUser(ctx, args[0])
	}},
	"version": {args: 0, run: func(ctx context.Context, a adapter.AccountsAdapter, _ []string) (any, error) {
		return a.Version(ctx)
	}},
}

type App struct {
	adapter adapter.AccountsAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(accounts adapter.AccountsAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: accounts, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) != cmd.args {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrWrongArgs, name, cmd.args, len(rest))
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	result, err := cmd.run(ctx, a.adapter, rest)
	if err != nil {
		a.logger.Err(err).Str("command", name).Msg("command failed")
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

func (a *App) print(result any) error {
	if s, ok := result.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
