package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-case-tracker/internal/adapter"
	"github.com/MKhiriev/go-case-tracker/internal/config"
	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrNoCredentials   = errors.New("command needs a username and password")
)

// APIFactory builds the API client once the configuration is resolved.
type APIFactory func(cfg *config.ClientConfig) (adapter.CaseTrackerClient, error)

type App struct {
	newAPI  APIFactory
	version string

	// flags is the command line layer of the configuration.
	flags config.ClientConfig

	api   adapter.CaseTrackerClient
	creds models.Credentials
	out   io.Writer

	logger *logger.Logger
}

func NewApp(newAPI APIFactory, version string, out io.Writer, logger *logger.Logger) (*App, error) {
	if newAPI == nil {
		return nil, errors.New("api factory is required")
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{newAPI: newAPI, version: version, out: out, logger: logger}, nil
}

// Run executes the command line in args.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	// every request of one invocation shares a trace id
	traceID := uuid.NewString()
	ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
	a.logger.Debug().Str("trace_id", traceID).Msg("running command")

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	return root.ExecuteContext(ctx)
}

// connect resolves the configuration and builds the API client. It runs
// before every command that talks to the server.
func (a *App) connect(*cobra.Command, []string) error {
	cfg, err := config.GetClientConfig(&a.flags)
	if err != nil {
		return err
	}
	if err = a.logger.SetLevel(cfg.LogLevel); err != nil {
		a.logger.Warn().Err(err).Msg("unknown log level")
	}

	api, err := a.newAPI(cfg)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	a.api = api
	a.creds = models.Credentials{Username: cfg.Username, Password: cfg.Password}
	return nil
}

// withSession logs in, runs fn and logs out again. A failed logout is
// only logged.
func (a *App) withSession(ctx context.Context, fn func() error) error {
	if err := a.requireCredentials(); err != nil {
		return err
	}
	if err := a.api.Login(ctx, a.creds); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		if err := a.api.Logout(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn().Err(err).Msg("logout failed")
		}
	}()

	return fn()
}

// sessionRunE adapts fn into a RunE that holds a session for its duration.
func (a *App) sessionRunE(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return a.withSession(ctx, func() error { return fn(ctx, args) })
	}
}

// download streams into a temp file next to the target and renames it once
// the name announced by the server is known.
func (a *App) download(ctx context.Context, id, output string) error {
	dir := "."
	if output != "" {
		dir = filepath.Dir(output)
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return fmt.Errorf("create download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	file, err := a.api.DownloadFile(ctx, id, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = filepath.Join(dir, filepath.Base(file.FileName))
		if file.FileName == "" {
			output = filepath.Join(dir, id)
		}
	}
	if err = os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("save download: %w", err)
	}

	file.FilePath = output
	return a.print(file)
}

func (a *App) requireCredentials() error {
	if a.creds.Username == "" || a.creds.Password == "" {
		return ErrNoCredentials
	}
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireArg accepts exactly one positional argument named what.
func requireArg(what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 || args[0] == "" {
			return fmt.Errorf("%w: %s", ErrMissingArgument, what)
		}
		if len(args) > 1 {
			return fmt.Errorf("unexpected arguments after %s: %q", what, args[1:])
		}
		return nil
	}
}
