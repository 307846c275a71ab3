package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/cli/config"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
	"github.com/secmon-lab/reclaimer/pkg/utils/apperr"
	"github.com/secmon-lab/reclaimer/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// runtime holds the process-level collaborators shared by all commands
type runtime struct {
	stdin     io.Reader
	logWriter io.Writer
	promptOut io.Writer

	loggerCfg config.Logger
	secrets   *logging.Secrets
}

// Option customizes the I/O of Run
type Option func(*runtime)

// WithStdin sets the reader used to answer confirmation prompts
func WithStdin(r io.Reader) Option {
	return func(rt *runtime) {
		rt.stdin = r
	}
}

// WithLogWriter sets where log records are written
func WithLogWriter(w io.Writer) Option {
	return func(rt *runtime) {
		rt.logWriter = w
	}
}

// WithPromptWriter sets where confirmation prompts are written
func WithPromptWriter(w io.Writer) Option {
	return func(rt *runtime) {
		rt.promptOut = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	rt := &runtime{
		stdin:     os.Stdin,
		logWriter: os.Stdout,
		promptOut: os.Stderr,
		secrets:   logging.NewSecrets(),
	}
	for _, opt := range opts {
		opt(rt)
	}

	var logger *slog.Logger

	app := &cli.Command{
		Name:    "reclaimer",
		Usage:   "Reclaim mannequins created by an organization migration",
		Version: "0.1.0",
		Flags:   rt.loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			l, err := rt.loggerCfg.Configure(rt.logWriter, rt.secrets)
			if err != nil {
				return nil, err
			}

			logger = l.With(slog.String("run_id", types.NewRunID().String()))
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdReclaimMannequin(rt),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger != nil {
			apperr.Handle(ctxlog.With(ctx, logger), err)
		}
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}
