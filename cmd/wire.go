package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	configtoml "github.com/bnema/zksh/internal/adapters/config/toml"
	"github.com/bnema/zksh/internal/adapters/lineio"
	"github.com/bnema/zksh/internal/adapters/render/help"
	"github.com/bnema/zksh/internal/adapters/render/stat"
	"github.com/bnema/zksh/internal/adapters/watch"
	"github.com/bnema/zksh/internal/adapters/zookeeper"
	"github.com/bnema/zksh/internal/application"
	"github.com/bnema/zksh/internal/domain"
	"github.com/bnema/zksh/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	settings  domain.Settings
	store     *configtoml.Store
	logger    *slog.Logger
	connector func(logger *slog.Logger) ports.Connector
}

func wireApp(cmd *cobra.Command, cfg *viper.Viper, opts *rootOptions) (*app, error) {
	store, err := configtoml.NewStore(cfg, opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("wire config store: %w", err)
	}

	settings, err := store.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger, err := newCommandLogger(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return nil, err
	}

	return &app{
		settings: settings,
		store:    store,
		logger:   logger.With("command", cmd.Name()),
		connector: func(logger *slog.Logger) ports.Connector {
			return zookeeper.NewConnector(logger)
		},
	}, nil
}

func (a *app) runShell(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	input, err := lineio.Open(in, out, lineio.DefaultPrompt, domain.CommandNames())
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	connector := a.connector(a.logger)
	if isTerminal(errOut) {
		connector = spinnerConnector{next: connector, out: errOut}
	}

	printer := watch.NewPrinter(input.Output(), a.logger)
	manager := application.NewConnectionManager(connector, printer, a.settings.SessionTimeout, a.logger)
	dispatcher := application.NewDispatcher(manager, input.Output(), application.DispatcherOptions{
		Help:       help.NewRegistry(),
		RenderStat: stat.Render,
		Logger:     a.logger,
	})

	a.logger.DebugContext(ctx, "shell starting", "hosts", a.settings.Hosts, "session_timeout", a.settings.SessionTimeout)
	return application.NewShell(input, dispatcher, manager, a.logger).Run(ctx, a.settings.Hosts)
}
