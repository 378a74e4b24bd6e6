package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	configtoml "github.com/bnema/zksh/internal/adapters/config/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "zksh",
		Short: "Interactive shell for ZooKeeper node trees",
		Long: "zksh is a line-oriented shell over a ZooKeeper ensemble: connect to a set of hosts, " +
			"then get, set, list, create, remove and stat nodes. Type help inside the shell for the command list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, cfg, opts)
			if err != nil {
				return err
			}
			return app.runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.zksh/config.toml)")
	flags.String("hosts", "", "comma separated host:port list to connect to on startup")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	_ = cfg.BindPFlag(configtoml.KeyHosts, flags.Lookup("hosts"))
	_ = cfg.BindPFlag(configtoml.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(cfg, opts),
	)

	return rootCmd
}
