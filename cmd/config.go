package cmd

import (
	"fmt"

	configtoml "github.com/bnema/zksh/internal/adapters/config/toml"
	"github.com/bnema/zksh/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the settings file",
	}

	configCmd.AddCommand(
		newConfigShowCmd(cfg, opts),
		newConfigInitCmd(cfg, opts),
	)

	return configCmd
}

func newConfigShowCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := configtoml.NewStore(cfg, opts.configPath)
			if err != nil {
				return err
			}

			settings, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			data, err := configtoml.Encode(settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "# %s\n", store.Path()); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigInitCmd(cfg *viper.Viper, opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := configtoml.NewStore(cfg, opts.configPath)
			if err != nil {
				return err
			}

			settings := domain.DefaultSettings()
			if flag := cmd.Flags().Lookup("hosts"); flag != nil && flag.Changed {
				settings.Hosts = flag.Value.String()
			}

			if err := store.Save(cmd.Context(), settings, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", store.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")

	return cmd
}
