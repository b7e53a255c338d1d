// Package cli implements the catalogctl command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gamecatalog/backend/internal/app"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	configFile string
	v          *viper.Viper
}

// NewRootCommand builds the catalogctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{v: viper.New()}
	config.SetDefaults(opts.v)
	opts.v.SetDefault("LOG_LEVEL", "warn")
	opts.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse and edit the local game catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (.env format)")
	root.PersistentFlags().String("dsn", "", "store DSN (overrides STORE_DSN)")
	root.PersistentFlags().String("log-level", "warn", "debug|info|warn|error")
	_ = opts.v.BindPFlag("STORE_DSN", root.PersistentFlags().Lookup("dsn"))
	_ = opts.v.BindPFlag("LOG_LEVEL", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newListCommand(opts),
		newShowCommand(opts),
		newAddCommand(opts),
		newGenresCommand(opts),
		newPrefsCommand(opts),
	)
	return root
}

// open reads configuration and starts a session.
func (o *rootOptions) open(cmd *cobra.Command) (*app.App, error) {
	if o.configFile != "" {
		o.v.SetConfigFile(o.configFile)
		o.v.SetConfigType("env")
		if err := o.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	cfg, err := config.FromViper(o.v)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return app.New(cmd.Context(), cfg, logger)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
