package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaekwang-park/todolist-api/internal/config"
	"github.com/jaekwang-park/todolist-api/internal/logging"
	"github.com/jaekwang-park/todolist-api/internal/repository"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// cfg is loaded and validated before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Todo list API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		slog.SetDefault(logging.New(os.Stderr, cfg.ParseLogLevel(), cfg.LogFormat))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml, json or env); environment variables take precedence")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(openapiCmd)
}

// openStore opens the configured database, logging where it points.
func openStore(ctx context.Context) (*repository.DB, error) {
	db, err := repository.Open(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	target := cfg.DB.Path
	if cfg.DB.Driver == config.DriverPostgres {
		target = fmt.Sprintf("%s:%s/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
	}
	slog.Info("database connected", "driver", cfg.DB.Driver, "target", target)
	return db, nil
}
