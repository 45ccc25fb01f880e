// Package cli implements rewardsctl, the operator tool for the activity store.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"bitbuddy/config"
	pgStorage "bitbuddy/internal/adapter/storage/postgres"
	"bitbuddy/internal/core/ports"
	"bitbuddy/internal/service"
	"bitbuddy/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	cfgPath string
	debug   bool
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "rewardsctl",
		Short:        "BitBuddy activity store maintenance",
		Long:         `rewardsctl migrates the PostgreSQL activity store and re-runs badge rules for an address.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(newMigrateCmd(opts), newReconcileCmd(opts), newStatsCmd(opts))
	return root
}

// env is what every subcommand needs once config is loaded.
type env struct {
	cfg  *config.Config
	log  zerolog.Logger
	pool *pgxpool.Pool
}

func (o *options) connect(ctx context.Context) (*env, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if o.debug {
		level = "debug"
	}
	log := logger.NewWithWriter(level, os.Stderr)

	if cfg.Store.Driver != config.StorePostgres {
		return nil, fmt.Errorf("store driver %q has nothing to maintain, set store.driver=postgres", cfg.Store.Driver)
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &env{cfg: cfg, log: log, pool: pool}, nil
}

func (e *env) close() {
	e.pool.Close()
}

// rewards builds the rewards service over the PostgreSQL store.
func (e *env) rewards() ports.RewardsService {
	store := pgStorage.NewActivityStore(e.pool)
	pub := service.NewFeedPublisher(store.Feed, e.log)
	return service.NewRewardsService(store, pub, nil, service.RewardsConfig{
		ContributionRetries: e.cfg.Rewards.ContributionRetries,
		ProcessedEventTTL:   e.cfg.Rewards.ProcessedEventTTL,
	}, e.log)
}
