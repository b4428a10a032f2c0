package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Gorgui12/tekalis-configurator/internal/store"
)

const dbCommandTimeout = 60 * time.Second

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.ValidateDatabase(); err != nil {
				return fmt.Errorf("validating database config: %w", err)
			}

			log := newLogger(cfg)

			ctx, cancel := context.WithTimeout(context.Background(), dbCommandTimeout)
			defer cancel()

			s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer s.Close()

			names, err := store.Migrations()
			if err != nil {
				return err
			}
			log.Info("running migrations", "host", cfg.Database.Host, "count", len(names))

			if err := s.Migrate(ctx); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			log.Info("migrations complete")
			return nil
		},
	}
}
