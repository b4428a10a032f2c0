package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/internal/store"
)

func seedCmd() *cobra.Command {
	var (
		file    string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog file into Postgres",
		Long: "Reads a YAML or JSON catalog, normalizes it, and upserts every\n" +
			"product into the products table. Without --file the built-in\n" +
			"demo catalog is loaded.",
		Example: `  # Load the demo catalog
  configurator seed --config config.yaml --migrate

  # Load a partner export
  configurator seed --config config.yaml --file catalog.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			if migrate {
				if err := s.Migrate(ctx); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}
			}

			var src catalog.Source = catalog.NewEmbeddedSource()
			if file != "" {
				src = catalog.NewFileSource(file)
			}

			n, err := seed(ctx, src, s, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products from %s\n", n, src.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog file (.yaml, .yml or .json)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before seeding")

	return cmd
}

// seed copies the normalized contents of src into s.
func seed(ctx context.Context, src catalog.Source, s store.Store, log *slog.Logger) (int, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading catalog: %w", err)
	}

	items, stats := catalog.Normalize(raw)
	if stats.Duplicates > 0 || stats.MissingID > 0 || stats.Malformed > 0 {
		log.Warn("catalog contains unusable entries",
			"duplicates", stats.Duplicates,
			"missing_id", stats.MissingID,
			"malformed", stats.Malformed,
		)
	}

	n, err := s.UpsertProducts(ctx, items)
	if err != nil {
		return n, fmt.Errorf("upserting products: %w", err)
	}

	log.Info("catalog seeded", "source", src.Name(), "products", n)
	return n, nil
}
