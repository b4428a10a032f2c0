package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/pkg/recommend"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

func scoreCmd() *cobra.Command {
	var (
		flags criteriaFlags
		local string
	)

	cmd := &cobra.Command{
		Use:   "score <id>",
		Short: "Show how one product scores against the criteria",
		Example: `  cfgr score dell-xps-13 --usage work --max 1200000 --brand dell
  cfgr score asus-tuf-f15 --usage gaming --min 500000 --max 900000 --local catalog.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := flags.criteria()
			ctx := context.Background()

			var (
				item domain.CatalogItem
				b    domain.Breakdown
			)
			if local != "" {
				found, err := findLocal(ctx, catalog.NewFileSource(local), args[0])
				if err != nil {
					return err
				}
				if err := c.Validate(); err != nil {
					return fmt.Errorf("%w: %w", recommend.ErrInvalidCriteria, err)
				}
				item = found
				b = recommend.ScoreBreakdown(c, item)
			} else {
				client := newClient()
				found, err := client.GetCatalogItem(ctx, args[0])
				if err != nil {
					return err
				}
				resp, err := client.Score(ctx, c, *found)
				if err != nil {
					return err
				}
				item = *found
				b = resp.Breakdown
			}

			w := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(w, domain.ScoredItem{Item: item, Score: b.Total, Breakdown: b})
			}
			return printBreakdown(w, &item, b)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&local, "local", "", "look the product up in this catalog file instead of the server")

	return cmd
}

func findLocal(ctx context.Context, src catalog.Source, id string) (domain.CatalogItem, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		return domain.CatalogItem{}, fmt.Errorf("reading catalog: %w", err)
	}
	items, _ := catalog.Normalize(raw)
	snap := catalog.NewSnapshot(items, src.Name(), catalog.NormalizeStats{}, time.Time{})
	item, ok := snap.Find(id)
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf("product %q not found in %s", id, src.Name())
	}
	return item, nil
}
