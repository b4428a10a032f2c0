package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/pkg/recommend"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

func recommendCmd() *cobra.Command {
	var (
		flags criteriaFlags
		limit int
		local string
		demo  bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get the best products for a set of criteria",
		Long: "Ranks the catalog against the given criteria and prints the best\n" +
			"matches, highest score first. With --local or --demo the ranking\n" +
			"runs in-process against a catalog file and no server is needed.",
		Example: `  # Ask the server for three gaming laptops between 500k and 1M
  cfgr recommend --usage gaming --min 500000 --max 1000000

  # Prefer light Apple machines, five results, JSON output
  cfgr recommend --usage student --max 900000 --brand apple \
    --portability very_portable --limit 5 --output json

  # Rank a local catalog file without a server
  cfgr recommend --usage work --max 1500000 --local catalog.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := flags.criteria()
			ctx := context.Background()

			var items []domain.ScoredItem
			switch {
			case local != "" || demo:
				var src catalog.Source = catalog.NewEmbeddedSource()
				if local != "" {
					src = catalog.NewFileSource(local)
				}
				ranked, err := recommendLocal(ctx, src, c, limit)
				if err != nil {
					return err
				}
				items = ranked
			default:
				resp, err := newClient().Recommend(ctx, c, limit)
				if err != nil {
					return err
				}
				items = resp.Items
			}

			return printRecommendations(cmd.OutOrStdout(), items)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results (default: server default, 3 offline)")
	cmd.Flags().StringVar(&local, "local", "", "rank this catalog file (.yaml, .json) offline")
	cmd.Flags().BoolVar(&demo, "demo", false, "rank the built-in demo catalog offline")
	cmd.MarkFlagsMutuallyExclusive("local", "demo")

	return cmd
}

// recommendLocal ranks a catalog read from src with the default weights.
func recommendLocal(
	ctx context.Context,
	src catalog.Source,
	c domain.Criteria,
	limit int,
) ([]domain.ScoredItem, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	items, _ := catalog.Normalize(raw)

	if limit == 0 {
		limit = recommend.DefaultLimit
	}
	return recommend.Recommend(c, items, limit)
}

func printRecommendations(w io.Writer, items []domain.ScoredItem) error {
	if jsonOutput() {
		return outputJSON(w, items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No matching products.")
		return err
	}
	return printScoredTable(w, items)
}

